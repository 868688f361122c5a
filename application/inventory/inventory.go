package inventory

import (
	"context"
	"database/sql"

	"github.com/heytrack/heytrack-backend/constant"
	"github.com/heytrack/heytrack-backend/model"
	ingredientrepo "github.com/heytrack/heytrack-backend/repository/ingredient"
	stockledgerrepo "github.com/heytrack/heytrack-backend/repository/stockledger"
	txrepo "github.com/heytrack/heytrack-backend/repository/tx"
	"github.com/heytrack/heytrack-backend/utils/errors"
	"github.com/heytrack/heytrack-backend/utils/logger"
	"go.uber.org/zap"
)

type InventoryApp interface {
	AvailableStock(ctx context.Context, userID, ingredientID uint64) (float64, error)
	GetIngredient(ctx context.Context, userID, ingredientID uint64) (*model.IngredientDetail, error)
	ListIngredients(ctx context.Context, userID uint64, page, perPage int) (*model.IngredientListResponse, error)
	RestockIngredient(ctx context.Context, userID, ingredientID uint64, req *model.RestockRequest) (*model.RestockResponse, error)
	StockHistory(ctx context.Context, userID, ingredientID uint64, filter *model.LedgerHistoryFilter) (*model.StockHistoryResponse, error)
}

type inventoryAppImpl struct {
	txRepo         txrepo.TxRepository
	ingredientRepo ingredientrepo.IngredientRepository
	ledgerRepo     stockledgerrepo.StockLedgerRepository
}

func NewInventoryApp(txRepo txrepo.TxRepository, ingredientRepo ingredientrepo.IngredientRepository, ledgerRepo stockledgerrepo.StockLedgerRepository) InventoryApp {
	return &inventoryAppImpl{
		txRepo:         txRepo,
		ingredientRepo: ingredientRepo,
		ledgerRepo:     ledgerRepo,
	}
}

// AvailableStock answers how much of the ingredient can still be promised to
// new orders. Negative availability is clamped to zero for the caller and
// logged as an anomaly; the stored values are left untouched.
func (s *inventoryAppImpl) AvailableStock(ctx context.Context, userID, ingredientID uint64) (float64, error) {
	ing, err := s.ingredientRepo.GetByID(ctx, ingredientID, userID)
	if err != nil {
		logger.Error("[AvailableStock] get ingredient", zap.Uint64("ingredient_id", ingredientID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if ing == nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}

	available := ing.AvailableStock()
	if available < 0 {
		logger.Warn("[AvailableStock] reserved stock exceeds current stock",
			zap.Uint64("ingredient_id", ing.ID),
			zap.Float64("current_stock", ing.CurrentStock),
			zap.Float64("reserved_stock", ing.ReservedStock))
		return 0, nil
	}
	return available, nil
}

func (s *inventoryAppImpl) GetIngredient(ctx context.Context, userID, ingredientID uint64) (*model.IngredientDetail, error) {
	ing, err := s.ingredientRepo.GetByID(ctx, ingredientID, userID)
	if err != nil {
		logger.Error("[GetIngredient] get ingredient", zap.Uint64("ingredient_id", ingredientID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return toDetail(ing), nil
}

func (s *inventoryAppImpl) ListIngredients(ctx context.Context, userID uint64, page, perPage int) (*model.IngredientListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	items, total, err := s.ingredientRepo.List(ctx, userID, page, perPage)
	if err != nil {
		logger.Error("[ListIngredients] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	details := make([]model.IngredientDetail, 0, len(items))
	for i := range items {
		details = append(details, *toDetail(&items[i]))
	}

	return &model.IngredientListResponse{
		Items:      details,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// RestockIngredient records a purchase receipt: physical stock goes up and an
// increase entry lands in the ledger, both in one transaction.
func (s *inventoryAppImpl) RestockIngredient(ctx context.Context, userID, ingredientID uint64, req *model.RestockRequest) (*model.RestockResponse, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RestockIngredient] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	newStock, err := s.ingredientRepo.AddStockTx(ctx, tx, ingredientID, userID, req.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[RestockIngredient] add stock", zap.Uint64("ingredient_id", ingredientID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entry := &model.StockLedgerEntry{
		UserID:          userID,
		IngredientID:    ingredientID,
		QuantityBefore:  newStock - req.Quantity,
		QuantityAfter:   newStock,
		QuantityChanged: req.Quantity,
		ChangeType:      constant.StockChangeIncrease,
		ReferenceID:     ingredientID,
		ReferenceType:   constant.StockReferencePurchase,
	}
	if err := s.ledgerRepo.AppendTx(ctx, tx, entry); err != nil {
		logger.Error("[RestockIngredient] append ledger", zap.Uint64("ingredient_id", ingredientID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RestockIngredient] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.RestockResponse{
		IngredientID: ingredientID,
		CurrentStock: newStock,
	}, nil
}

func (s *inventoryAppImpl) StockHistory(ctx context.Context, userID, ingredientID uint64, filter *model.LedgerHistoryFilter) (*model.StockHistoryResponse, error) {
	ing, err := s.ingredientRepo.GetByID(ctx, ingredientID, userID)
	if err != nil {
		logger.Error("[StockHistory] get ingredient", zap.Uint64("ingredient_id", ingredientID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	entries, err := s.ledgerRepo.HistoryFor(ctx, ingredientID, userID, filter)
	if err != nil {
		logger.Error("[StockHistory] history", zap.Uint64("ingredient_id", ingredientID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.StockHistoryResponse{
		IngredientID: ingredientID,
		Entries:      entries,
	}, nil
}

func toDetail(ing *model.Ingredient) *model.IngredientDetail {
	available := ing.AvailableStock()
	if available < 0 {
		logger.Warn("[ingredient] reserved stock exceeds current stock",
			zap.Uint64("ingredient_id", ing.ID),
			zap.Float64("current_stock", ing.CurrentStock),
			zap.Float64("reserved_stock", ing.ReservedStock))
		available = 0
	}
	return &model.IngredientDetail{
		ID:             ing.ID,
		Name:           ing.Name,
		Unit:           ing.Unit,
		CurrentStock:   ing.CurrentStock,
		ReservedStock:  ing.ReservedStock,
		AvailableStock: available,
	}
}
