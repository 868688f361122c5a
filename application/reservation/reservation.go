package reservation

import (
	"context"
	goerrors "errors"

	"github.com/heytrack/heytrack-backend/constant"
	"github.com/heytrack/heytrack-backend/model"
	ingredientrepo "github.com/heytrack/heytrack-backend/repository/ingredient"
	reservationrepo "github.com/heytrack/heytrack-backend/repository/reservation"
	stockledgerrepo "github.com/heytrack/heytrack-backend/repository/stockledger"
	txrepo "github.com/heytrack/heytrack-backend/repository/tx"
	"github.com/heytrack/heytrack-backend/utils/errors"
	"github.com/heytrack/heytrack-backend/utils/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ReservationApp is the reservation protocol: it is the only path that moves
// reserved_stock and current_stock, and the only writer of reservation rows.
//
// The Tx variants run inside a caller-owned transaction so an order insert and
// its reservations commit together; the plain variants open their own
// transaction. Either way a failure on any line item aborts the whole
// transaction, so a failed order never leaves partial reservations behind.
type ReservationApp interface {
	CheckAvailability(ctx context.Context, userID uint64, items []model.IngredientRequirement) (*model.AvailabilityResult, error)
	ReserveForOrder(ctx context.Context, userID, orderID uint64, items []model.IngredientRequirement) ([]uint64, error)
	ReserveForOrderTx(ctx context.Context, tx *sqlx.Tx, userID, orderID uint64, items []model.IngredientRequirement) ([]uint64, error)
	ReleaseForOrder(ctx context.Context, userID, orderID uint64) (int, error)
	ReleaseForOrderTx(ctx context.Context, tx *sqlx.Tx, userID, orderID uint64) (int, error)
	ConsumeForOrder(ctx context.Context, userID, orderID uint64) (int, error)
	ConsumeForOrderTx(ctx context.Context, tx *sqlx.Tx, userID, orderID uint64) (int, error)
	ReservationsForOrder(ctx context.Context, userID, orderID uint64) ([]model.StockReservation, error)
}

type reservationAppImpl struct {
	txRepo          txrepo.TxRepository
	ingredientRepo  ingredientrepo.IngredientRepository
	reservationRepo reservationrepo.ReservationRepository
	ledgerRepo      stockledgerrepo.StockLedgerRepository
}

func NewReservationApp(txRepo txrepo.TxRepository, ingredientRepo ingredientrepo.IngredientRepository, reservationRepo reservationrepo.ReservationRepository, ledgerRepo stockledgerrepo.StockLedgerRepository) ReservationApp {
	return &reservationAppImpl{
		txRepo:          txRepo,
		ingredientRepo:  ingredientRepo,
		reservationRepo: reservationRepo,
		ledgerRepo:      ledgerRepo,
	}
}

// CheckAvailability is a pure read. It reports every shortfall, not just the
// first, so the caller can present the complete picture.
func (s *reservationAppImpl) CheckAvailability(ctx context.Context, userID uint64, items []model.IngredientRequirement) (*model.AvailabilityResult, error) {
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	insufficient := make([]model.InsufficientItem, 0)
	for _, item := range items {
		ing, err := s.ingredientRepo.GetByID(ctx, item.IngredientID, userID)
		if err != nil {
			logger.Error("[CheckAvailability] get ingredient", zap.Uint64("ingredient_id", item.IngredientID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if ing == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}

		available := clampAvailability(ing)
		if available < item.Quantity {
			insufficient = append(insufficient, model.InsufficientItem{
				IngredientID: item.IngredientID,
				Requested:    item.Quantity,
				Available:    available,
			})
		}
	}

	return &model.AvailabilityResult{
		Available:         len(insufficient) == 0,
		InsufficientItems: insufficient,
	}, nil
}

func (s *reservationAppImpl) ReserveForOrder(ctx context.Context, userID, orderID uint64, items []model.IngredientRequirement) ([]uint64, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReserveForOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	ids, err := s.ReserveForOrderTx(ctx, tx, userID, orderID, items)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReserveForOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return ids, nil
}

// ReserveForOrderTx reserves every line item or nothing. The availability
// pre-check reports all shortfalls up front; the per-ingredient conditional
// update is the authoritative guard against concurrent overcommit. When the
// guard rejects item k after items 1..k-1 reserved, returning the error aborts
// the surrounding transaction and with it every prior reservation.
func (s *reservationAppImpl) ReserveForOrderTx(ctx context.Context, tx *sqlx.Tx, userID, orderID uint64, items []model.IngredientRequirement) ([]uint64, error) {
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	insufficient := make([]model.InsufficientItem, 0)
	for _, item := range items {
		ing, err := s.ingredientRepo.GetByIDTx(ctx, tx, item.IngredientID, userID)
		if err != nil {
			logger.Error("[ReserveForOrder] get ingredient", zap.Uint64("ingredient_id", item.IngredientID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if ing == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if available := clampAvailability(ing); available < item.Quantity {
			insufficient = append(insufficient, model.InsufficientItem{
				IngredientID: item.IngredientID,
				Requested:    item.Quantity,
				Available:    available,
			})
		}
	}
	if len(insufficient) > 0 {
		return nil, errors.SetCustomErrorWithDetails(constant.ErrInsufficientStock, insufficient)
	}

	reservationIDs := make([]uint64, 0, len(items))
	for _, item := range items {
		reserved, err := s.ingredientRepo.ReserveStockTx(ctx, tx, item.IngredientID, userID, item.Quantity)
		if err != nil {
			logger.Error("[ReserveForOrder] reserve stock", zap.Uint64("ingredient_id", item.IngredientID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !reserved {
			// A concurrent order took the availability between the
			// pre-check and this update.
			logger.Info("[ReserveForOrder] lost availability race",
				zap.Uint64("order_id", orderID),
				zap.Uint64("ingredient_id", item.IngredientID),
				zap.Float64("requested", item.Quantity))
			return nil, errors.SetCustomErrorWithDetails(constant.ErrInsufficientStock, []model.InsufficientItem{
				{IngredientID: item.IngredientID, Requested: item.Quantity},
			})
		}

		id, err := s.reservationRepo.CreateTx(ctx, tx, &model.StockReservation{
			UserID:       userID,
			OrderID:      orderID,
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
			Status:       constant.ReservationStatusActive,
		})
		if err != nil {
			logger.Error("[ReserveForOrder] create reservation", zap.Uint64("ingredient_id", item.IngredientID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		reservationIDs = append(reservationIDs, id)
	}

	return reservationIDs, nil
}

func (s *reservationAppImpl) ReleaseForOrder(ctx context.Context, userID, orderID uint64) (int, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReleaseForOrder] begin tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	count, err := s.ReleaseForOrderTx(ctx, tx, userID, orderID)
	if err != nil {
		return 0, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReleaseForOrder] commit tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return count, nil
}

// ReleaseForOrderTx frees every active hold for the order without touching
// physical stock. Orders with no active reservations release zero rows; that
// makes retries and the expiration consumer idempotent.
func (s *reservationAppImpl) ReleaseForOrderTx(ctx context.Context, tx *sqlx.Tx, userID, orderID uint64) (int, error) {
	active, err := s.reservationRepo.FindActiveByOrderTx(ctx, tx, orderID, userID)
	if err != nil {
		logger.Error("[ReleaseForOrder] find active reservations", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	for _, r := range active {
		if err := s.reservationRepo.UpdateStatusTx(ctx, tx, r.ID, constant.ReservationStatusActive, constant.ReservationStatusReleased); err != nil {
			if isCustomError(err, constant.ErrInvalidTransition) {
				return 0, err
			}
			logger.Error("[ReleaseForOrder] update status", zap.Uint64("reservation_id", r.ID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.ingredientRepo.ReleaseStockTx(ctx, tx, r.IngredientID, userID, r.Quantity); err != nil {
			logger.Error("[ReleaseForOrder] release stock", zap.Uint64("ingredient_id", r.IngredientID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return len(active), nil
}

func (s *reservationAppImpl) ConsumeForOrder(ctx context.Context, userID, orderID uint64) (int, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ConsumeForOrder] begin tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	count, err := s.ConsumeForOrderTx(ctx, tx, userID, orderID)
	if err != nil {
		return 0, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ConsumeForOrder] commit tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return count, nil
}

// ConsumeForOrderTx converts every active hold into a permanent deduction:
// reservation -> consumed, reserved_stock and current_stock decremented
// together, one decrease ledger entry per reservation. Already-terminal
// reservations are not selected, so retries consume zero rows.
func (s *reservationAppImpl) ConsumeForOrderTx(ctx context.Context, tx *sqlx.Tx, userID, orderID uint64) (int, error) {
	active, err := s.reservationRepo.FindActiveByOrderTx(ctx, tx, orderID, userID)
	if err != nil {
		logger.Error("[ConsumeForOrder] find active reservations", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	for _, r := range active {
		if err := s.reservationRepo.UpdateStatusTx(ctx, tx, r.ID, constant.ReservationStatusActive, constant.ReservationStatusConsumed); err != nil {
			if isCustomError(err, constant.ErrInvalidTransition) {
				return 0, err
			}
			logger.Error("[ConsumeForOrder] update status", zap.Uint64("reservation_id", r.ID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}

		newStock, err := s.ingredientRepo.ConsumeStockTx(ctx, tx, r.IngredientID, userID, r.Quantity)
		if err != nil {
			// current_stock < quantity here means reserved_stock exceeded
			// current_stock before this call, which the reserve guard is
			// supposed to make impossible.
			logger.Error("[ConsumeForOrder] consume stock", zap.Uint64("ingredient_id", r.IngredientID), zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}

		entry := &model.StockLedgerEntry{
			UserID:          userID,
			IngredientID:    r.IngredientID,
			QuantityBefore:  newStock + r.Quantity,
			QuantityAfter:   newStock,
			QuantityChanged: -r.Quantity,
			ChangeType:      constant.StockChangeDecrease,
			ReferenceID:     orderID,
			ReferenceType:   constant.StockReferenceOrderConsumption,
		}
		if err := s.ledgerRepo.AppendTx(ctx, tx, entry); err != nil {
			logger.Error("[ConsumeForOrder] append ledger", zap.Uint64("ingredient_id", r.IngredientID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return len(active), nil
}

// ReservationsForOrder lists every reservation ever made for the order,
// whatever its status.
func (s *reservationAppImpl) ReservationsForOrder(ctx context.Context, userID, orderID uint64) ([]model.StockReservation, error) {
	reservations, err := s.reservationRepo.FindByOrder(ctx, orderID, userID)
	if err != nil {
		logger.Error("[ReservationsForOrder] find by order", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return reservations, nil
}

// clampAvailability returns available stock, never negative. A negative raw
// value is an invariant violation and is logged, not written back.
func clampAvailability(ing *model.Ingredient) float64 {
	available := ing.AvailableStock()
	if available < 0 {
		logger.Warn("[availability] reserved stock exceeds current stock",
			zap.Uint64("ingredient_id", ing.ID),
			zap.Float64("current_stock", ing.CurrentStock),
			zap.Float64("reserved_stock", ing.ReservedStock))
		return 0
	}
	return available
}

func isCustomError(err error, errType constant.ErrorType) bool {
	var ce errors.CustomError
	if goerrors.As(err, &ce) {
		return ce.Type() == errType
	}
	return false
}
