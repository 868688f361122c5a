package order

import (
	"context"
	"sort"
	"time"

	"github.com/heytrack/heytrack-backend/application/reservation"
	"github.com/heytrack/heytrack-backend/cmd/config"
	"github.com/heytrack/heytrack-backend/constant"
	"github.com/heytrack/heytrack-backend/model"
	orderrepo "github.com/heytrack/heytrack-backend/repository/order"
	reciperepo "github.com/heytrack/heytrack-backend/repository/recipe"
	txrepo "github.com/heytrack/heytrack-backend/repository/tx"
	"github.com/heytrack/heytrack-backend/thirdparty/rabbitmq"
	"github.com/heytrack/heytrack-backend/utils/errors"
	"github.com/heytrack/heytrack-backend/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderResponse, error)
	CompleteOrder(ctx context.Context, userID, orderID uint64) (*model.CompleteOrderResponse, error)
	CancelOrder(ctx context.Context, userID, orderID uint64) (*model.CancelOrderResponse, error)
}

type orderAppImpl struct {
	config         *config.Config
	txRepo         txrepo.TxRepository
	orderRepo      orderrepo.OrderRepository
	recipeRepo     reciperepo.RecipeRepository
	reservationApp reservation.ReservationApp
	publisher      *rabbitmq.Publisher
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, recipeRepo reciperepo.RecipeRepository, reservationApp reservation.ReservationApp, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		config:         config,
		txRepo:         txRepo,
		orderRepo:      orderRepo,
		recipeRepo:     recipeRepo,
		reservationApp: reservationApp,
		publisher:      publisher,
	}
}

// CreateOrder expands the order lines into ingredient requirements, inserts
// the pending order, and reserves stock for every requirement inside the same
// transaction. A shortfall anywhere rolls back the order and all reservations.
func (s *orderAppImpl) CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	requirements, err := s.expandRequirements(ctx, userID, req.Items)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	expiresAt := time.Now().Add(s.config.Order.OrderExpiration)
	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.InsertOrderTxItem{
		UserID:       userID,
		CustomerName: req.CustomerName,
		Status:       constant.OrderStatusPending,
		ExpiresAT:    expiresAt,
	})
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, req.Items); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.reservationApp.ReserveForOrderTx(ctx, tx, userID, orderID, requirements); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderExpirationMessage{
			OrderID:   orderID,
			UserID:    userID,
			ExpiresAt: expiresAt,
		}
		if err := s.publisher.PublishOrderExpiration(msg); err != nil {
			logger.Error("[CreateOrder] publish order expiration", zap.String("error", err.Error()))
		}
	}

	return &model.OrderResponse{
		OrderID:   orderID,
		ExpiresAt: expiresAt,
	}, nil
}

// CompleteOrder consumes the order's reservations and marks it completed.
func (s *orderAppImpl) CompleteOrder(ctx context.Context, userID, orderID uint64) (*model.CompleteOrderResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CompleteOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderDetail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID, userID)
	if err != nil {
		logger.Error("[CompleteOrder] get order detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if orderDetail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if orderDetail.Status != constant.OrderStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	count, err := s.reservationApp.ConsumeForOrderTx(ctx, tx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, userID, int(constant.OrderStatusCompleted)); err != nil {
		logger.Error("[CompleteOrder] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CompleteOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.CompleteOrderResponse{
		OrderID:       orderID,
		CountConsumed: count,
	}, nil
}

// CancelOrder releases the order's reservations and marks it canceled.
// Physical stock is untouched.
func (s *orderAppImpl) CancelOrder(ctx context.Context, userID, orderID uint64) (*model.CancelOrderResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderDetail, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID, userID)
	if err != nil {
		logger.Error("[CancelOrder] get order detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if orderDetail == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if orderDetail.Status != constant.OrderStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	count, err := s.reservationApp.ReleaseForOrderTx(ctx, tx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, userID, int(constant.OrderStatusCanceled)); err != nil {
		logger.Error("[CancelOrder] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.CancelOrderResponse{
		OrderID:       orderID,
		CountReleased: count,
	}, nil
}

// expandRequirements resolves recipe composition into aggregated ingredient
// requirements. Lines sharing an ingredient are summed so the reservation
// protocol sees one requirement per ingredient.
func (s *orderAppImpl) expandRequirements(ctx context.Context, userID uint64, items []model.OrderItemRequest) ([]model.IngredientRequirement, error) {
	recipeIDs := make([]uint64, 0, len(items))
	for _, it := range items {
		recipeIDs = append(recipeIDs, it.RecipeID)
	}

	recipeItems, err := s.recipeRepo.GetItemsByRecipes(ctx, recipeIDs, userID)
	if err != nil {
		logger.Error("[CreateOrder] get recipe items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	perRecipe := make(map[uint64][]model.RecipeItem)
	for _, ri := range recipeItems {
		perRecipe[ri.RecipeID] = append(perRecipe[ri.RecipeID], ri)
	}

	totals := make(map[uint64]float64)
	for _, it := range items {
		composition, ok := perRecipe[it.RecipeID]
		if !ok {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		for _, ri := range composition {
			totals[ri.IngredientID] += ri.Quantity * float64(it.Quantity)
		}
	}

	requirements := make([]model.IngredientRequirement, 0, len(totals))
	for ingredientID, quantity := range totals {
		requirements = append(requirements, model.IngredientRequirement{
			IngredientID: ingredientID,
			Quantity:     quantity,
		})
	}
	sort.Slice(requirements, func(i, j int) bool {
		return requirements[i].IngredientID < requirements[j].IngredientID
	})

	return requirements, nil
}
