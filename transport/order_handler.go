package transport

import (
	"encoding/json"
	"net/http"

	"github.com/heytrack/heytrack-backend/constant"
	"github.com/heytrack/heytrack-backend/model"
	utilsContext "github.com/heytrack/heytrack-backend/utils/context"
	"github.com/heytrack/heytrack-backend/utils/errors"
	validatorx "github.com/heytrack/heytrack-backend/utils/validator"
)

// CreateOrder handler
// @Summary Create order
// @Description Create a pending order and reserve ingredient stock for it
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.OrderRequest true "Order Request"
// @Success 200 {object} model.OrderResponse
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CompleteOrder handler
// @Summary Complete order
// @Description Consume the order's reservations and mark it completed
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.CompleteOrderResponse
// @Security BearerAuth
// @Router /orders/{id}/complete [post]
func (s *RestHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	orderID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CompleteOrder(ctx, userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelOrder handler
// @Summary Cancel order
// @Description Release the order's reservations and mark it canceled
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.CancelOrderResponse
// @Security BearerAuth
// @Router /orders/{id}/cancel [post]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	orderID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CancelOrder(ctx, userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetOrderReservations handler
// @Summary Order reservations
// @Description List every reservation made for the order
// @Tags Order
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {array} model.StockReservation
// @Security BearerAuth
// @Router /orders/{id}/reservations [get]
func (s *RestHandler) GetOrderReservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	orderID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReservationApp.ReservationsForOrder(ctx, userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

type internalCancelRequest struct {
	UserID uint64 `json:"user_id" validate:"required"`
}

// InternalCancelOrder cancels an expired order on behalf of the expiration
// consumer. The tenant id comes from the message payload, not a session.
func (s *RestHandler) InternalCancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req internalCancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CancelOrder(ctx, req.UserID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
