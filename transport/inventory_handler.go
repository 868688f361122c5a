package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/heytrack/heytrack-backend/constant"
	"github.com/heytrack/heytrack-backend/model"
	utilsContext "github.com/heytrack/heytrack-backend/utils/context"
	"github.com/heytrack/heytrack-backend/utils/errors"
	validatorx "github.com/heytrack/heytrack-backend/utils/validator"
)

// ListIngredients handler
// @Summary List ingredients
// @Description List the tenant's ingredients with stock and availability
// @Tags Inventory
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.IngredientListResponse
// @Security BearerAuth
// @Router /ingredients [get]
func (s *RestHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.InventoryApp.ListIngredients(ctx, userID, page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetIngredient handler
// @Summary Get ingredient
// @Description Get one ingredient with stock and availability
// @Tags Inventory
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} model.IngredientDetail
// @Security BearerAuth
// @Router /ingredients/{id} [get]
func (s *RestHandler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	ingredientID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.GetIngredient(ctx, userID, ingredientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAvailability handler
// @Summary Available stock
// @Description Quantity of the ingredient still promisable to new orders
// @Tags Inventory
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]float64
// @Security BearerAuth
// @Router /ingredients/{id}/availability [get]
func (s *RestHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	ingredientID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	available, err := s.InventoryApp.AvailableStock(ctx, userID, ingredientID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]float64{"available_stock": available})
}

// GetStockHistory handler
// @Summary Stock history
// @Description Ledger entries for the ingredient, oldest first
// @Tags Inventory
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Param limit query int false "Max entries"
// @Success 200 {object} model.StockHistoryResponse
// @Security BearerAuth
// @Router /ingredients/{id}/history [get]
func (s *RestHandler) GetStockHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	ingredientID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	filter := &model.LedgerHistoryFilter{}
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.From = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.To = t
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	res, err := s.InventoryApp.StockHistory(ctx, userID, ingredientID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Restock handler
// @Summary Restock ingredient
// @Description Record a purchase receipt, increasing physical stock
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param request body model.RestockRequest true "Restock Request"
// @Success 200 {object} model.RestockResponse
// @Security BearerAuth
// @Router /ingredients/{id}/restock [post]
func (s *RestHandler) Restock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	ingredientID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.RestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.RestockIngredient(ctx, userID, ingredientID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CheckAvailability handler
// @Summary Check availability
// @Description Check requested quantities against availability; reports every shortfall
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.CheckAvailabilityRequest true "Check Request"
// @Success 200 {object} model.AvailabilityResult
// @Security BearerAuth
// @Router /stock/check [post]
func (s *RestHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReservationApp.CheckAvailability(ctx, userID, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
