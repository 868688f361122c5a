package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	inventoryapp "github.com/heytrack/heytrack-backend/application/inventory"
	orderapp "github.com/heytrack/heytrack-backend/application/order"
	reservationapp "github.com/heytrack/heytrack-backend/application/reservation"
	userapp "github.com/heytrack/heytrack-backend/application/user"
	"github.com/heytrack/heytrack-backend/cmd/config"
	"github.com/heytrack/heytrack-backend/constant"
	"github.com/heytrack/heytrack-backend/model"
	"github.com/heytrack/heytrack-backend/utils/errors"
	validatorx "github.com/heytrack/heytrack-backend/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp        userapp.UserApp
	InventoryApp   inventoryapp.InventoryApp
	ReservationApp reservationapp.ReservationApp
	OrderApp       orderapp.OrderApp
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, InventoryApp inventoryapp.InventoryApp, ReservationApp reservationapp.ReservationApp, OrderApp orderapp.OrderApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:        UserApp,
		InventoryApp:   InventoryApp,
		ReservationApp: ReservationApp,
		OrderApp:       OrderApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	mux.HandleFunc("/ingredients", rh.ListIngredients).Methods(http.MethodGet)
	mux.HandleFunc("/ingredients/{id}", rh.GetIngredient).Methods(http.MethodGet)
	mux.HandleFunc("/ingredients/{id}/availability", rh.GetAvailability).Methods(http.MethodGet)
	mux.HandleFunc("/ingredients/{id}/history", rh.GetStockHistory).Methods(http.MethodGet)
	mux.HandleFunc("/ingredients/{id}/restock", rh.Restock).Methods(http.MethodPost)
	mux.HandleFunc("/stock/check", rh.CheckAvailability).Methods(http.MethodPost)
	mux.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id}/complete", rh.CompleteOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id}/cancel", rh.CancelOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id}/reservations", rh.GetOrderReservations).Methods(http.MethodGet)

	// Internal routes, keyed with the service API key instead of a tenant token
	internal := mux.PathPrefix("/internal/").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/v1/order/{id}/cancel", rh.InternalCancelOrder).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Register handler
// @Summary Register tenant
// @Description Register a new business account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login tenant
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
