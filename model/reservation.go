package model

import (
	"time"

	"github.com/heytrack/heytrack-backend/constant"
)

// StockReservation holds a quantity of one ingredient against one order.
type StockReservation struct {
	ID           uint64                     `db:"id" json:"id"`
	UserID       uint64                     `db:"user_id" json:"-"`
	OrderID      uint64                     `db:"order_id" json:"order_id"`
	IngredientID uint64                     `db:"ingredient_id" json:"ingredient_id"`
	Quantity     float64                    `db:"quantity" json:"quantity"`
	Status       constant.ReservationStatus `db:"status" json:"status"`
	CreatedAt    time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time                 `db:"updated_at" json:"updated_at,omitempty"`
}

// IngredientRequirement is one line of an availability check or reservation
// request, usually produced by recipe expansion.
type IngredientRequirement struct {
	IngredientID uint64  `json:"ingredient_id" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"required,gt=0"`
}

// InsufficientItem describes one shortfall found by an availability check.
type InsufficientItem struct {
	IngredientID uint64  `json:"ingredient_id"`
	Requested    float64 `json:"requested"`
	Available    float64 `json:"available"`
}

type AvailabilityResult struct {
	Available         bool               `json:"available"`
	InsufficientItems []InsufficientItem `json:"insufficient_items,omitempty"`
}

type CheckAvailabilityRequest struct {
	Items []IngredientRequirement `json:"items" validate:"required,dive,required"`
}
