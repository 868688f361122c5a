package model

import "time"

// Ingredient is a raw material owned by one tenant. CurrentStock is the
// physical quantity on hand, ReservedStock the portion promised to active
// reservations. Both are mutated only through the conditional updates in the
// ingredient repository.
type Ingredient struct {
	ID            uint64     `db:"id" json:"id"`
	UserID        uint64     `db:"user_id" json:"-"`
	Name          string     `db:"name" json:"name"`
	Unit          string     `db:"unit" json:"unit"`
	CurrentStock  float64    `db:"current_stock" json:"current_stock"`
	ReservedStock float64    `db:"reserved_stock" json:"reserved_stock"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// AvailableStock is what can still be promised to new orders. Callers clamp
// negative values before returning them to clients.
func (i *Ingredient) AvailableStock() float64 {
	return i.CurrentStock - i.ReservedStock
}

type IngredientDetail struct {
	ID             uint64  `json:"id"`
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	CurrentStock   float64 `json:"current_stock"`
	ReservedStock  float64 `json:"reserved_stock"`
	AvailableStock float64 `json:"available_stock"`
}

type IngredientListResponse struct {
	Items      []IngredientDetail `json:"items"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
}

type RestockRequest struct {
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Note     string  `json:"note"`
}

type RestockResponse struct {
	IngredientID uint64  `json:"ingredient_id"`
	CurrentStock float64 `json:"current_stock"`
}
