package model

import (
	"time"

	"github.com/heytrack/heytrack-backend/constant"
)

// StockLedgerEntry is an immutable audit record of one physical stock change.
// Rows are append-only; nothing in the codebase updates or deletes them.
type StockLedgerEntry struct {
	ID              uint64                   `db:"id" json:"id"`
	UserID          uint64                   `db:"user_id" json:"-"`
	IngredientID    uint64                   `db:"ingredient_id" json:"ingredient_id"`
	QuantityBefore  float64                  `db:"quantity_before" json:"quantity_before"`
	QuantityAfter   float64                  `db:"quantity_after" json:"quantity_after"`
	QuantityChanged float64                  `db:"quantity_changed" json:"quantity_changed"`
	ChangeType      constant.StockChangeType `db:"change_type" json:"change_type"`
	ReferenceID     uint64                   `db:"reference_id" json:"reference_id"`
	ReferenceType   string                   `db:"reference_type" json:"reference_type"`
	CreatedAt       time.Time                `db:"created_at" json:"created_at"`
}

// LedgerHistoryFilter bounds a history query. Zero time values mean unbounded.
type LedgerHistoryFilter struct {
	From  time.Time
	To    time.Time
	Limit int
}

type StockHistoryResponse struct {
	IngredientID uint64             `json:"ingredient_id"`
	Entries      []StockLedgerEntry `json:"entries"`
}
