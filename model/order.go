package model

import (
	"time"

	"github.com/heytrack/heytrack-backend/constant"
)

type OrderItemRequest struct {
	RecipeID uint64 `json:"recipe_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type OrderRequest struct {
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemRequest `json:"items" validate:"required,dive,required"`
}

type OrderResponse struct {
	OrderID   uint64    `json:"order_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type InsertOrderTxItem struct {
	UserID       uint64
	CustomerName string
	Status       constant.OrderStatus
	ExpiresAT    time.Time
}

type OrderDetail struct {
	ID     uint64               `db:"id"`
	UserID uint64               `db:"user_id"`
	Status constant.OrderStatus `db:"status"`
}

type CompleteOrderResponse struct {
	OrderID       uint64 `json:"order_id"`
	CountConsumed int    `json:"count_consumed"`
}

type CancelOrderResponse struct {
	OrderID       uint64 `json:"order_id"`
	CountReleased int    `json:"count_released"`
}
