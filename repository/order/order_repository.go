package order

import (
	"context"
	"database/sql"

	"github.com/heytrack/heytrack-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemRequest) error
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID, userID uint64, status int) error
	GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID, userID uint64) (*model.OrderDetail, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery     = `INSERT INTO customer_order (user_id, customer_name, status, expires_at, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	insertOrderItemQuery = `INSERT INTO order_item (order_id, recipe_id, quantity) VALUES ($1, $2, $3)`
	updateStatusQuery    = `UPDATE customer_order SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`
	getOrderDetailQuery  = `SELECT id, user_id, status FROM customer_order WHERE id = $1 AND user_id = $2`
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	var id uint64
	err := tx.QueryRowxContext(ctx, insertOrderQuery, req.UserID, req.CustomerName, req.Status, req.ExpiresAT).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.OrderItemRequest) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery, orderID, it.RecipeID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID, userID uint64, status int) error {
	res, err := tx.ExecContext(ctx, updateStatusQuery, status, orderID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID, userID uint64) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	row := tx.QueryRowxContext(ctx, getOrderDetailQuery, orderID, userID)
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}
