package reservation

import (
	"context"

	"github.com/heytrack/heytrack-backend/constant"
	"github.com/heytrack/heytrack-backend/model"
	"github.com/heytrack/heytrack-backend/utils/errors"
	"github.com/jmoiron/sqlx"
)

// ReservationRepository is the durable store for stock reservations. Every
// query is scoped by user_id; the status state machine is enforced here as
// well as in the application layer.
type ReservationRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, reservation *model.StockReservation) (uint64, error)
	FindByOrder(ctx context.Context, orderID, userID uint64) ([]model.StockReservation, error)
	FindActiveByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID, userID uint64) ([]model.StockReservation, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, from, to constant.ReservationStatus) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewReservationRepository(conn *sqlx.DB) ReservationRepository {
	return &SQL{conn: conn}
}

const (
	insertReservationQuery = `INSERT INTO stock_reservation (user_id, order_id, ingredient_id, quantity, status, created_at)
VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING id`

	findByOrderQuery = `SELECT id, user_id, order_id, ingredient_id, quantity, status, created_at, updated_at
FROM stock_reservation WHERE order_id = $1 AND user_id = $2 ORDER BY id`

	// FOR UPDATE keeps a concurrent release/consume of the same order from
	// processing the same rows twice.
	findActiveByOrderQuery = `SELECT id, user_id, order_id, ingredient_id, quantity, status, created_at, updated_at
FROM stock_reservation WHERE order_id = $1 AND user_id = $2 AND status = $3 ORDER BY id FOR UPDATE`

	updateStatusQuery = `UPDATE stock_reservation SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`
)

func (r *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, reservation *model.StockReservation) (uint64, error) {
	var id uint64
	err := tx.QueryRowxContext(ctx, insertReservationQuery,
		reservation.UserID, reservation.OrderID, reservation.IngredientID,
		reservation.Quantity, reservation.Status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) FindByOrder(ctx context.Context, orderID, userID uint64) ([]model.StockReservation, error) {
	rows, err := r.conn.QueryxContext(ctx, findByOrderQuery, orderID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.StockReservation, 0)
	for rows.Next() {
		var rr model.StockReservation
		if err := rows.StructScan(&rr); err != nil {
			return nil, err
		}
		res = append(res, rr)
	}
	return res, nil
}

func (r *SQL) FindActiveByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID, userID uint64) ([]model.StockReservation, error) {
	rows, err := tx.QueryxContext(ctx, findActiveByOrderQuery, orderID, userID, constant.ReservationStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.StockReservation, 0)
	for rows.Next() {
		var rr model.StockReservation
		if err := rows.StructScan(&rr); err != nil {
			return nil, err
		}
		res = append(res, rr)
	}
	return res, nil
}

// UpdateStatusTx moves a reservation between statuses. The transition table is
// checked first, then the previous status is part of the UPDATE predicate, so
// a row that moved concurrently fails the update instead of being overwritten.
func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64, from, to constant.ReservationStatus) error {
	if !constant.IsValidReservationTransition(from, to) {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}

	res, err := tx.ExecContext(ctx, updateStatusQuery, to, reservationID, from)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrInvalidTransition)
	}
	return nil
}
