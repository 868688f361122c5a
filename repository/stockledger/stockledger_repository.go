package stockledger

import (
	"context"
	"fmt"

	"github.com/heytrack/heytrack-backend/model"
	"github.com/jmoiron/sqlx"
)

// StockLedgerRepository appends immutable stock-change records and serves the
// audit history. There are no update or delete paths.
type StockLedgerRepository interface {
	AppendTx(ctx context.Context, tx *sqlx.Tx, entry *model.StockLedgerEntry) error
	HistoryFor(ctx context.Context, ingredientID, userID uint64, filter *model.LedgerHistoryFilter) ([]model.StockLedgerEntry, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockLedgerRepository(conn *sqlx.DB) StockLedgerRepository {
	return &SQL{conn: conn}
}

const (
	appendEntryQuery = `INSERT INTO stock_ledger
(user_id, ingredient_id, quantity_before, quantity_after, quantity_changed, change_type, reference_id, reference_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`

	historyBase = `SELECT id, user_id, ingredient_id, quantity_before, quantity_after, quantity_changed, change_type, reference_id, reference_type, created_at
FROM stock_ledger WHERE ingredient_id = $1 AND user_id = $2`
)

func (r *SQL) AppendTx(ctx context.Context, tx *sqlx.Tx, entry *model.StockLedgerEntry) error {
	_, err := tx.ExecContext(ctx, appendEntryQuery,
		entry.UserID, entry.IngredientID, entry.QuantityBefore, entry.QuantityAfter,
		entry.QuantityChanged, entry.ChangeType, entry.ReferenceID, entry.ReferenceType)
	return err
}

func (r *SQL) HistoryFor(ctx context.Context, ingredientID, userID uint64, filter *model.LedgerHistoryFilter) ([]model.StockLedgerEntry, error) {
	query := historyBase
	args := []any{ingredientID, userID}

	if filter != nil && !filter.From.IsZero() {
		args = append(args, filter.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter != nil && !filter.To.IsZero() {
		args = append(args, filter.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	query += " ORDER BY created_at, id"
	if filter != nil && filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.StockLedgerEntry, 0)
	for rows.Next() {
		var e model.StockLedgerEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
