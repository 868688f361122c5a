package ingredient

import (
	"context"
	"database/sql"

	"github.com/heytrack/heytrack-backend/model"
	"github.com/jmoiron/sqlx"
)

// IngredientRepository owns every mutation of current_stock and
// reserved_stock. All writes are conditional single-statement updates so the
// reserved_stock <= current_stock invariant can never be violated, even under
// concurrent requests.
type IngredientRepository interface {
	GetByID(ctx context.Context, ingredientID, userID uint64) (*model.Ingredient, error)
	List(ctx context.Context, userID uint64, page, perPage int) ([]model.Ingredient, int64, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64) (*model.Ingredient, error)
	ReserveStockTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64, quantity float64) (bool, error)
	ReleaseStockTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64, quantity float64) error
	ConsumeStockTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64, quantity float64) (float64, error)
	AddStockTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64, quantity float64) (float64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewIngredientRepository(conn *sqlx.DB) IngredientRepository {
	return &SQL{conn: conn}
}

const (
	getIngredientQuery = `SELECT id, user_id, name, unit, current_stock, reserved_stock, created_at, updated_at
FROM ingredient WHERE id = $1 AND user_id = $2`

	listIngredientsQuery = `SELECT id, user_id, name, unit, current_stock, reserved_stock, created_at, updated_at
FROM ingredient WHERE user_id = $1 ORDER BY name LIMIT $2 OFFSET $3`

	countIngredientsQuery = `SELECT COUNT(*) FROM ingredient WHERE user_id = $1`

	// The availability check and the reserved_stock increment are a single
	// atomic statement. Zero rows affected means insufficient availability
	// (or a missing/foreign-tenant ingredient).
	reserveStockQuery = `UPDATE ingredient
SET reserved_stock = reserved_stock + $1, updated_at = NOW()
WHERE id = $2 AND user_id = $3 AND current_stock - reserved_stock >= $1`

	releaseStockQuery = `UPDATE ingredient
SET reserved_stock = GREATEST(reserved_stock - $1, 0), updated_at = NOW()
WHERE id = $2 AND user_id = $3`

	consumeStockQuery = `UPDATE ingredient
SET current_stock = current_stock - $1, reserved_stock = GREATEST(reserved_stock - $1, 0), updated_at = NOW()
WHERE id = $2 AND user_id = $3 AND current_stock >= $1
RETURNING current_stock`

	addStockQuery = `UPDATE ingredient
SET current_stock = current_stock + $1, updated_at = NOW()
WHERE id = $2 AND user_id = $3
RETURNING current_stock`
)

func (r *SQL) GetByID(ctx context.Context, ingredientID, userID uint64) (*model.Ingredient, error) {
	var entity model.Ingredient
	if err := r.conn.QueryRowxContext(ctx, getIngredientQuery, ingredientID, userID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64) (*model.Ingredient, error) {
	var entity model.Ingredient
	if err := tx.QueryRowxContext(ctx, getIngredientQuery, ingredientID, userID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) List(ctx context.Context, userID uint64, page, perPage int) ([]model.Ingredient, int64, error) {
	offset := (page - 1) * perPage

	rows, err := r.conn.QueryxContext(ctx, listIngredientsQuery, userID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.Ingredient, 0)
	for rows.Next() {
		var it model.Ingredient
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}

	var total int64
	if err := r.conn.GetContext(ctx, &total, countIngredientsQuery, userID); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ReserveStockTx increments reserved_stock by quantity if and only if enough
// availability remains. Returns false when the guard rejected the update.
func (r *SQL) ReserveStockTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64, quantity float64) (bool, error) {
	res, err := tx.ExecContext(ctx, reserveStockQuery, quantity, ingredientID, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *SQL) ReleaseStockTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64, quantity float64) error {
	_, err := tx.ExecContext(ctx, releaseStockQuery, quantity, ingredientID, userID)
	return err
}

// ConsumeStockTx turns a hold into a permanent deduction and returns the new
// current_stock so the caller can write a ledger entry with before/after.
func (r *SQL) ConsumeStockTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64, quantity float64) (float64, error) {
	var newStock float64
	if err := tx.QueryRowxContext(ctx, consumeStockQuery, quantity, ingredientID, userID).Scan(&newStock); err != nil {
		return 0, err
	}
	return newStock, nil
}

func (r *SQL) AddStockTx(ctx context.Context, tx *sqlx.Tx, ingredientID, userID uint64, quantity float64) (float64, error) {
	var newStock float64
	if err := tx.QueryRowxContext(ctx, addStockQuery, quantity, ingredientID, userID).Scan(&newStock); err != nil {
		return 0, err
	}
	return newStock, nil
}
