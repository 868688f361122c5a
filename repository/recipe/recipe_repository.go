package recipe

import (
	"context"

	"github.com/heytrack/heytrack-backend/model"
	"github.com/jmoiron/sqlx"
)

// RecipeRepository reads recipe composition rows used to expand order lines
// into ingredient requirements.
type RecipeRepository interface {
	GetItemsByRecipes(ctx context.Context, recipeIDs []uint64, userID uint64) ([]model.RecipeItem, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewRecipeRepository(conn *sqlx.DB) RecipeRepository {
	return &SQL{conn: conn}
}

const getItemsByRecipesQuery = `SELECT ri.recipe_id, ri.ingredient_id, ri.quantity
FROM recipe_item ri
JOIN recipe r ON ri.recipe_id = r.id
WHERE ri.recipe_id IN (?) AND r.user_id = ?`

func (r *SQL) GetItemsByRecipes(ctx context.Context, recipeIDs []uint64, userID uint64) ([]model.RecipeItem, error) {
	if len(recipeIDs) == 0 {
		return []model.RecipeItem{}, nil
	}

	query, args, err := sqlx.In(getItemsByRecipesQuery, recipeIDs, userID)
	if err != nil {
		return nil, err
	}
	query = r.conn.Rebind(query)

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RecipeItem, 0)
	for rows.Next() {
		var it model.RecipeItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
