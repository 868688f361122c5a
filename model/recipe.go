package model

// RecipeItem is one composition row: making one unit of the recipe consumes
// Quantity of the ingredient.
type RecipeItem struct {
	RecipeID     uint64  `db:"recipe_id"`
	IngredientID uint64  `db:"ingredient_id"`
	Quantity     float64 `db:"quantity"`
}
