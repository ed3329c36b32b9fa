package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/ingredient"
)

// initialIngredients is the fixed catalog the restaurant opens with.
var initialIngredients = []ingredient.Ingredient{
	{Name: "Bun", Manufacturer: "Top bakery"},
	{Name: "Beef patty", Manufacturer: "Meet company"},
	{Name: "Smoked bacon", Manufacturer: "Meet company"},
	{Name: "American cheese", Manufacturer: "Cheese corporation"},
	{Name: "Mozzarella cheese", Manufacturer: "Cheese corporation"},
	{Name: "Tomato slices", Manufacturer: "Great veggies"},
	{Name: "Shredded lettuce", Manufacturer: "Great veggies"},
	{Name: "Pickle slices", Manufacturer: "Great veggies"},
	{Name: "Onions", Manufacturer: "Great veggies"},
	{Name: "Mushrooms", Manufacturer: "Some company #555"},
	{Name: "Eggs", Manufacturer: "Some company #555"},
	{Name: "Ketchup", Manufacturer: "Sauce makers"},
	{Name: "Mustard", Manufacturer: "Sauce makers"},
	{Name: "Mayonnaise", Manufacturer: "Sauce makers"},
	{Name: "Pepper sauce", Manufacturer: "Sauce makers"},
}

// SeedIngredients replaces the whole ingredient catalog with the initial
// one. Idempotent: running it twice leaves the same fifteen rows.
func SeedIngredients(ctx context.Context, pool *pgxpool.Pool) error {
	return NewIngredientRepository(pool).ReplaceAll(ctx, initialIngredients)
}
