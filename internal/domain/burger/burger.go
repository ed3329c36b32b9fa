package burger

import (
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
)

// Burger is an aggregate: the root row plus its recipe lines, one line per
// distinct ingredient.
type Burger struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Ingredients []IngredientLine
}

// IngredientLine carries the ingredient name so hydrated aggregates can be
// rendered without another lookup.
type IngredientLine struct {
	IngredientID int64
	Name         string
	Quantity     int
}

func New(name, description string, price float64) (*Burger, error) {
	if name == "" {
		return nil, apperr.ErrMissingField
	}
	if price <= 0 {
		return nil, apperr.ErrPriceInvalid
	}
	return &Burger{Name: name, Description: description, Price: price}, nil
}
