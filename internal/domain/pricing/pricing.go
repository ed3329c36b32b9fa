// Package pricing derives an order's total and a burger's ingredient
// summary. Pure functions, no I/O; float64 arithmetic with no rounding.
package pricing

import (
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/burger"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/order"
)

// Total is the sum over the order's lines of unit price times quantity.
// Lines carry the burger's current price, so the total tracks price changes
// made after the order was created.
func Total(lines []order.BurgerLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// Subtotal prices one line.
func Subtotal(line order.BurgerLine) float64 {
	return line.UnitPrice * float64(line.Quantity)
}

// IngredientSummary maps ingredient name to quantity for display.
func IngredientSummary(lines []burger.IngredientLine) map[string]int {
	out := make(map[string]int, len(lines))
	for _, line := range lines {
		out[line.Name] += line.Quantity
	}
	return out
}
