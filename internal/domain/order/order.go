package order

import (
	"time"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/customer"
)

// Order is an aggregate: the root row plus its burger lines, one line per
// distinct burger. The total price is never stored; it is recomputed from
// the live burger prices on every read.
type Order struct {
	ID         int64
	CustomerID int64
	Customer   *customer.Customer
	CreatedAt  time.Time
	Status     Status
	Burgers    []BurgerLine
}

// BurgerLine carries the burger name and its current unit price, loaded at
// read time.
type BurgerLine struct {
	BurgerID  int64
	Name      string
	UnitPrice float64
	Quantity  int
}

// BurgersWithQuantity maps burger name to ordered quantity, for display.
func (o *Order) BurgersWithQuantity() map[string]int {
	out := make(map[string]int, len(o.Burgers))
	for _, line := range o.Burgers {
		out[line.Name] += line.Quantity
	}
	return out
}
