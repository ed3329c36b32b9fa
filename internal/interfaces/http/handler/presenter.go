package handler

import (
	"time"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/burger"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/customer"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/ingredient"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/order"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/pricing"
)

type customerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ingredientResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
}

type burgerLineResponse struct {
	IngredientID int64  `json:"ingredient_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
}

type burgerResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Price       float64              `json:"price"`
	Ingredients []burgerLineResponse `json:"ingredients"`
}

type orderLineResponse struct {
	BurgerID  int64   `json:"burger_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type orderResponse struct {
	ID                  int64               `json:"id"`
	CustomerID          int64               `json:"customer_id"`
	Customer            *customerResponse   `json:"customer,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	Status              string              `json:"status"`
	Items               []orderLineResponse `json:"items"`
	BurgersWithQuantity map[string]int      `json:"burgers_with_quantity"`
	TotalPrice          float64             `json:"total_price"`
}

func presentCustomer(c *customer.Customer) customerResponse {
	return customerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

func presentCustomers(customers []*customer.Customer) []customerResponse {
	out := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, presentCustomer(c))
	}
	return out
}

func presentIngredient(ing *ingredient.Ingredient) ingredientResponse {
	return ingredientResponse{ID: ing.ID, Name: ing.Name, Manufacturer: ing.Manufacturer}
}

func presentIngredients(ingredients []*ingredient.Ingredient) []ingredientResponse {
	out := make([]ingredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, presentIngredient(ing))
	}
	return out
}

func presentBurger(b *burger.Burger) burgerResponse {
	lines := make([]burgerLineResponse, 0, len(b.Ingredients))
	for _, line := range b.Ingredients {
		lines = append(lines, burgerLineResponse{
			IngredientID: line.IngredientID,
			Name:         line.Name,
			Quantity:     line.Quantity,
		})
	}
	return burgerResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Ingredients: lines,
	}
}

func presentBurgers(burgers []*burger.Burger) []burgerResponse {
	out := make([]burgerResponse, 0, len(burgers))
	for _, b := range burgers {
		out = append(out, presentBurger(b))
	}
	return out
}

// presentOrder computes the total from the lines' live unit prices; it is
// never read from storage.
func presentOrder(o *order.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(o.Burgers))
	for _, line := range o.Burgers {
		lines = append(lines, orderLineResponse{
			BurgerID:  line.BurgerID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  pricing.Subtotal(line),
		})
	}

	resp := orderResponse{
		ID:                  o.ID,
		CustomerID:          o.CustomerID,
		CreatedAt:           o.CreatedAt,
		Status:              string(o.Status),
		Items:               lines,
		BurgersWithQuantity: o.BurgersWithQuantity(),
		TotalPrice:          pricing.Total(o.Burgers),
	}
	if o.Customer != nil {
		c := presentCustomer(o.Customer)
		resp.Customer = &c
	}
	return resp
}

func presentOrders(orders []*order.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, presentOrder(o))
	}
	return out
}
