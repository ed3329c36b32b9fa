package customer

import (
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
)

// Customer owns zero or more orders; deleting a customer cascades to them.
// Phone is unique across all customers.
type Customer struct {
	ID    int64
	Name  string
	Phone string
}

func New(name, phone string) (*Customer, error) {
	if name == "" || phone == "" {
		return nil, apperr.ErrMissingField
	}
	return &Customer{Name: name, Phone: phone}, nil
}
