// Package apperr holds the error kinds shared across the domain. Boundary
// layers map them onto HTTP statuses with errors.Is / errors.As.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyComposition rejects a burger or order submitted without line items.
	ErrEmptyComposition = errors.New("composition must contain at least one line item")
	// ErrQuantityInvalid rejects a line item with a non-positive quantity.
	ErrQuantityInvalid = errors.New("line item quantity must be greater than zero")
	// ErrDuplicatePhone rejects a customer phone already used by another customer.
	ErrDuplicatePhone = errors.New("phone number is already in use by another customer")
	// ErrPriceInvalid rejects a non-positive burger price.
	ErrPriceInvalid = errors.New("price must be greater than zero")
	// ErrMissingField rejects a create request with a required field left empty.
	ErrMissingField = errors.New("required field is missing")
	// ErrInvalidStatus rejects an order status outside the known set.
	ErrInvalidStatus = errors.New("unknown order status")
	// ErrReferentialConflict blocks a delete while other records still
	// reference the target.
	ErrReferentialConflict = errors.New("entity is still referenced by existing records")
)

// ReferenceNotFoundError reports a line item or foreign key pointing at an
// id that does not exist. Unlike an absent root entity, which reads report
// as a nil result, a dangling reference aborts the whole operation.
type ReferenceNotFoundError struct {
	Kind string
	ID   int64
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d was not found", e.Kind, e.ID)
}

// IsConflict reports whether err is a recoverable domain violation that the
// API surfaces as 409 Conflict.
func IsConflict(err error) bool {
	var refErr *ReferenceNotFoundError
	if errors.As(err, &refErr) {
		return true
	}
	for _, kind := range []error{
		ErrEmptyComposition,
		ErrQuantityInvalid,
		ErrDuplicatePhone,
		ErrPriceInvalid,
		ErrMissingField,
		ErrInvalidStatus,
		ErrReferentialConflict,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
