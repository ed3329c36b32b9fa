// Package composition merges and validates the line items of a burger
// recipe or an order before anything is written.
package composition

import (
	"context"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
)

// Ref is one requested (component id, quantity) pair. Callers expressing
// "repeat id N times" submit the id N times with quantity 1.
type Ref struct {
	ID       int64
	Quantity int
}

// Line is a merged line item: at most one per distinct id.
type Line struct {
	ID       int64
	Quantity int
}

// Resolver answers whether a referenced id exists. Repositories satisfy it
// with their shallow existence check.
type Resolver interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Aggregate sums quantities per distinct id, preserving first-occurrence
// order. An empty input fails with ErrEmptyComposition; a non-positive
// quantity fails with ErrQuantityInvalid.
func Aggregate(refs []Ref) ([]Line, error) {
	if len(refs) == 0 {
		return nil, apperr.ErrEmptyComposition
	}

	merged := make(map[int64]int, len(refs))
	seen := make([]int64, 0, len(refs))
	for _, ref := range refs {
		if ref.Quantity <= 0 {
			return nil, apperr.ErrQuantityInvalid
		}
		if _, ok := merged[ref.ID]; !ok {
			seen = append(seen, ref.ID)
		}
		merged[ref.ID] += ref.Quantity
	}

	lines := make([]Line, 0, len(seen))
	for _, id := range seen {
		lines = append(lines, Line{ID: id, Quantity: merged[id]})
	}
	return lines, nil
}

// AggregateAndValidate aggregates refs and then verifies every distinct id
// through the resolver. The first missing id aborts with a
// ReferenceNotFoundError carrying kind, so nothing is persisted partially.
func AggregateAndValidate(ctx context.Context, refs []Ref, kind string, resolver Resolver) ([]Line, error) {
	lines, err := Aggregate(refs)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		ok, err := resolver.Exists(ctx, line.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &apperr.ReferenceNotFoundError{Kind: kind, ID: line.ID}
		}
	}
	return lines, nil
}
