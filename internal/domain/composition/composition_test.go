package composition

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestAggregate_MergesDuplicates(t *testing.T) {
	lines, err := Aggregate([]Ref{
		{ID: 1, Quantity: 1},
		{ID: 1, Quantity: 1},
		{ID: 2, Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, []Line{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 1}}, lines)
}

func TestAggregate_SumsExplicitQuantities(t *testing.T) {
	lines, err := Aggregate([]Ref{
		{ID: 3, Quantity: 2},
		{ID: 3, Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, []Line{{ID: 3, Quantity: 3}}, lines)
}

func TestAggregate_OrderIndependentTotals(t *testing.T) {
	forward, err := Aggregate([]Ref{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 1}, {ID: 1, Quantity: 3}})
	require.NoError(t, err)
	backward, err := Aggregate([]Ref{{ID: 1, Quantity: 3}, {ID: 2, Quantity: 1}, {ID: 1, Quantity: 2}})
	require.NoError(t, err)

	totals := func(lines []Line) map[int64]int {
		out := make(map[int64]int)
		for _, l := range lines {
			out[l.ID] = l.Quantity
		}
		return out
	}
	assert.Equal(t, totals(forward), totals(backward))
	assert.Equal(t, map[int64]int{1: 5, 2: 1}, totals(forward))
}

func TestAggregate_Empty(t *testing.T) {
	_, err := Aggregate(nil)
	assert.ErrorIs(t, err, apperr.ErrEmptyComposition)

	_, err = Aggregate([]Ref{})
	assert.ErrorIs(t, err, apperr.ErrEmptyComposition)
}

func TestAggregate_InvalidQuantity(t *testing.T) {
	_, err := Aggregate([]Ref{{ID: 1, Quantity: 0}})
	assert.ErrorIs(t, err, apperr.ErrQuantityInvalid)
}

func TestAggregateAndValidate_AllResolved(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	resolver.On("Exists", mock.Anything, int64(2)).Return(true, nil)

	lines, err := AggregateAndValidate(context.Background(), []Ref{
		{ID: 1, Quantity: 1},
		{ID: 1, Quantity: 1},
		{ID: 2, Quantity: 1},
	}, "ingredient", resolver)

	require.NoError(t, err)
	assert.Equal(t, []Line{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 1}}, lines)
	// Merged before resolving: each distinct id checked once.
	resolver.AssertNumberOfCalls(t, "Exists", 2)
}

func TestAggregateAndValidate_MissingReference(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Exists", mock.Anything, int64(7)).Return(false, nil)

	_, err := AggregateAndValidate(context.Background(), []Ref{{ID: 7, Quantity: 1}}, "burger", resolver)

	var refErr *apperr.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "burger", refErr.Kind)
	assert.Equal(t, int64(7), refErr.ID)
}

func TestAggregateAndValidate_ResolverFailure(t *testing.T) {
	resolver := new(MockResolver)
	boom := errors.New("connection lost")
	resolver.On("Exists", mock.Anything, int64(1)).Return(false, boom)

	_, err := AggregateAndValidate(context.Background(), []Ref{{ID: 1, Quantity: 1}}, "ingredient", resolver)
	assert.ErrorIs(t, err, boom)
}
