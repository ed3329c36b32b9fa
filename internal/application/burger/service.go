package burger

import (
	"context"
	"fmt"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/burger"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/composition"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/repository"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

type Service struct {
	burgers     repository.BurgerRepository
	ingredients repository.IngredientRepository
	log         logger.Logger
}

// CreateBurgerCommand lists the recipe as ingredient ids, one entry per
// unit: a repeated id becomes a single line with a summed quantity.
type CreateBurgerCommand struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	IngredientIDs []int64 `json:"ingredient_ids"`
}

// UpdateBurgerCommand carries only the fields to change. A nil
// IngredientIDs keeps the stored recipe; a non-nil one replaces it
// wholesale.
type UpdateBurgerCommand struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	IngredientIDs *[]int64 `json:"ingredient_ids"`
}

func NewService(burgers repository.BurgerRepository, ingredients repository.IngredientRepository, log logger.Logger) *Service {
	return &Service{burgers: burgers, ingredients: ingredients, log: log}
}

// Create validates the recipe before anything is written: the id list is
// merged into per-ingredient quantities and every referenced ingredient
// must exist. On success the returned burger is fully hydrated.
func (s *Service) Create(ctx context.Context, cmd CreateBurgerCommand) (*domain.Burger, error) {
	b, err := domain.New(cmd.Name, cmd.Description, cmd.Price)
	if err != nil {
		return nil, err
	}

	lines, err := composition.AggregateAndValidate(ctx, ingredientRefs(cmd.IngredientIDs), "ingredient", s.ingredients)
	if err != nil {
		return nil, err
	}

	created, err := s.burgers.Create(ctx, b, lines)
	if err != nil {
		return nil, fmt.Errorf("create burger: %w", err)
	}

	s.log.Info("burger created",
		logger.Int64("burger_id", created.ID),
		logger.String("name", created.Name),
		logger.Int("ingredients", len(created.Ingredients)))
	return created, nil
}

// Update applies the supplied fields; a missing burger yields (nil, nil).
func (s *Service) Update(ctx context.Context, id int64, cmd UpdateBurgerCommand) (*domain.Burger, error) {
	existing, err := s.burgers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load burger: %w", err)
	}
	if existing == nil {
		s.log.Warn("burger not found for update", logger.Int64("burger_id", id))
		return nil, nil
	}

	if cmd.Name != nil {
		existing.Name = *cmd.Name
	}
	if cmd.Description != nil {
		existing.Description = *cmd.Description
	}
	if cmd.Price != nil {
		if *cmd.Price <= 0 {
			return nil, apperr.ErrPriceInvalid
		}
		existing.Price = *cmd.Price
	}

	var lines []composition.Line
	if cmd.IngredientIDs != nil {
		lines, err = composition.AggregateAndValidate(ctx, ingredientRefs(*cmd.IngredientIDs), "ingredient", s.ingredients)
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.burgers.Update(ctx, existing, lines)
	if err != nil {
		return nil, fmt.Errorf("update burger: %w", err)
	}

	s.log.Info("burger updated", logger.Int64("burger_id", id))
	return updated, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Burger, error) {
	return s.burgers.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context, offset, limit int) ([]*domain.Burger, error) {
	return s.burgers.FindAll(ctx, offset, limit)
}

// Delete fails with ErrReferentialConflict while the burger is part of any
// order; historical orders keep their lines intact.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.burgers.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.Info("burger deleted", logger.Int64("burger_id", id))
	}
	return deleted, nil
}

// ingredientRefs expands the "repeat id N times" calling convention into
// refs with quantity 1 for the composition validator to merge.
func ingredientRefs(ids []int64) []composition.Ref {
	refs := make([]composition.Ref, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, composition.Ref{ID: id, Quantity: 1})
	}
	return refs
}
