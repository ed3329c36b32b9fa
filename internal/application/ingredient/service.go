package ingredient

import (
	"context"

	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/ingredient"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/repository"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

// Service is read-only: the ingredient catalog is owned by the seed
// routine, not the API.
type Service struct {
	ingredients repository.IngredientRepository
	log         logger.Logger
}

func NewService(ingredients repository.IngredientRepository, log logger.Logger) *Service {
	return &Service{ingredients: ingredients, log: log}
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	return s.ingredients.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context, offset, limit int) ([]*domain.Ingredient, error) {
	return s.ingredients.FindAll(ctx, offset, limit)
}
