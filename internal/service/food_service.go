package service

import (
	"context"

	"github.com/quickbite/quickbite-api/internal/models"
	"github.com/quickbite/quickbite-api/internal/repository"
)

// FoodService handles business logic for the menu catalog.
type FoodService struct {
	repo repository.FoodRepository
}

// NewFoodService creates a new food service.
func NewFoodService(repo repository.FoodRepository) *FoodService {
	return &FoodService{
		repo: repo,
	}
}

// ListFood returns the full catalog.
func (s *FoodService) ListFood(ctx context.Context) ([]models.FoodItem, error) {
	return s.repo.GetAll(ctx)
}

// GetFood returns a single item by ID.
func (s *FoodService) GetFood(ctx context.Context, id string) (*models.FoodItem, error) {
	return s.repo.GetByID(ctx, id)
}

// ListFoodByCategory returns items matching the category, case-insensitively.
func (s *FoodService) ListFoodByCategory(ctx context.Context, category string) ([]models.FoodItem, error) {
	return s.repo.GetByCategory(ctx, category)
}
