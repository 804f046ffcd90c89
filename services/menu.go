package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fooddelivery/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if item.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", models.ErrValidation)
	}

	now := time.Now().UTC()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.repo.Insert(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Update(ctx context.Context, id string, patch models.MenuItemPatch) (*models.MenuItem, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", models.ErrValidation)
	}
	if patch.Price != nil && *patch.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", models.ErrValidation)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// List returns the whole menu, or only what can currently be ordered.
func (s *MenuService) List(ctx context.Context, onlyAvailable bool) ([]models.MenuItem, error) {
	return s.repo.List(ctx, onlyAvailable)
}
