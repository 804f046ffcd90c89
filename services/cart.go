package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fooddelivery/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartService keeps one cart per user. Lines are never merged: adding the
// same product twice yields two lines.
type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) AddItem(ctx context.Context, owner string, in models.NewCartItem) (*models.CartItem, error) {
	if strings.TrimSpace(in.ProductID) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: id and name are required", models.ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}

	item := &models.CartItem{
		ID:        primitive.NewObjectID(),
		ProductID: in.ProductID,
		UserID:    owner,
		Name:      in.Name,
		Price:     in.Price,
		Image:     in.Image,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, owner, itemID string) error {
	return s.repo.DeleteOwned(ctx, owner, itemID)
}

func (s *CartService) ListItems(ctx context.Context, owner string) ([]models.CartItem, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *CartService) Clear(ctx context.Context, owner string) (int64, error) {
	return s.repo.DeleteAllByOwner(ctx, owner)
}
