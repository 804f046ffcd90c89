package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fooddelivery/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderService struct {
	repo OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// Place stores a new order owned by the caller's session user.
func (s *OrderService) Place(ctx context.Context, p models.Principal, in models.PlaceOrder) (*models.Order, error) {
	if p.UserID == "" {
		return nil, models.ErrUnauthenticated
	}
	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		return nil, fmt.Errorf("%w: orderId is required", models.ErrValidation)
	}
	if in.OrderAmount <= 0 {
		return nil, fmt.Errorf("%w: orderAmount must be positive", models.ErrValidation)
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:          primitive.NewObjectID(),
		OrderID:     orderID,
		OrderAmount: in.OrderAmount,
		UserName:    in.UserName,
		OrderedBy:   p.UserID,
		OrderStatus: models.StatusPlaced,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info().Str("orderId", orderID).Str("orderedBy", p.UserID).Float64("amount", in.OrderAmount).Msg("order placed")
	return order, nil
}

// UpdateStatus moves an order along the status graph. The write is conditional
// on the status read here, so a concurrent change surfaces as ErrInvalidTransition.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, next models.OrderStatus) (*models.Order, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown order status %q", models.ErrValidation, next)
	}

	order, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	current := order.Status()
	if !current.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, current, next)
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, current, next)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("orderId", orderID).Str("from", string(current)).Str("to", string(next)).Msg("order status changed")
	return updated, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.repo.ListAll(ctx)
}

// Cancel deletes the order. Customers can only cancel their own orders; admins
// can cancel any. Cancelling an absent order is not an error.
func (s *OrderService) Cancel(ctx context.Context, p models.Principal, orderID string) error {
	owner := p.UserID
	if p.IsAdmin() {
		owner = ""
	}

	n, err := s.repo.Delete(ctx, orderID, owner)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Info().Str("orderId", orderID).Str("by", p.UserID).Msg("order cancelled")
	}
	return nil
}

func (s *OrderService) ShippedSummary(ctx context.Context) (models.ShippedSummary, error) {
	return s.repo.ShippedSummary(ctx)
}
