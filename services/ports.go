package services

import (
	"context"

	"fooddelivery/models"
)

// The repositories package satisfies these with MongoDB; tests use fakes.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

type CartRepository interface {
	Insert(ctx context.Context, item *models.CartItem) error
	DeleteOwned(ctx context.Context, owner, itemID string) error
	ListByOwner(ctx context.Context, owner string) ([]models.CartItem, error)
	DeleteAllByOwner(ctx context.Context, owner string) (int64, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus) (*models.Order, error)
	ListByOwner(ctx context.Context, owner string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, orderID, owner string) (int64, error)
	ShippedSummary(ctx context.Context) (models.ShippedSummary, error)
}

type FeedbackRepository interface {
	Insert(ctx context.Context, fb *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
	Delete(ctx context.Context, id string) error
}

type MenuRepository interface {
	Insert(ctx context.Context, item *models.MenuItem) error
	List(ctx context.Context, onlyAvailable bool) ([]models.MenuItem, error)
	Update(ctx context.Context, id string, patch models.MenuItemPatch) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
