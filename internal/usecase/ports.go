package usecase

import (
	"context"
	"errors"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrCacheMiss is returned by ItemCache when the item is not cached.
	ErrCacheMiss = errors.New("item not in cache")
)

type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	// Create stores the user and its empty cart in one transaction.
	Create(ctx context.Context, user *entity.User) error
}

type ItemRepo interface {
	FindByID(ctx context.Context, id int64) (*entity.Item, error)
	FindByName(ctx context.Context, name string) ([]entity.Item, error)
	List(ctx context.Context) ([]entity.Item, error)
}

type CartRepo interface {
	FindByUser(ctx context.Context, userID int64) (*entity.Cart, error)
	// Save replaces the cart's entries and total atomically.
	Save(ctx context.Context, cart *entity.Cart) error
}

type OrderRepo interface {
	Save(ctx context.Context, order *entity.Order) error
	// FindByUser returns the user's orders in creation order.
	FindByUser(ctx context.Context, userID int64) ([]entity.Order, error)
}

type ItemCache interface {
	Get(ctx context.Context, id int64) (*entity.Item, error)
	Set(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type OrderEvents interface {
	PublishSubmitted(ctx context.Context, msg OrderSubmittedMsg) error
}
