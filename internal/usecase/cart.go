package usecase

import (
	"context"
	"fmt"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
)

// CartEngine applies cart mutations: resolve the user and the item, mutate the
// entry list in memory, recompute the total, persist the whole cart in one
// transaction. Lost-update protection across service instances is the
// persistence layer's job, not ours.
type CartEngine struct {
	users   UserRepo
	catalog *Catalog
	carts   CartRepo
}

func NewCartEngine(users UserRepo, catalog *Catalog, carts CartRepo) *CartEngine {
	return &CartEngine{users: users, catalog: catalog, carts: carts}
}

// AddToCart appends quantity entries of the item to the user's cart.
// Quantities below 1 are rejected up front.
func (e *CartEngine) AddToCart(ctx context.Context, username string, itemID int64, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, item, err := e.resolve(ctx, username, itemID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(*item, quantity)

	if err := e.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// RemoveFromCart removes up to quantity entries matching the item. Removal is
// best-effort: asking for more units than the cart holds is not an error.
func (e *CartEngine) RemoveFromCart(ctx context.Context, username string, itemID int64, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, item, err := e.resolve(ctx, username, itemID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(item.ID, quantity)

	if err := e.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (e *CartEngine) resolve(ctx context.Context, username string, itemID int64) (*entity.Cart, *entity.Item, error) {
	user, err := e.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	item, err := e.catalog.ItemByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}

	cart, err := e.carts.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load cart: %w", err)
	}
	return cart, item, nil
}
