package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/logging"
)

// OrderEngine turns carts into orders. Submission snapshots the cart and does
// not clear it: submitting an unchanged cart again yields another order with
// the same contents and a new ID.
type OrderEngine struct {
	users  UserRepo
	carts  CartRepo
	orders OrderRepo
	events OrderEvents
}

func NewOrderEngine(users UserRepo, carts CartRepo, orders OrderRepo, events OrderEvents) *OrderEngine {
	return &OrderEngine{users: users, carts: carts, orders: orders, events: events}
}

func (e *OrderEngine) Submit(ctx context.Context, username string) (*entity.Order, error) {
	user, err := e.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	cart, err := e.carts.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	order := &entity.Order{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Items:     append([]entity.Item(nil), cart.Items...),
		Total:     cart.Total,
		CreatedAt: time.Now().UTC(),
	}

	if err := e.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	// Best-effort notification; the order is already durable.
	if e.events != nil {
		msg := OrderSubmittedMsg{
			OrderID: order.ID,
			UserID:  order.UserID,
			Total:   order.Total.String(),
			Units:   len(order.Items),
		}
		if err := e.events.PublishSubmitted(ctx, msg); err != nil {
			logging.FromCtx(ctx).Warn("publish order.submitted", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

func (e *OrderEngine) History(ctx context.Context, username string) ([]entity.Order, error) {
	user, err := e.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	orders, err := e.orders.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}
