package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

// MySQLCartRepo stores carts as one row per unit in cart_entries, matching the
// cart's in-memory shape. Save rewrites entries and total in one transaction
// so the persisted total can never drift from the entries.
type MySQLCartRepo struct{ db *sql.DB }

func NewMySQLCartRepo(db *sql.DB) *MySQLCartRepo { return &MySQLCartRepo{db: db} }

func (r *MySQLCartRepo) FindByUser(ctx context.Context, userID int64) (*entity.Cart, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, total FROM carts WHERE user_id = ?`, userID)

	cart := entity.Cart{UserID: userID}
	if err := row.Scan(&cart.ID, &cart.Total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// every account gets a cart at creation; no cart means no account
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT i.id, i.name, i.description, i.price
FROM cart_entries ce
JOIN items i ON i.id = ce.item_id
WHERE ce.cart_id = ?
ORDER BY ce.id`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Items = make([]entity.Item, 0)
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, it)
	}
	return &cart, rows.Err()
}

func (r *MySQLCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
DELETE FROM cart_entries WHERE cart_id = ?`, cart.ID); err != nil {
			return err
		}

		for _, it := range cart.Items {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO cart_entries (cart_id, item_id, created_at)
VALUES (?, ?, NOW())`, cart.ID, it.ID); err != nil {
				return err
			}
		}

		_, err := tx.ExecContext(ctx, `
UPDATE carts SET total = ? WHERE id = ?`, cart.Total, cart.ID)
		return err
	})
}

var _ usecase.CartRepo = (*MySQLCartRepo)(nil)
