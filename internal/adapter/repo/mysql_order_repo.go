package repo

import (
	"context"
	"database/sql"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

// MySQLOrderRepo persists order snapshots. Entry rows copy the item's name,
// description and price at submission time, so later catalog changes cannot
// rewrite history.
type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

func (r *MySQLOrderRepo) Save(ctx context.Context, order *entity.Order) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO orders (id, user_id, total, created_at)
VALUES (?, ?, ?, ?)`, order.ID, order.UserID, order.Total, order.CreatedAt); err != nil {
			return err
		}

		for _, it := range order.Items {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO order_entries (order_id, item_id, name, description, price)
VALUES (?, ?, ?, ?, ?)`, order.ID, it.ID, it.Name, it.Description, it.Price); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MySQLOrderRepo) FindByUser(ctx context.Context, userID int64) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT o.id, o.user_id, o.total, o.created_at,
       e.item_id, e.name, e.description, e.price
FROM orders o
LEFT JOIN order_entries e ON e.order_id = o.id
WHERE o.user_id = ?
ORDER BY o.seq, e.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var (
			o     entity.Order
			id    sql.NullInt64
			name  sql.NullString
			desc  sql.NullString
			price sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt,
			&id, &name, &desc, &price); err != nil {
			return nil, err
		}

		if len(orders) == 0 || orders[len(orders)-1].ID != o.ID {
			o.Items = make([]entity.Item, 0)
			orders = append(orders, o)
		}

		if id.Valid {
			last := &orders[len(orders)-1]
			it := entity.Item{ID: id.Int64, Name: name.String, Description: desc.String}
			if err := it.Price.Scan(price.String); err != nil {
				return nil, err
			}
			last.Items = append(last.Items, it)
		}
	}
	return orders, rows.Err()
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
