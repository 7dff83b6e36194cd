package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

type MySQLItemRepo struct{ db *sql.DB }

func NewMySQLItemRepo(db *sql.DB) *MySQLItemRepo { return &MySQLItemRepo{db: db} }

func (r *MySQLItemRepo) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, description, price
FROM items WHERE id = ?`, id)

	var it entity.Item
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *MySQLItemRepo) FindByName(ctx context.Context, name string) ([]entity.Item, error) {
	return r.queryItems(ctx, `
SELECT id, name, description, price
FROM items WHERE name = ? ORDER BY id`, name)
}

func (r *MySQLItemRepo) List(ctx context.Context) ([]entity.Item, error) {
	return r.queryItems(ctx, `
SELECT id, name, description, price
FROM items ORDER BY id`)
}

func (r *MySQLItemRepo) queryItems(ctx context.Context, query string, args ...any) ([]entity.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Item, 0)
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

var _ usecase.ItemRepo = (*MySQLItemRepo)(nil)
