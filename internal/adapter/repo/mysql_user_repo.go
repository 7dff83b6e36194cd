package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

type MySQLUserRepo struct{ db *sql.DB }

func NewMySQLUserRepo(db *sql.DB) *MySQLUserRepo { return &MySQLUserRepo{db: db} }

func (r *MySQLUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, password_hash
FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *MySQLUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, password_hash
FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// Create inserts the user and its empty cart in one transaction. A failure on
// either leaves no rows behind.
func (r *MySQLUserRepo) Create(ctx context.Context, user *entity.User) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO users (username, password_hash, created_at)
VALUES (?, ?, NOW())`, user.Username, user.PasswordHash)
		if err != nil {
			return err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		user.ID = id

		_, err = tx.ExecContext(ctx, `
INSERT INTO carts (user_id, total) VALUES (?, 0)`, id)
		return err
	})
}

func scanUser(row *sql.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

var _ usecase.UserRepo = (*MySQLUserRepo)(nil)
