package repo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
)

func TestOrderFindByUserKeepsSubmissionOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Two orders submitted within the same second. The ids are chosen so that
	// lexicographic uuid order is the reverse of submission order; only the
	// seq column keeps history straight.
	first := "ffffffff-0000-4000-8000-000000000001"
	second := "00000000-0000-4000-8000-000000000002"
	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "total", "created_at",
		"item_id", "name", "description", "price",
	}).
		AddRow(first, 1, "3999.98", at, 1, "MacBook", "A laptop", "1999.99").
		AddRow(first, 1, "3999.98", at, 1, "MacBook", "A laptop", "1999.99").
		AddRow(second, 1, "1999.99", at, 1, "MacBook", "A laptop", "1999.99")

	mock.ExpectQuery(`ORDER BY o\.seq, e\.id`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := NewMySQLOrderRepo(db).FindByUser(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, second, got[1].ID)
	assert.Len(t, got[0].Items, 2)
	assert.Len(t, got[1].Items, 1)
	assert.Equal(t, "3999.98", got[0].Total.StringFixed(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderFindByUserNoOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM orders o`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "total", "created_at",
			"item_id", "name", "description", "price",
		}))

	got, err := NewMySQLOrderRepo(db).FindByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderSaveWritesSnapshotInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	order := &entity.Order{
		ID:        "7b02e1e5-ef4c-4be8-9c42-6d0e4f8b9a11",
		UserID:    1,
		Items:     []entity.Item{{ID: 1, Name: "MacBook", Description: "A laptop"}},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO orders`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO order_entries`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, NewMySQLOrderRepo(db).Save(context.Background(), order))
	require.NoError(t, mock.ExpectationsWereMet())
}
