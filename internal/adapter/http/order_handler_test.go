package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

type orderServiceMock struct {
	order  *entity.Order
	orders []entity.Order
	err    error
}

func (m orderServiceMock) Submit(context.Context, string) (*entity.Order, error) {
	return m.order, m.err
}

func (m orderServiceMock) History(context.Context, string) ([]entity.Order, error) {
	return m.orders, m.err
}

func newOrderRouter(svc orderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(svc)
	r := gin.New()
	r.POST("/api/order/submit/:username", h.Submit)
	r.GET("/api/order/history/:username", h.History)
	return r
}

func TestSubmitOK(t *testing.T) {
	order := &entity.Order{
		ID:     "7b02e1e5-ef4c-4be8-9c42-6d0e4f8b9a11",
		UserID: 1,
		Items: []entity.Item{
			{ID: 1, Name: "MacBook", Price: decimal.RequireFromString("1999.99")},
		},
		Total:     decimal.RequireFromString("1999.99"),
		CreatedAt: time.Now().UTC(),
	}
	r := newOrderRouter(orderServiceMock{order: order})

	req := httptest.NewRequest(http.MethodPost, "/api/order/submit/alice", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got entity.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, order.ID, got.ID)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Total.Equal(order.Total))
}

func TestSubmitUserNotFound(t *testing.T) {
	r := newOrderRouter(orderServiceMock{err: usecase.ErrUserNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/order/submit/ghost", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHistoryOK(t *testing.T) {
	orders := []entity.Order{
		{ID: "a", UserID: 1, Total: decimal.Zero},
		{ID: "b", UserID: 1, Total: decimal.Zero},
	}
	r := newOrderRouter(orderServiceMock{orders: orders})

	req := httptest.NewRequest(http.MethodGet, "/api/order/history/alice", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []entity.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestHistoryUserNotFound(t *testing.T) {
	r := newOrderRouter(orderServiceMock{err: usecase.ErrUserNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/order/history/ghost", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
