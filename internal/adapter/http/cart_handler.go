package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

type cartService interface {
	AddToCart(ctx context.Context, username string, itemID int64, quantity int) (*entity.Cart, error)
	RemoveFromCart(ctx context.Context, username string, itemID int64, quantity int) (*entity.Cart, error)
}

type CartHandler struct {
	carts cartService
}

func NewCartHandler(carts cartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type modifyCartReq struct {
	Username string `json:"username" binding:"required"`
	ItemID   int64  `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity"`
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	h.modify(c, h.carts.AddToCart)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	h.modify(c, h.carts.RemoveFromCart)
}

func (h *CartHandler) modify(c *gin.Context, op func(context.Context, string, int64, int) (*entity.Cart, error)) {
	var req modifyCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	cart, err := op(ctx, req.Username, req.ItemID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// writeError maps usecase errors onto status codes for all handlers.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case usecase.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
	}
}
