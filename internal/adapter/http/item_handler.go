package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
)

type catalogService interface {
	ItemByID(ctx context.Context, id int64) (*entity.Item, error)
	ItemsByName(ctx context.Context, name string) ([]entity.Item, error)
	List(ctx context.Context) ([]entity.Item, error)
}

type ItemHandler struct {
	catalog catalogService
}

func NewItemHandler(catalog catalogService) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

func (h *ItemHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	items, err := h.catalog.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) FindByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	item, err := h.catalog.ItemByID(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) FindByName(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	items, err := h.catalog.ItemsByName(ctx, c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, items)
}
