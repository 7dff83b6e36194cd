package kafka

import (
	"context"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

// ItemPriceChangedHandler reacts to catalog price changes by evicting the
// cached copy of the item. The catalog service owns the items table; our only
// stale state is the cache.
type ItemPriceChangedHandler struct {
	Cache usecase.ItemCache
}

func NewItemPriceChangedHandler(cache usecase.ItemCache) *ItemPriceChangedHandler {
	return &ItemPriceChangedHandler{Cache: cache}
}

func (h *ItemPriceChangedHandler) Handle(ctx context.Context, ev usecase.ItemPriceChangedMsg) error {
	return h.Cache.Delete(ctx, ev.ItemID)
}
