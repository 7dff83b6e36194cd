package usecase

import (
	"context"
	"errors"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/logging"
)

// Catalog fronts the item store with a cache. Lookups by ID go through
// singleflight so a burst of misses for the same item hits the store once.
type Catalog struct {
	repo  ItemRepo
	cache ItemCache
	sfg   singleflight.Group
}

func NewCatalog(repo ItemRepo, cache ItemCache) *Catalog {
	return &Catalog{repo: repo, cache: cache}
}

func (c *Catalog) ItemByID(ctx context.Context, id int64) (*entity.Item, error) {
	if c.cache != nil {
		item, err := c.cache.Get(ctx, id)
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			logging.FromCtx(ctx).Warn("item cache get", "item_id", id, "error", err)
		}
	}

	v, err, _ := c.sfg.Do(strconv.FormatInt(id, 10), func() (any, error) {
		item, err := c.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			if err := c.cache.Set(ctx, item); err != nil {
				logging.FromCtx(ctx).Warn("item cache set", "item_id", id, "error", err)
			}
		}
		return item, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entity.Item), nil
}

func (c *Catalog) ItemsByName(ctx context.Context, name string) ([]entity.Item, error) {
	return c.repo.FindByName(ctx, name)
}

func (c *Catalog) List(ctx context.Context) ([]entity.Item, error) {
	return c.repo.List(ctx)
}
