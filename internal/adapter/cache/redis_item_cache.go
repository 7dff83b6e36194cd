package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

// RedisItemCache keeps catalog items as JSON under "item:<id>".
type RedisItemCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisItemCache(rdb *redis.Client, ttl time.Duration) *RedisItemCache {
	return &RedisItemCache{rdb: rdb, ttl: ttl}
}

func (c *RedisItemCache) Get(ctx context.Context, id int64) (*entity.Item, error) {
	raw, err := c.rdb.Get(ctx, itemKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, usecase.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var item entity.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *RedisItemCache) Set(ctx context.Context, item *entity.Item) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, itemKey(item.ID), raw, c.ttl).Err()
}

func (c *RedisItemCache) Delete(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, itemKey(id)).Err()
}

func itemKey(id int64) string {
	return "item:" + strconv.FormatInt(id, 10)
}

var _ usecase.ItemCache = (*RedisItemCache)(nil)
