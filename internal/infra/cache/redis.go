package cache

import (
	"context"
	"encoding/json"

	"pickup-options-service/internal/infra"
	"pickup-options-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pickup_order:"

// RedisAvailabilityCache stores per-order resolution snapshots as one JSON
// blob per order, keyed by order id. Concurrent writers for the same order
// are last-writer-wins, matching the resolution layer's contract.
type RedisAvailabilityCache struct {
	client *redis.Client
}

func NewRedisAvailabilityCache(client *redis.Client) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client}
}

func key(orderID uuid.UUID) string {
	return keyPrefix + orderID.String()
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, orderID uuid.UUID) (usecase.CacheEntry, error) {
	payload, err := c.client.Get(ctx, key(orderID)).Bytes()
	if err == redis.Nil {
		return usecase.CacheEntry{}, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindCacheFailure, "reading availability entry", err)
	}

	var entry usecase.CacheEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, infra.WrapRepoErr(infra.KindCacheFailure, "decoding availability entry", err)
	}
	return entry, nil
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, orderID uuid.UUID, entry usecase.CacheEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return infra.WrapRepoErr(infra.KindCacheFailure, "encoding availability entry", err)
	}
	// No TTL: entries live until the order is placed, deleted or swept.
	if err := c.client.Set(ctx, key(orderID), payload, 0).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindCacheFailure, "writing availability entry", err)
	}
	return nil
}

func (c *RedisAvailabilityCache) Delete(ctx context.Context, orderID uuid.UUID) error {
	if err := c.client.Del(ctx, key(orderID)).Err(); err != nil {
		return infra.WrapRepoErr(infra.KindCacheFailure, "deleting availability entry", err)
	}
	return nil
}
