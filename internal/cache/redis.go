package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"SaveNServe-Backend/domain"

	"github.com/redis/go-redis/v9"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 10 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisCache) Get(ctx context.Context, userID string) (*domain.CartResponse, error) {
	key := cacheKey(userID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart domain.CartResponse
	if err2 := json.Unmarshal(data, &cart); err2 != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err2)
	}

	return &cart, nil
}

func (r *RedisCache) Set(ctx context.Context, userID string, cart *domain.CartResponse) error {
	key := cacheKey(userID)
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	// Jitter spreads expirations so a burst of carts cached together
	// does not expire together.
	ttl := r.baseTTL + time.Duration(rand.Intn(60))*time.Second
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func cacheKey(userID string) string {
	return "savenserve:cart:" + userID
}
