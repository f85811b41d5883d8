package cache

import (
	"context"
	"encoding/json"
	"testing"

	"SaveNServe-Backend/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client), mr
}

func sampleCart(userID string) *domain.CartResponse {
	return &domain.CartResponse{
		ID: "cart-" + userID,
		Lines: []domain.CartLineResponse{
			{ID: "line-1", Name: "greek yogurt", Price: 3.50, SalePrice: 2.63, Quantity: 2, Subtotal: 5.26},
		},
		Total: 5.26,
	}
}

func TestGet_Hit(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()
	userID := "user-1"

	data, err := json.Marshal(sampleCart(userID))
	require.NoError(t, err)
	require.NoError(t, mr.Set(cacheKey(userID), string(data)))

	got, err := cache.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "cart-"+userID, got.ID)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 2, got.Lines[0].Quantity)
	assert.InDelta(t, 5.26, got.Total, 0.001)
}

func TestGet_Miss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	_, err := cache.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestGet_CorruptPayload(t *testing.T) {
	cache, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(cacheKey("user-1"), "{not json"))

	_, err := cache.Get(context.Background(), "user-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestSet_RoundTripAndTTL(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()
	userID := "user-2"

	require.NoError(t, cache.Set(ctx, userID, sampleCart(userID)))

	got, err := cache.Get(ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, 5.26, got.Total, 0.001)

	// Entries carry a TTL so an unused cart eventually falls out.
	ttl := mr.TTL(cacheKey(userID))
	assert.Greater(t, ttl.Seconds(), 0.0)
}

func TestDelete(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()
	userID := "user-3"

	require.NoError(t, cache.Set(ctx, userID, sampleCart(userID)))
	require.NoError(t, cache.Delete(ctx, userID))

	_, err := cache.Get(ctx, userID)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestDelete_MissingKeyIsNoError(t *testing.T) {
	cache, _ := setupTestRedis(t)
	assert.NoError(t, cache.Delete(context.Background(), "never-cached"))
}

func TestKeysAreScopedPerUser(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "alice", sampleCart("alice")))
	require.NoError(t, cache.Set(ctx, "bob", sampleCart("bob")))
	require.NoError(t, cache.Delete(ctx, "alice"))

	_, err := cache.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrCacheMiss)

	got, err := cache.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "cart-bob", got.ID)
}
