package cache

import (
	"context"
	"errors"

	"SaveNServe-Backend/domain"
)

// CartCache holds the last-assembled cart view per user so reads do not
// hit the database on every interaction. Mutations must Delete the key.
type CartCache interface {
	Get(ctx context.Context, userID string) (*domain.CartResponse, error)
	Set(ctx context.Context, userID string, cart *domain.CartResponse) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")
