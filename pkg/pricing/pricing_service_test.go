package pricing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"SaveNServe-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPricingRepository struct {
	m       sync.Mutex
	items   []*entities.Item
	listErr error
	updates map[uuid.UUID]float64
}

func (m *mockPricingRepository) GetDiscountableItems(context.Context) ([]*entities.Item, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockPricingRepository) UpdateDiscountPrice(_ context.Context, itemID uuid.UUID, discountPrice float64) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.updates == nil {
		m.updates = make(map[uuid.UUID]float64)
	}
	m.updates[itemID] = discountPrice
	return nil
}

func TestRepriceAll(t *testing.T) {
	now := time.Now()
	soon := now.AddDate(0, 0, 1)
	far := now.AddDate(0, 0, 30)

	stale := &entities.Item{
		ID:            uuid.New(),
		Price:         40,
		DiscountPrice: 36, // priced at creation, now on its last day
		BestBefore:    &soon,
		AutoDiscount:  true,
	}
	current := &entities.Item{
		ID:            uuid.New(),
		Price:         40,
		DiscountPrice: 40,
		BestBefore:    &far,
		AutoDiscount:  true,
	}

	repo := &mockPricingRepository{items: []*entities.Item{stale, current}}
	svc := NewPricingService(repo)

	updated, err := svc.RepriceAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.InDelta(t, 20.0, repo.updates[stale.ID], 0.001)
	_, touched := repo.updates[current.ID]
	assert.False(t, touched, "unchanged prices should not be rewritten")
}

func TestRepriceAll_ListError(t *testing.T) {
	repo := &mockPricingRepository{listErr: errors.New("db down")}
	svc := NewPricingService(repo)

	_, err := svc.RepriceAll(context.Background())
	assert.Error(t, err)
}

func TestStartRepriceLoop_StopsOnCancel(t *testing.T) {
	soon := time.Now().AddDate(0, 0, 1)
	repo := &mockPricingRepository{items: []*entities.Item{{
		ID:           uuid.New(),
		Price:        10,
		BestBefore:   &soon,
		AutoDiscount: true,
	}}}
	svc := NewPricingService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	svc.StartRepriceLoop(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		repo.m.Lock()
		defer repo.m.Unlock()
		return len(repo.updates) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
}
