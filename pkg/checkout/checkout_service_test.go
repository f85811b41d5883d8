package checkout

import (
	"context"
	"testing"
	"time"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"
	"SaveNServe-Backend/internal/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCheckoutRepository struct {
	orders map[string]*entities.Order // by midtrans order id
}

func newMockCheckoutRepository() *mockCheckoutRepository {
	return &mockCheckoutRepository{orders: make(map[string]*entities.Order)}
}

func (m *mockCheckoutRepository) CreateOrder(_ context.Context, order *entities.Order) error {
	m.orders[order.MidtransOrderID] = order
	return nil
}

func (m *mockCheckoutRepository) GetOrderByID(_ context.Context, id string) (*entities.Order, error) {
	for _, order := range m.orders {
		if order.ID.String() == id {
			return order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockCheckoutRepository) GetOrderByMidtransID(_ context.Context, midtransOrderID string) (*entities.Order, error) {
	order, ok := m.orders[midtransOrderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (m *mockCheckoutRepository) GetUserOrders(_ context.Context, userID uuid.UUID, _, _ int) ([]*entities.Order, int64, error) {
	var out []*entities.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockCheckoutRepository) UpdateOrderStatus(_ context.Context, orderID uuid.UUID, status string, paidAt *time.Time) error {
	for _, order := range m.orders {
		if order.ID == orderID {
			order.Status = status
			order.PaidAt = paidAt
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

func (m *mockCheckoutRepository) SaveSnapToken(_ context.Context, orderID uuid.UUID, token string) error {
	for _, order := range m.orders {
		if order.ID == orderID {
			order.SnapToken = token
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

// mockSettleCartRepository implements just enough of the cart repository
// for settlement: one cart, its lines, and item stock.
type mockSettleCartRepository struct {
	cart  *entities.Cart
	lines map[uuid.UUID]*entities.CartItem // by line ID
	stock map[uuid.UUID]int                // by item ID
}

func newMockSettleCartRepository(userID uuid.UUID) *mockSettleCartRepository {
	return &mockSettleCartRepository{
		cart:  &entities.Cart{ID: uuid.New(), UserID: userID},
		lines: make(map[uuid.UUID]*entities.CartItem),
		stock: make(map[uuid.UUID]int),
	}
}

func (m *mockSettleCartRepository) addLine(itemID uuid.UUID, quantity, remainingStock int) *entities.CartItem {
	line := &entities.CartItem{ID: uuid.New(), CartID: m.cart.ID, ItemID: itemID, Quantity: quantity}
	m.lines[line.ID] = line
	m.stock[itemID] = remainingStock
	return line
}

func (m *mockSettleCartRepository) GetOrCreateCart(context.Context, uuid.UUID) (*entities.Cart, error) {
	return m.cart, nil
}

func (m *mockSettleCartRepository) GetLines(_ context.Context, _ uuid.UUID) ([]*entities.CartItem, error) {
	var out []*entities.CartItem
	for _, line := range m.lines {
		out = append(out, line)
	}
	return out, nil
}

func (m *mockSettleCartRepository) GetLineByID(_ context.Context, lineID uuid.UUID) (*entities.CartItem, error) {
	line, ok := m.lines[lineID]
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	return line, nil
}

func (m *mockSettleCartRepository) GetLineByItem(_ context.Context, cartID, itemID uuid.UUID) (*entities.CartItem, error) {
	for _, line := range m.lines {
		if line.CartID == cartID && line.ItemID == itemID {
			return line, nil
		}
	}
	return nil, domain.ErrCartItemNotFound
}

func (m *mockSettleCartRepository) AddLine(context.Context, uuid.UUID, uuid.UUID, int) error {
	return nil
}

func (m *mockSettleCartRepository) SetLineQuantity(context.Context, uuid.UUID, int) error {
	return nil
}

func (m *mockSettleCartRepository) DeleteLineRestock(_ context.Context, lineID uuid.UUID) error {
	line, ok := m.lines[lineID]
	if !ok {
		return domain.ErrCartItemNotFound
	}
	m.stock[line.ItemID] += line.Quantity
	delete(m.lines, lineID)
	return nil
}

func (m *mockSettleCartRepository) DeleteLine(_ context.Context, lineID uuid.UUID) error {
	if _, ok := m.lines[lineID]; !ok {
		return domain.ErrCartItemNotFound
	}
	delete(m.lines, lineID)
	return nil
}

// memCartCache is an in-memory stand-in for the redis cart cache.
type memCartCache struct {
	entries map[string]*domain.CartResponse
}

func newMemCartCache() *memCartCache {
	return &memCartCache{entries: make(map[string]*domain.CartResponse)}
}

func (m *memCartCache) Get(_ context.Context, userID string) (*domain.CartResponse, error) {
	view, ok := m.entries[userID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return view, nil
}

func (m *memCartCache) Set(_ context.Context, userID string, view *domain.CartResponse) error {
	m.entries[userID] = view
	return nil
}

func (m *memCartCache) Delete(_ context.Context, userID string) error {
	delete(m.entries, userID)
	return nil
}

func newPendingOrder(t *testing.T, repo *mockCheckoutRepository, userID, itemID uuid.UUID, quantity int) *entities.Order {
	t.Helper()
	orderID := uuid.New()
	order := &entities.Order{
		ID:              orderID,
		UserID:          userID,
		Status:          domain.OrderStatusPending,
		MidtransOrderID: "SNS-test-" + orderID.String()[:8],
		OrderItems: []*entities.OrderItem{
			{ID: uuid.New(), OrderID: orderID, ItemID: itemID, Name: "sourdough", UnitPrice: 2.5, Quantity: quantity},
		},
	}
	require.NoError(t, repo.CreateOrder(context.Background(), order))
	return order
}

func TestHandleNotification_Settlement(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	checkoutRepo := newMockCheckoutRepository()
	cartRepo := newMockSettleCartRepository(userID)
	cartRepo.addLine(itemID, 2, 3)
	order := newPendingOrder(t, checkoutRepo, userID, itemID, 2)

	svc := &checkoutService{checkoutRepository: checkoutRepo, cartRepository: cartRepo, cartCache: newMemCartCache()}

	err := svc.HandleNotification(context.Background(), domain.MidtransNotification{
		OrderID:           order.MidtransOrderID,
		TransactionStatus: "settlement",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.NotNil(t, order.PaidAt)
	assert.Empty(t, cartRepo.lines)
	// Sold units stay out of stock.
	assert.Equal(t, 3, cartRepo.stock[itemID])
}

func TestHandleNotification_Expire(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	checkoutRepo := newMockCheckoutRepository()
	cartRepo := newMockSettleCartRepository(userID)
	cartRepo.addLine(itemID, 2, 3)
	order := newPendingOrder(t, checkoutRepo, userID, itemID, 2)

	svc := &checkoutService{checkoutRepository: checkoutRepo, cartRepository: cartRepo, cartCache: newMemCartCache()}

	err := svc.HandleNotification(context.Background(), domain.MidtransNotification{
		OrderID:           order.MidtransOrderID,
		TransactionStatus: "expire",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusCancelled, order.Status)
	assert.Nil(t, order.PaidAt)
	assert.Empty(t, cartRepo.lines)
	assert.Equal(t, 5, cartRepo.stock[itemID], "released reservation goes back on the shelf")
}

func TestHandleNotification_ReplayIsIdempotent(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	checkoutRepo := newMockCheckoutRepository()
	cartRepo := newMockSettleCartRepository(userID)
	cartRepo.addLine(itemID, 1, 0)
	order := newPendingOrder(t, checkoutRepo, userID, itemID, 1)

	svc := &checkoutService{checkoutRepository: checkoutRepo, cartRepository: cartRepo, cartCache: newMemCartCache()}
	ctx := context.Background()
	notif := domain.MidtransNotification{
		OrderID:           order.MidtransOrderID,
		TransactionStatus: "settlement",
	}

	require.NoError(t, svc.HandleNotification(ctx, notif))
	paidAt := order.PaidAt

	// A replayed expire must not cancel an already-paid order.
	require.NoError(t, svc.HandleNotification(ctx, domain.MidtransNotification{
		OrderID:           order.MidtransOrderID,
		TransactionStatus: "expire",
	}))
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.Equal(t, paidAt, order.PaidAt)
	assert.Equal(t, 0, cartRepo.stock[itemID])
}

func TestHandleNotification_ChallengedCaptureIsHeld(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	checkoutRepo := newMockCheckoutRepository()
	cartRepo := newMockSettleCartRepository(userID)
	cartRepo.addLine(itemID, 1, 0)
	order := newPendingOrder(t, checkoutRepo, userID, itemID, 1)

	svc := &checkoutService{checkoutRepository: checkoutRepo, cartRepository: cartRepo, cartCache: newMemCartCache()}

	err := svc.HandleNotification(context.Background(), domain.MidtransNotification{
		OrderID:           order.MidtransOrderID,
		TransactionStatus: "capture",
		FraudStatus:       "challenge",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Len(t, cartRepo.lines, 1)
}

func TestHandleNotification_UnknownOrder(t *testing.T) {
	svc := &checkoutService{checkoutRepository: newMockCheckoutRepository()}

	err := svc.HandleNotification(context.Background(), domain.MidtransNotification{
		OrderID:           "SNS-missing",
		TransactionStatus: "settlement",
	})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestHandleNotification_InvalidatesCachedCartView(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	checkoutRepo := newMockCheckoutRepository()
	cartRepo := newMockSettleCartRepository(userID)
	cartRepo.addLine(itemID, 2, 3)
	order := newPendingOrder(t, checkoutRepo, userID, itemID, 2)

	cartCache := newMemCartCache()
	require.NoError(t, cartCache.Set(context.Background(), userID.String(), &domain.CartResponse{
		ID: cartRepo.cart.ID.String(),
		Lines: []domain.CartLineResponse{
			{ItemID: itemID.String(), Name: "sourdough", Quantity: 2, Subtotal: 5},
		},
		Total: 5,
	}))

	svc := &checkoutService{checkoutRepository: checkoutRepo, cartRepository: cartRepo, cartCache: cartCache}

	err := svc.HandleNotification(context.Background(), domain.MidtransNotification{
		OrderID:           order.MidtransOrderID,
		TransactionStatus: "settlement",
	})
	require.NoError(t, err)

	// The pre-payment view must not outlive the payment.
	_, err = cartCache.Get(context.Background(), userID.String())
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestHandleNotification_ExpireInvalidatesCachedCartView(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()
	checkoutRepo := newMockCheckoutRepository()
	cartRepo := newMockSettleCartRepository(userID)
	cartRepo.addLine(itemID, 1, 0)
	order := newPendingOrder(t, checkoutRepo, userID, itemID, 1)

	cartCache := newMemCartCache()
	require.NoError(t, cartCache.Set(context.Background(), userID.String(), &domain.CartResponse{Total: 2.5}))

	svc := &checkoutService{checkoutRepository: checkoutRepo, cartRepository: cartRepo, cartCache: cartCache}

	err := svc.HandleNotification(context.Background(), domain.MidtransNotification{
		OrderID:           order.MidtransOrderID,
		TransactionStatus: "expire",
	})
	require.NoError(t, err)

	_, err = cartCache.Get(context.Background(), userID.String())
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
