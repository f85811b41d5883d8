package checkout

import (
	"context"
	"errors"
	"time"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CheckoutRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrderByMidtransID(ctx context.Context, midtransOrderID string) (*entities.Order, error)
		GetUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Order, int64, error)
		UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string, paidAt *time.Time) error
		SaveSnapToken(ctx context.Context, orderID uuid.UUID, token string) error
	}

	checkoutRepository struct {
		db *gorm.DB
	}
)

func NewCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *checkoutRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *checkoutRepository) GetOrderByMidtransID(ctx context.Context, midtransOrderID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("midtrans_order_id = ?", midtransOrderID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *checkoutRepository) GetUserOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entities.Order, int64, error) {
	var orders []*entities.Order
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, count, nil
}

func (r *checkoutRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string, paidAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if paidAt != nil {
		updates["paid_at"] = paidAt
	}
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}

func (r *checkoutRepository) SaveSnapToken(ctx context.Context, orderID uuid.UUID, token string) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", orderID).
		UpdateColumn("snap_token", token).Error
}
