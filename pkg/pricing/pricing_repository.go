package pricing

import (
	"context"

	"SaveNServe-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PricingRepository interface {
		GetDiscountableItems(ctx context.Context) ([]*entities.Item, error)
		UpdateDiscountPrice(ctx context.Context, itemID uuid.UUID, discountPrice float64) error
	}

	pricingRepository struct {
		db *gorm.DB
	}
)

func NewPricingRepository(db *gorm.DB) PricingRepository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) GetDiscountableItems(ctx context.Context) ([]*entities.Item, error) {
	var items []*entities.Item

	if err := r.db.WithContext(ctx).
		Where("best_before IS NOT NULL AND (auto_discount = ? OR custom_discounts IS NOT NULL)", true).
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *pricingRepository) UpdateDiscountPrice(ctx context.Context, itemID uuid.UUID, discountPrice float64) error {
	return r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("id = ?", itemID).
		UpdateColumn("discount_price", discountPrice).Error
}
