package notify

import (
	"context"
	"time"

	"SaveNServe-Backend/entities"

	"gorm.io/gorm"
)

type (
	NotifyRepository interface {
		GetExpiringItems(ctx context.Context, startDate, endDate time.Time) ([]*entities.Item, error)
		GetSubscribedUsers(ctx context.Context) ([]*entities.User, error)
	}

	notifyRepository struct {
		db *gorm.DB
	}
)

func NewNotifyRepository(db *gorm.DB) NotifyRepository {
	return &notifyRepository{db: db}
}

func (r *notifyRepository) GetExpiringItems(ctx context.Context, startDate, endDate time.Time) ([]*entities.Item, error) {
	var items []*entities.Item

	if err := r.db.WithContext(ctx).
		Where("best_before BETWEEN ? AND ? AND quantity > 0", startDate, endDate).
		Order("best_before asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *notifyRepository) GetSubscribedUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User

	if err := r.db.WithContext(ctx).
		Where("is_subscribed = ? AND is_verified = ?", true, true).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
