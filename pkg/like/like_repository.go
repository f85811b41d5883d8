package like

import (
	"context"

	"SaveNServe-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LikeRepository interface {
		CreateLike(ctx context.Context, like *entities.LikedItem) error
		GetLike(ctx context.Context, userID, itemID uuid.UUID) (*entities.LikedItem, error)
		DeleteLike(ctx context.Context, userID, itemID uuid.UUID) (int64, error)
		GetLikedItems(ctx context.Context, userID uuid.UUID) ([]*entities.LikedItem, error)
	}

	likeRepository struct {
		db *gorm.DB
	}
)

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) CreateLike(ctx context.Context, like *entities.LikedItem) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) GetLike(ctx context.Context, userID, itemID uuid.UUID) (*entities.LikedItem, error) {
	var like entities.LikedItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) DeleteLike(ctx context.Context, userID, itemID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&entities.LikedItem{})
	return res.RowsAffected, res.Error
}

func (r *likeRepository) GetLikedItems(ctx context.Context, userID uuid.UUID) ([]*entities.LikedItem, error) {
	var likes []*entities.LikedItem
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
