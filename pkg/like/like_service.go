package like

import (
	"context"
	"errors"
	"time"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"
	"SaveNServe-Backend/pkg/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LikeService interface {
		LikeItem(ctx context.Context, req domain.LikeItemRequest, userID string) error
		UnlikeItem(ctx context.Context, itemID string, userID string) error
		GetLikedItems(ctx context.Context, userID string) ([]domain.LikedItemResponse, error)
	}

	likeService struct {
		likeRepository LikeRepository
	}
)

func NewLikeService(likeRepository LikeRepository) LikeService {
	return &likeService{likeRepository: likeRepository}
}

func (s *likeService) LikeItem(ctx context.Context, req domain.LikeItemRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	itemUUID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return domain.ErrParseUUID
	}

	_, err = s.likeRepository.GetLike(ctx, userUUID, itemUUID)
	if err == nil {
		return domain.ErrAlreadyLiked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.likeRepository.CreateLike(ctx, &entities.LikedItem{
		ID:     uuid.New(),
		UserID: userUUID,
		ItemID: itemUUID,
	})
}

func (s *likeService) UnlikeItem(ctx context.Context, itemID string, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return domain.ErrParseUUID
	}

	deleted, err := s.likeRepository.DeleteLike(ctx, userUUID, itemUUID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}

func (s *likeService) GetLikedItems(ctx context.Context, userID string) ([]domain.LikedItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	likes, err := s.likeRepository.GetLikedItems(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var response []domain.LikedItemResponse
	for _, l := range likes {
		if l.Item == nil {
			continue
		}
		sale := pricing.SalePrice(now, l.Item.Price, l.Item.BestBefore, l.Item.AutoDiscount, l.Item.CustomDiscounts)
		response = append(response, domain.LikedItemResponse{
			ID: l.ID.String(),
			Item: domain.ItemResponse{
				ID:            l.Item.ID.String(),
				SubcategoryID: l.Item.SubcategoryID.String(),
				Name:          l.Item.Name,
				Price:         l.Item.Price,
				DiscountPrice: sale,
				BestBefore:    l.Item.BestBefore,
				Quantity:      l.Item.Quantity,
				Unit:          l.Item.Unit,
				AutoDiscount:  l.Item.AutoDiscount,
				ImageURL:      l.Item.ImageURL,
				CreatedAt:     l.Item.CreatedAt,
			},
		})
	}

	return response, nil
}
