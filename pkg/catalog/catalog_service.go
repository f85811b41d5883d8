package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"
	"SaveNServe-Backend/internal/utils/storage"
	"SaveNServe-Backend/pkg/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		AddCategory(ctx context.Context, req domain.AddCategoryRequest) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error
		DeleteCategory(ctx context.Context, id string) error
		AddSubcategory(ctx context.Context, req domain.AddSubcategoryRequest) (domain.SubcategoryResponse, error)

		AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, subcategoryID string, page, limit int) ([]domain.ItemResponse, int64, error)
		GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error)
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest) error
	}

	catalogService struct {
		catalogRepository CatalogRepository
		s3                storage.AwsS3
	}
)

func NewCatalogService(catalogRepository CatalogRepository, s3 storage.AwsS3) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		s3:                s3,
	}
}

func (s *catalogService) AddCategory(ctx context.Context, req domain.AddCategoryRequest) (domain.CategoryResponse, error) {
	if _, err := s.catalogRepository.GetCategoryByName(ctx, req.Name); err == nil {
		return domain.CategoryResponse{}, domain.ErrCategoryAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CategoryResponse{}, err
	}

	category := &entities.Category{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.catalogRepository.AddCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
	}, nil
}

func (s *catalogService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.catalogRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.CategoryResponse
	for _, category := range categories {
		res := domain.CategoryResponse{
			ID:       category.ID.String(),
			Name:     category.Name,
			ImageURL: category.ImageURL,
		}
		for _, sub := range category.Subcategories {
			res.Subcategories = append(res.Subcategories, domain.SubcategoryResponse{
				ID:         sub.ID.String(),
				CategoryID: sub.CategoryID.String(),
				Name:       sub.Name,
			})
		}
		response = append(response, res)
	}

	return response, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) error {
	category, err := s.catalogRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	category.Name = req.Name
	return s.catalogRepository.UpdateCategory(ctx, category)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.catalogRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return s.catalogRepository.DeleteCategory(ctx, id)
}

func (s *catalogService) AddSubcategory(ctx context.Context, req domain.AddSubcategoryRequest) (domain.SubcategoryResponse, error) {
	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.SubcategoryResponse{}, domain.ErrParseUUID
	}

	if _, err := s.catalogRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubcategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.SubcategoryResponse{}, err
	}

	subcategory := &entities.Subcategory{
		ID:         uuid.New(),
		CategoryID: categoryUUID,
		Name:       req.Name,
	}

	if err := s.catalogRepository.AddSubcategory(ctx, subcategory); err != nil {
		return domain.SubcategoryResponse{}, err
	}

	return domain.SubcategoryResponse{
		ID:         subcategory.ID.String(),
		CategoryID: subcategory.CategoryID.String(),
		Name:       subcategory.Name,
	}, nil
}

// validateSchedule rejects custom discount maps with non-numeric day
// buckets or percentages outside [0, 100].
func validateSchedule(custom map[string]float64) error {
	for key, pct := range custom {
		days, err := strconv.Atoi(key)
		if err != nil || days <= 0 {
			return domain.ErrInvalidDiscountBucket
		}
		if pct < 0 || pct > 100 {
			return domain.ErrInvalidDiscountPercent
		}
	}
	return nil
}

func (s *catalogService) AddItem(ctx context.Context, req domain.AddItemRequest) (domain.ItemResponse, error) {
	subcategoryUUID, err := uuid.Parse(req.SubcategoryID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	if _, err := s.catalogRepository.GetSubcategoryByID(ctx, req.SubcategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrSubcategoryNotFound
		}
		return domain.ItemResponse{}, err
	}

	if req.Price <= 0 {
		return domain.ItemResponse{}, domain.ErrInvalidPrice
	}
	if req.Quantity < 0 {
		return domain.ItemResponse{}, domain.ErrInvalidQuantity
	}
	if err := validateSchedule(req.CustomDiscounts); err != nil {
		return domain.ItemResponse{}, err
	}

	var bestBefore *time.Time
	if req.BestBefore != "" {
		parsed, err := time.Parse("2006-01-02", req.BestBefore)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidBestBefore
		}
		bestBefore = &parsed
	}

	item := &entities.Item{
		ID:              uuid.New(),
		SubcategoryID:   subcategoryUUID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		BestBefore:      bestBefore,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		AutoDiscount:    req.AutoDiscount,
		CustomDiscounts: entities.DiscountSchedule(req.CustomDiscounts),
	}
	item.DiscountPrice = pricing.SalePrice(time.Now(), item.Price, item.BestBefore, item.AutoDiscount, item.CustomDiscounts)

	if err := s.catalogRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}

	return itemResponse(item), nil
}

func (s *catalogService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) error {
	item, err := s.catalogRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if req.SubcategoryID != "" {
		subcategoryUUID, err := uuid.Parse(req.SubcategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		item.SubcategoryID = subcategoryUUID
	}
	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price > 0 {
		item.Price = req.Price
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.BestBefore != "" {
		parsed, err := time.Parse("2006-01-02", req.BestBefore)
		if err != nil {
			return domain.ErrInvalidBestBefore
		}
		item.BestBefore = &parsed
	}
	if req.AutoDiscount != nil {
		item.AutoDiscount = *req.AutoDiscount
	}
	if req.CustomDiscounts != nil {
		if err := validateSchedule(req.CustomDiscounts); err != nil {
			return err
		}
		item.CustomDiscounts = entities.DiscountSchedule(req.CustomDiscounts)
	}

	item.DiscountPrice = pricing.SalePrice(time.Now(), item.Price, item.BestBefore, item.AutoDiscount, item.CustomDiscounts)

	return s.catalogRepository.UpdateItem(ctx, item)
}

func (s *catalogService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.catalogRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.catalogRepository.DeleteItem(ctx, id)
}

func (s *catalogService) GetItems(ctx context.Context, subcategoryID string, page, limit int) ([]domain.ItemResponse, int64, error) {
	items, count, err := s.catalogRepository.GetItems(ctx, subcategoryID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ItemResponse
	for _, item := range items {
		response = append(response, itemResponse(item))
	}

	return response, count, nil
}

func (s *catalogService) GetItemByID(ctx context.Context, id string) (domain.ItemResponse, error) {
	item, err := s.catalogRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}
	return itemResponse(item), nil
}

func (s *catalogService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest) error {
	item, err := s.catalogRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	fileName := fmt.Sprintf("item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.catalogRepository.UpdateItem(ctx, item)
}

// itemResponse decorates an item with its current effective sale price;
// discount_price stored on the row may lag until the next reprice pass.
func itemResponse(item *entities.Item) domain.ItemResponse {
	sale := pricing.SalePrice(time.Now(), item.Price, item.BestBefore, item.AutoDiscount, item.CustomDiscounts)
	return domain.ItemResponse{
		ID:              item.ID.String(),
		SubcategoryID:   item.SubcategoryID.String(),
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		DiscountPrice:   sale,
		BestBefore:      item.BestBefore,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		AutoDiscount:    item.AutoDiscount,
		CustomDiscounts: item.CustomDiscounts,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
	}
}
