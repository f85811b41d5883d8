package catalog

import (
	"context"
	"errors"

	"SaveNServe-Backend/entities"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		AddCategory(ctx context.Context, category *entities.Category) error
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string) error

		AddSubcategory(ctx context.Context, subcategory *entities.Subcategory) error
		GetSubcategoryByID(ctx context.Context, id string) (*entities.Subcategory, error)

		AddItem(ctx context.Context, item *entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, subcategoryID string, page, limit int) ([]*entities.Item, int64, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) AddCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *catalogRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Preload("Subcategories").
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).
		Preload("Subcategories").
		Where("id = ?", id).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *catalogRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Category{}).Error
}

func (r *catalogRepository) AddSubcategory(ctx context.Context, subcategory *entities.Subcategory) error {
	return r.db.WithContext(ctx).Create(subcategory).Error
}

func (r *catalogRepository) GetSubcategoryByID(ctx context.Context, id string) (*entities.Subcategory, error) {
	var subcategory entities.Subcategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&subcategory).Error; err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *catalogRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *catalogRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *catalogRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Item{}).Error
}

func (r *catalogRepository) GetItems(ctx context.Context, subcategoryID string, page, limit int) ([]*entities.Item, int64, error) {
	var items []*entities.Item
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Item{})
	if subcategoryID != "" {
		query = query.Where("subcategory_id = ?", subcategoryID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("best_before asc NULLS LAST").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}
