package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddItem         = "item added successfully"
	MessageSuccessUpdateItem      = "item updated successfully"
	MessageSuccessDeleteItem      = "item deleted successfully"
	MessageSuccessGetItems        = "items retrieved successfully"
	MessageSuccessUploadItemImage = "item image uploaded successfully"
	MessageSuccessAddCategory     = "category added successfully"
	MessageSuccessUpdateCategory  = "category updated successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"
	MessageSuccessAddSubcategory  = "subcategory added successfully"

	MessageFailedAddItem         = "failed to add item"
	MessageFailedUpdateItem      = "failed to update item"
	MessageFailedDeleteItem      = "failed to delete item"
	MessageFailedGetItems        = "failed to retrieve items"
	MessageFailedUploadItemImage = "failed to upload item image"
	MessageFailedAddCategory     = "failed to add category"
	MessageFailedUpdateCategory  = "failed to update category"
	MessageFailedDeleteCategory  = "failed to delete category"
	MessageFailedGetCategories   = "failed to retrieve categories"
	MessageFailedAddSubcategory  = "failed to add subcategory"

	ErrItemNotFound           = errors.New("item not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrSubcategoryNotFound    = errors.New("subcategory not found")
	ErrCategoryAlreadyExists  = errors.New("category already exists")
	ErrInvalidBestBefore      = errors.New("invalid best before date")
	ErrInvalidQuantity        = errors.New("quantity must not be negative")
	ErrInvalidPrice           = errors.New("price must be positive")
	ErrInvalidDiscountBucket  = errors.New("discount bucket must be a positive day count")
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 100")
)

type (
	AddItemRequest struct {
		SubcategoryID   string             `json:"subcategory_id" validate:"required,uuid"`
		Name            string             `json:"name" validate:"required"`
		Description     string             `json:"description" validate:"omitempty"`
		Price           float64            `json:"price" validate:"required,gt=0"`
		BestBefore      string             `json:"best_before" validate:"omitempty"`
		Quantity        int                `json:"quantity" validate:"required,min=0"`
		Unit            string             `json:"unit" validate:"omitempty"`
		AutoDiscount    bool               `json:"auto_discount"`
		CustomDiscounts map[string]float64 `json:"custom_discounts" validate:"omitempty"`
	}

	UpdateItemRequest struct {
		SubcategoryID   string             `json:"subcategory_id" validate:"omitempty,uuid"`
		Name            string             `json:"name" validate:"omitempty"`
		Description     string             `json:"description" validate:"omitempty"`
		Price           float64            `json:"price" validate:"omitempty,gt=0"`
		BestBefore      string             `json:"best_before" validate:"omitempty"`
		Quantity        *int               `json:"quantity" validate:"omitempty,min=0"`
		Unit            string             `json:"unit" validate:"omitempty"`
		AutoDiscount    *bool              `json:"auto_discount" validate:"omitempty"`
		CustomDiscounts map[string]float64 `json:"custom_discounts" validate:"omitempty"`
	}

	UploadItemImageRequest struct {
		ItemID string                `json:"item_id" form:"item_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ItemResponse struct {
		ID              string             `json:"id"`
		SubcategoryID   string             `json:"subcategory_id"`
		Name            string             `json:"name"`
		Description     string             `json:"description,omitempty"`
		Price           float64            `json:"price"`
		DiscountPrice   float64            `json:"discount_price"`
		BestBefore      *time.Time         `json:"best_before,omitempty"`
		Quantity        int                `json:"quantity"`
		Unit            string             `json:"unit,omitempty"`
		AutoDiscount    bool               `json:"auto_discount"`
		CustomDiscounts map[string]float64 `json:"custom_discounts,omitempty"`
		ImageURL        string             `json:"image_url,omitempty"`
		CreatedAt       time.Time          `json:"created_at"`
	}

	AddCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	AddSubcategoryRequest struct {
		CategoryID string `json:"category_id" validate:"required,uuid"`
		Name       string `json:"name" validate:"required"`
	}

	SubcategoryResponse struct {
		ID         string `json:"id"`
		CategoryID string `json:"category_id"`
		Name       string `json:"name"`
	}

	CategoryResponse struct {
		ID            string                `json:"id"`
		Name          string                `json:"name"`
		ImageURL      string                `json:"image_url,omitempty"`
		Subcategories []SubcategoryResponse `json:"subcategories,omitempty"`
	}
)
