package domain

import (
	"errors"
)

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddToCart      = "item added to cart"
	MessageSuccessUpdateCartItem = "cart item updated"
	MessageSuccessRemoveCartItem = "cart item removed"
	MessageSuccessConfirmPickup  = "pickup confirmed"

	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove cart item"
	MessageFailedConfirmPickup  = "failed to confirm pickup"

	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrCartEmpty         = errors.New("cart is empty")
)

type (
	AddToCartRequest struct {
		ItemID   string `json:"item_id" validate:"required,uuid"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity" validate:"min=0"`
	}

	CartLineResponse struct {
		ID        string  `json:"id"`
		ItemID    string  `json:"item_id"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		SalePrice float64 `json:"sale_price"`
		Quantity  int     `json:"quantity"`
		Subtotal  float64 `json:"subtotal"`
		ImageURL  string  `json:"image_url,omitempty"`
	}

	CartResponse struct {
		ID    string             `json:"id"`
		Lines []CartLineResponse `json:"lines"`
		Total float64            `json:"total"`
	}
)
