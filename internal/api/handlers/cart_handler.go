package handlers

import (
	"errors"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/internal/api/presenters"
	"SaveNServe-Backend/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		GetCart(c *fiber.Ctx) error
		AddToCart(c *fiber.Ctx) error
		UpdateCartItem(c *fiber.Ctx) error
		RemoveCartItem(c *fiber.Ctx) error
		ConfirmPickup(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func cartErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrCartItemNotFound), errors.Is(err, domain.ErrItemNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}

func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.cartService.GetCart(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddToCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	if err := h.cartService.AddItem(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedAddToCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddToCart)
}

func (h *cartHandler) UpdateCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	lineID := c.Params("id")
	req := new(domain.UpdateCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartItem, err)
	}

	if err := h.cartService.UpdateQuantity(c.Context(), lineID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedUpdateCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCartItem)
}

func (h *cartHandler) RemoveCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	lineID := c.Params("id")

	if err := h.cartService.RemoveItem(c.Context(), lineID, userID); err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedRemoveCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}

func (h *cartHandler) ConfirmPickup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	lineID := c.Params("id")

	if err := h.cartService.ConfirmPickup(c.Context(), lineID, userID); err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedConfirmPickup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessConfirmPickup)
}
