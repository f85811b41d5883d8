package handlers

import (
	"strconv"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/internal/api/presenters"
	"SaveNServe-Backend/pkg/checkout"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CheckoutHandler interface {
		Checkout(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	checkoutHandler struct {
		checkoutService checkout.CheckoutService
		validator       *validator.Validate
	}
)

func NewCheckoutHandler(checkoutService checkout.CheckoutService, validator *validator.Validate) CheckoutHandler {
	return &checkoutHandler{
		checkoutService: checkoutService,
		validator:       validator,
	}
}

func (h *checkoutHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.checkoutService.Checkout(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCheckout)
}

func (h *checkoutHandler) GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	orders, count, err := h.checkoutService.GetUserOrders(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *checkoutHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	notif := new(domain.MidtransNotification)

	if err := c.BodyParser(notif); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.checkoutService.HandleNotification(c.Context(), *notif); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
