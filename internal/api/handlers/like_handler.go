package handlers

import (
	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/internal/api/presenters"
	"SaveNServe-Backend/pkg/like"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LikeHandler interface {
		LikeItem(c *fiber.Ctx) error
		UnlikeItem(c *fiber.Ctx) error
		GetLikedItems(c *fiber.Ctx) error
	}

	likeHandler struct {
		likeService like.LikeService
		validator   *validator.Validate
	}
)

func NewLikeHandler(likeService like.LikeService, validator *validator.Validate) LikeHandler {
	return &likeHandler{
		likeService: likeService,
		validator:   validator,
	}
}

func (h *likeHandler) LikeItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LikeItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLikeItem, err)
	}

	if err := h.likeService.LikeItem(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLikeItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessLikeItem)
}

func (h *likeHandler) UnlikeItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("item_id")

	if err := h.likeService.UnlikeItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnlikeItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnlikeItem)
}

func (h *likeHandler) GetLikedItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.likeService.GetLikedItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLikedItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLikedItems)
}
