package handlers

import (
	"strconv"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/internal/api/presenters"
	"SaveNServe-Backend/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		AddCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
		AddSubcategory(c *fiber.Ctx) error

		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetItemDetails(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) AddCategory(c *fiber.Ctx) error {
	req := new(domain.AddCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	res, err := h.catalogService.AddCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCategory)
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.catalogService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *catalogHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	req := new(domain.UpdateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	if err := h.catalogService.UpdateCategory(c.Context(), categoryID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *catalogHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	if err := h.catalogService.DeleteCategory(c.Context(), categoryID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *catalogHandler) AddSubcategory(c *fiber.Ctx) error {
	req := new(domain.AddSubcategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSubcategory, err)
	}

	res, err := h.catalogService.AddSubcategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSubcategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddSubcategory)
}

func (h *catalogHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.catalogService.AddItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *catalogHandler) UpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	if err := h.catalogService.UpdateItem(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *catalogHandler) DeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.catalogService.DeleteItem(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

func (h *catalogHandler) GetItems(c *fiber.Ctx) error {
	subcategoryID := c.Query("subcategory_id")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.catalogService.GetItems(c.Context(), subcategoryID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *catalogHandler) GetItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.catalogService.GetItemByID(c.Context(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *catalogHandler) UploadItemImage(c *fiber.Ctx) error {
	req := new(domain.UploadItemImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	if err := h.catalogService.UploadItemImage(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUploadItemImage)
}
