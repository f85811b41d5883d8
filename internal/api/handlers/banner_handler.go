package handlers

import (
	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/internal/api/presenters"
	"SaveNServe-Backend/pkg/banner"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BannerHandler interface {
		AddBanner(c *fiber.Ctx) error
		GetBanners(c *fiber.Ctx) error
		GetAllBanners(c *fiber.Ctx) error
		UpdateBanner(c *fiber.Ctx) error
		DeleteBanner(c *fiber.Ctx) error
	}

	bannerHandler struct {
		bannerService banner.BannerService
		validator     *validator.Validate
	}
)

func NewBannerHandler(bannerService banner.BannerService, validator *validator.Validate) BannerHandler {
	return &bannerHandler{
		bannerService: bannerService,
		validator:     validator,
	}
}

func (h *bannerHandler) AddBanner(c *fiber.Ctx) error {
	req := new(domain.AddBannerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBanner, err)
	}

	res, err := h.bannerService.AddBanner(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBanner, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddBanner)
}

// GetBanners lists the active banners shown on the storefront.
func (h *bannerHandler) GetBanners(c *fiber.Ctx) error {
	res, err := h.bannerService.GetBanners(c.Context(), true)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBanners, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBanners)
}

// GetAllBanners lists every banner for the admin panel.
func (h *bannerHandler) GetAllBanners(c *fiber.Ctx) error {
	res, err := h.bannerService.GetBanners(c.Context(), false)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBanners, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBanners)
}

func (h *bannerHandler) UpdateBanner(c *fiber.Ctx) error {
	bannerID := c.Params("id")
	req := new(domain.UpdateBannerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBanner, err)
	}

	if err := h.bannerService.UpdateBanner(c.Context(), bannerID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBanner, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateBanner)
}

func (h *bannerHandler) DeleteBanner(c *fiber.Ctx) error {
	bannerID := c.Params("id")

	if err := h.bannerService.DeleteBanner(c.Context(), bannerID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteBanner, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBanner)
}
