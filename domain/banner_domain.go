package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAddBanner    = "banner added successfully"
	MessageSuccessUpdateBanner = "banner updated successfully"
	MessageSuccessDeleteBanner = "banner deleted successfully"
	MessageSuccessGetBanners   = "banners retrieved successfully"

	MessageFailedAddBanner    = "failed to add banner"
	MessageFailedUpdateBanner = "failed to update banner"
	MessageFailedDeleteBanner = "failed to delete banner"
	MessageFailedGetBanners   = "failed to retrieve banners"

	ErrBannerNotFound = errors.New("banner not found")
)

type (
	AddBannerRequest struct {
		Title   string                `json:"title" form:"title" validate:"required"`
		LinkURL string                `json:"link_url" form:"link_url" validate:"omitempty"`
		Image   *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	UpdateBannerRequest struct {
		Title    string `json:"title" validate:"omitempty"`
		LinkURL  string `json:"link_url" validate:"omitempty"`
		IsActive *bool  `json:"is_active" validate:"omitempty"`
	}

	BannerResponse struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		ImageURL string `json:"image_url"`
		LinkURL  string `json:"link_url,omitempty"`
		IsActive bool   `json:"is_active"`
	}
)
