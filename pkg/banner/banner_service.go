package banner

import (
	"context"
	"errors"
	"fmt"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"
	"SaveNServe-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BannerService interface {
		AddBanner(ctx context.Context, req domain.AddBannerRequest) (domain.BannerResponse, error)
		GetBanners(ctx context.Context, activeOnly bool) ([]domain.BannerResponse, error)
		UpdateBanner(ctx context.Context, id string, req domain.UpdateBannerRequest) error
		DeleteBanner(ctx context.Context, id string) error
	}

	bannerService struct {
		bannerRepository BannerRepository
		s3               storage.AwsS3
	}
)

func NewBannerService(bannerRepository BannerRepository, s3 storage.AwsS3) BannerService {
	return &bannerService{
		bannerRepository: bannerRepository,
		s3:               s3,
	}
}

func (s *bannerService) AddBanner(ctx context.Context, req domain.AddBannerRequest) (domain.BannerResponse, error) {
	bannerID := uuid.New()
	fileName := fmt.Sprintf("banner-%s", bannerID.String())

	objectKey, err := s.s3.UploadFile(fileName, req.Image, "banners", storage.AllowImage...)
	if err != nil {
		return domain.BannerResponse{}, err
	}

	banner := &entities.Banner{
		ID:       bannerID,
		Title:    req.Title,
		LinkURL:  req.LinkURL,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
		IsActive: true,
	}

	if err := s.bannerRepository.CreateBanner(ctx, banner); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.BannerResponse{}, err
	}

	return bannerResponse(banner), nil
}

func (s *bannerService) GetBanners(ctx context.Context, activeOnly bool) ([]domain.BannerResponse, error) {
	banners, err := s.bannerRepository.GetBanners(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	var response []domain.BannerResponse
	for _, b := range banners {
		response = append(response, bannerResponse(b))
	}
	return response, nil
}

func (s *bannerService) UpdateBanner(ctx context.Context, id string, req domain.UpdateBannerRequest) error {
	banner, err := s.bannerRepository.GetBannerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBannerNotFound
		}
		return err
	}

	if req.Title != "" {
		banner.Title = req.Title
	}
	if req.LinkURL != "" {
		banner.LinkURL = req.LinkURL
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	return s.bannerRepository.UpdateBanner(ctx, banner)
}

func (s *bannerService) DeleteBanner(ctx context.Context, id string) error {
	banner, err := s.bannerRepository.GetBannerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBannerNotFound
		}
		return err
	}

	if banner.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(banner.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.bannerRepository.DeleteBanner(ctx, id)
}

func bannerResponse(banner *entities.Banner) domain.BannerResponse {
	return domain.BannerResponse{
		ID:       banner.ID.String(),
		Title:    banner.Title,
		ImageURL: banner.ImageURL,
		LinkURL:  banner.LinkURL,
		IsActive: banner.IsActive,
	}
}
