package banner

import (
	"context"

	"SaveNServe-Backend/entities"

	"gorm.io/gorm"
)

type (
	BannerRepository interface {
		CreateBanner(ctx context.Context, banner *entities.Banner) error
		GetBannerByID(ctx context.Context, id string) (*entities.Banner, error)
		GetBanners(ctx context.Context, activeOnly bool) ([]*entities.Banner, error)
		UpdateBanner(ctx context.Context, banner *entities.Banner) error
		DeleteBanner(ctx context.Context, id string) error
	}

	bannerRepository struct {
		db *gorm.DB
	}
)

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) CreateBanner(ctx context.Context, banner *entities.Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *bannerRepository) GetBannerByID(ctx context.Context, id string) (*entities.Banner, error) {
	var banner entities.Banner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&banner).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *bannerRepository) GetBanners(ctx context.Context, activeOnly bool) ([]*entities.Banner, error) {
	var banners []*entities.Banner

	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Order("created_at desc").Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *bannerRepository) UpdateBanner(ctx context.Context, banner *entities.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *bannerRepository) DeleteBanner(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Banner{}).Error
}
