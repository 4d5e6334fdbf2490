package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vpgquote/internal/models/db_models"
	"vpgquote/pkg/utils"
)

type SiteRepositoryInterface interface {
	GetBySlug(ctx context.Context, slug string) (*db_models.Site, error)
}

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Site, error) {
	var site db_models.Site
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&site).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrSiteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}
