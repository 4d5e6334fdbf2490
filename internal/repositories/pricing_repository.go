package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vpgquote/internal/models/db_models"
)

type PricingRepositoryInterface interface {
	// GetForCategory and GetForProduct return (nil, nil) when nothing is
	// configured; absence is a normal state, not an error.
	GetForCategory(ctx context.Context, siteID uuid.UUID, categorySlug string) (*db_models.ConfiguratorPricing, error)
	GetForProduct(ctx context.Context, siteID uuid.UUID, productSlug string) (*db_models.ConfiguratorPricing, error)
	GetByCategoryID(ctx context.Context, siteID uuid.UUID, categoryID uuid.UUID) (*db_models.ConfiguratorPricing, error)
	Upsert(ctx context.Context, pricing *db_models.ConfiguratorPricing) error
}

type PricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *PricingRepository {
	return &PricingRepository{db: db}
}

func (r *PricingRepository) GetForCategory(ctx context.Context, siteID uuid.UUID, categorySlug string) (*db_models.ConfiguratorPricing, error) {
	var pricing db_models.ConfiguratorPricing
	err := r.db.WithContext(ctx).
		Joins("JOIN configurator_categories c ON c.id = configurator_pricing.category_id").
		Where("configurator_pricing.site_id = ? AND c.slug = ?", siteID, categorySlug).
		First(&pricing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pricing, nil
}

func (r *PricingRepository) GetForProduct(ctx context.Context, siteID uuid.UUID, productSlug string) (*db_models.ConfiguratorPricing, error) {
	var pricing db_models.ConfiguratorPricing
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND product_slug = ?", siteID, productSlug).
		First(&pricing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pricing, nil
}

func (r *PricingRepository) GetByCategoryID(ctx context.Context, siteID uuid.UUID, categoryID uuid.UUID) (*db_models.ConfiguratorPricing, error) {
	var pricing db_models.ConfiguratorPricing
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND category_id = ?", siteID, categoryID).
		First(&pricing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pricing, nil
}

func (r *PricingRepository) Upsert(ctx context.Context, pricing *db_models.ConfiguratorPricing) error {
	return r.db.WithContext(ctx).Save(pricing).Error
}
