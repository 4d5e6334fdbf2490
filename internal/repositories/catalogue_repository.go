package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vpgquote/internal/models/db_models"
	"vpgquote/pkg/utils"
)

type CatalogueRepositoryInterface interface {
	ListBySite(ctx context.Context, siteID uuid.UUID) ([]db_models.PriceCatalogueItem, error)
	GetByID(ctx context.Context, siteID, id uuid.UUID) (*db_models.PriceCatalogueItem, error)
	Create(ctx context.Context, item *db_models.PriceCatalogueItem) error
	Update(ctx context.Context, item *db_models.PriceCatalogueItem) error
	Delete(ctx context.Context, siteID, id uuid.UUID) error
}

type CatalogueRepository struct {
	db *gorm.DB
}

func NewCatalogueRepository(db *gorm.DB) *CatalogueRepository {
	return &CatalogueRepository{db: db}
}

func (r *CatalogueRepository) ListBySite(ctx context.Context, siteID uuid.UUID) ([]db_models.PriceCatalogueItem, error) {
	var items []db_models.PriceCatalogueItem
	err := r.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Order("category, name").
		Find(&items).Error
	return items, err
}

func (r *CatalogueRepository) GetByID(ctx context.Context, siteID, id uuid.UUID) (*db_models.PriceCatalogueItem, error) {
	var item db_models.PriceCatalogueItem
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND id = ?", siteID, id).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrCatalogueNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogueRepository) Create(ctx context.Context, item *db_models.PriceCatalogueItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CatalogueRepository) Update(ctx context.Context, item *db_models.PriceCatalogueItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *CatalogueRepository) Delete(ctx context.Context, siteID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("site_id = ? AND id = ?", siteID, id).
		Delete(&db_models.PriceCatalogueItem{}).Error
}
