package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vpgquote/internal/models/db_models"
)

type StepRepositoryInterface interface {
	ListForCategory(ctx context.Context, siteID uuid.UUID, categorySlug string) ([]db_models.ConfiguratorStep, error)
}

type StepRepository struct {
	db *gorm.DB
}

func NewStepRepository(db *gorm.DB) *StepRepository {
	return &StepRepository{db: db}
}

func (r *StepRepository) ListForCategory(ctx context.Context, siteID uuid.UUID, categorySlug string) ([]db_models.ConfiguratorStep, error) {
	var steps []db_models.ConfiguratorStep
	err := r.db.WithContext(ctx).
		Joins("JOIN configurator_categories c ON c.id = configurator_steps.category_id").
		Where("configurator_steps.site_id = ? AND c.slug = ?", siteID, categorySlug).
		Order("configurator_steps.order_rank, configurator_steps.created_at").
		Find(&steps).Error
	return steps, err
}
