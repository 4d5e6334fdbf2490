package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vpgquote/internal/models/db_models"
)

type QuestionRepositoryInterface interface {
	ListForCategory(ctx context.Context, siteID uuid.UUID, categorySlug string) ([]db_models.ConfiguratorQuestion, error)
	ListForProduct(ctx context.Context, siteID uuid.UUID, productSlug string) ([]db_models.ConfiguratorQuestion, error)
	GetByID(ctx context.Context, siteID, id uuid.UUID) (*db_models.ConfiguratorQuestion, error)
	Create(ctx context.Context, question *db_models.ConfiguratorQuestion) error
	Update(ctx context.Context, question *db_models.ConfiguratorQuestion) error
	Delete(ctx context.Context, siteID, id uuid.UUID) error
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) ListForCategory(ctx context.Context, siteID uuid.UUID, categorySlug string) ([]db_models.ConfiguratorQuestion, error) {
	var questions []db_models.ConfiguratorQuestion
	err := r.db.WithContext(ctx).
		Joins("JOIN configurator_categories c ON c.id = configurator_questions.category_id").
		Where("configurator_questions.site_id = ? AND c.slug = ?", siteID, categorySlug).
		Order("configurator_questions.order_rank, configurator_questions.created_at").
		Find(&questions).Error
	return questions, err
}

// ListForProduct serves content authored before categories existed:
// questions scoped to all products (NULL slug) plus product-specific ones.
func (r *QuestionRepository) ListForProduct(ctx context.Context, siteID uuid.UUID, productSlug string) ([]db_models.ConfiguratorQuestion, error) {
	var questions []db_models.ConfiguratorQuestion
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND (product_slug IS NULL OR product_slug = ?)", siteID, productSlug).
		Order("order_rank, created_at").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) GetByID(ctx context.Context, siteID, id uuid.UUID) (*db_models.ConfiguratorQuestion, error) {
	var question db_models.ConfiguratorQuestion
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND id = ?", siteID, id).
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *db_models.ConfiguratorQuestion) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *QuestionRepository) Update(ctx context.Context, question *db_models.ConfiguratorQuestion) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *QuestionRepository) Delete(ctx context.Context, siteID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("site_id = ? AND id = ?", siteID, id).
		Delete(&db_models.ConfiguratorQuestion{}).Error
}
