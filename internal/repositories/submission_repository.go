package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vpgquote/internal/models/db_models"
)

type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, submission *db_models.QuoteSubmission) error
	ListBySite(ctx context.Context, siteID uuid.UUID, page, pageSize int) ([]db_models.QuoteSubmission, error)
}

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, submission *db_models.QuoteSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *SubmissionRepository) ListBySite(ctx context.Context, siteID uuid.UUID, page, pageSize int) ([]db_models.QuoteSubmission, error) {
	var submissions []db_models.QuoteSubmission
	err := r.db.WithContext(ctx).
		Where("site_id = ?", siteID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}
