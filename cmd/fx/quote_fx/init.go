package quote_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vpgquote/internal/repositories"
	"vpgquote/internal/services"
)

var Module = fx.Provide(
	provideSubmissionRepo, provideQuoteService)

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepositoryInterface {
	return repositories.NewSubmissionRepository(db)
}

func provideQuoteService(
	configuratorService services.ConfiguratorServiceInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	mailService services.IMailService,
) services.QuoteServiceInterface {
	return services.NewQuoteService(configuratorService, submissionRepo, mailService)
}
