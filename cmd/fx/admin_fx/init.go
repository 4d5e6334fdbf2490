package admin_fx

import (
	"os"

	"go.uber.org/fx"

	"vpgquote/internal/repositories"
	"vpgquote/internal/services"
)

var Module = fx.Provide(
	provideAdminCredentials, provideAuthService, provideAdminService)

func provideAdminCredentials() services.AdminCredentials {
	return services.AdminCredentials{
		Email:        os.Getenv("ADMIN_EMAIL"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func provideAuthService(credentials services.AdminCredentials) services.AuthServiceInterface {
	return services.NewAuthService(credentials)
}

func provideAdminService(
	configuratorService services.ConfiguratorServiceInterface,
	questionRepo repositories.QuestionRepositoryInterface,
	pricingRepo repositories.PricingRepositoryInterface,
	catalogueRepo repositories.CatalogueRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
) services.AdminServiceInterface {
	return services.NewAdminService(configuratorService, questionRepo, pricingRepo, catalogueRepo, submissionRepo)
}
