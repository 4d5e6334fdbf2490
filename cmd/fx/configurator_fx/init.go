package configurator_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vpgquote/internal/repositories"
	"vpgquote/internal/services"
	mem "vpgquote/pkg/memcache"
)

var Module = fx.Provide(
	provideSiteRepo,
	provideQuestionRepo,
	providePricingRepo,
	provideCatalogueRepo,
	provideStepRepo,
	provideConfiguratorService)

func provideSiteRepo(db *gorm.DB) repositories.SiteRepositoryInterface {
	return repositories.NewSiteRepository(db)
}

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepositoryInterface {
	return repositories.NewQuestionRepository(db)
}

func providePricingRepo(db *gorm.DB) repositories.PricingRepositoryInterface {
	return repositories.NewPricingRepository(db)
}

func provideCatalogueRepo(db *gorm.DB) repositories.CatalogueRepositoryInterface {
	return repositories.NewCatalogueRepository(db)
}

func provideStepRepo(db *gorm.DB) repositories.StepRepositoryInterface {
	return repositories.NewStepRepository(db)
}

func provideConfiguratorService(
	questionRepo repositories.QuestionRepositoryInterface,
	pricingRepo repositories.PricingRepositoryInterface,
	catalogueRepo repositories.CatalogueRepositoryInterface,
	stepRepo repositories.StepRepositoryInterface,
	siteRepo repositories.SiteRepositoryInterface,
	siteIDs *mem.SiteIDCache,
) services.ConfiguratorServiceInterface {
	return services.NewConfiguratorService(questionRepo, pricingRepo, catalogueRepo, stepRepo, siteRepo, siteIDs)
}
