package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"vpgquote/internal/configurator"
	"vpgquote/internal/models/db_models"
	"vpgquote/internal/models/response_models"
	"vpgquote/internal/repositories"
	"vpgquote/pkg/memcache"
	"vpgquote/pkg/utils"
)

type ConfiguratorServiceInterface interface {
	ResolveSiteID(ctx context.Context, siteSlug string) (uuid.UUID, error)
	GetQuestions(ctx context.Context, productSlug string, siteSlug string) (*response_models.QuestionListResponse, error)

	// CalculatePrice is the public estimate path: answers are stripped of
	// hidden questions/options before pricing (server-side guard).
	CalculatePrice(ctx context.Context, productSlug string, siteSlug string, answers configurator.AnswerMap) (configurator.PriceResult, error)

	// PriceQuote prices the full answer map without the visibility guard
	// and also returns the question definitions, for the submission flow.
	PriceQuote(ctx context.Context, productSlug string, siteSlug string, answers configurator.AnswerMap) (configurator.PriceResult, []configurator.Question, error)
}

type ConfiguratorService struct {
	questionRepo  repositories.QuestionRepositoryInterface
	pricingRepo   repositories.PricingRepositoryInterface
	catalogueRepo repositories.CatalogueRepositoryInterface
	stepRepo      repositories.StepRepositoryInterface
	siteRepo      repositories.SiteRepositoryInterface
	siteIDs       *memcache.SiteIDCache
}

func NewConfiguratorService(
	questionRepo repositories.QuestionRepositoryInterface,
	pricingRepo repositories.PricingRepositoryInterface,
	catalogueRepo repositories.CatalogueRepositoryInterface,
	stepRepo repositories.StepRepositoryInterface,
	siteRepo repositories.SiteRepositoryInterface,
	siteIDs *memcache.SiteIDCache,
) ConfiguratorServiceInterface {
	return &ConfiguratorService{
		questionRepo:  questionRepo,
		pricingRepo:   pricingRepo,
		catalogueRepo: catalogueRepo,
		stepRepo:      stepRepo,
		siteRepo:      siteRepo,
		siteIDs:       siteIDs,
	}
}

func (s *ConfiguratorService) ResolveSiteID(ctx context.Context, siteSlug string) (uuid.UUID, error) {
	if id, ok := s.siteIDs.Get(siteSlug); ok {
		return id, nil
	}

	site, err := s.siteRepo.GetBySlug(ctx, siteSlug)
	if err != nil {
		if errors.Is(err, utils.ErrSiteNotFound) {
			return uuid.Nil, err
		}
		return uuid.Nil, utils.ErrDatabaseError
	}

	s.siteIDs.Set(siteSlug, site.ID)
	return site.ID, nil
}

func (s *ConfiguratorService) GetQuestions(ctx context.Context, productSlug string, siteSlug string) (*response_models.QuestionListResponse, error) {
	empty := &response_models.QuestionListResponse{
		Questions: []response_models.QuestionResponse{},
		Source:    "database",
	}

	siteID, err := s.ResolveSiteID(ctx, siteSlug)
	if errors.Is(err, utils.ErrSiteNotFound) {
		return empty, nil
	}
	if err != nil {
		return nil, err
	}

	questions, err := s.loadQuestions(ctx, siteID, productSlug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(questions) == 0 {
		return empty, nil
	}

	steps, err := s.stepRepo.ListForCategory(ctx, siteID, productSlug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.QuestionListResponse{
		Questions: make([]response_models.QuestionResponse, 0, len(questions)),
		Steps:     make([]response_models.StepResponse, 0, len(steps)),
		Source:    "database",
	}
	for _, q := range questions {
		displayType := q.DisplayType
		if displayType == "" {
			displayType = "select"
		}
		var stepID *string
		if q.StepID != nil {
			id := q.StepID.String()
			stepID = &id
		}
		out.Questions = append(out.Questions, response_models.QuestionResponse{
			QuestionKey: q.QuestionKey,
			Label:       q.Label,
			Type:        q.Type,
			DisplayType: displayType,
			Options:     []configurator.QuestionOption(q.Options),
			Required:    q.Required,
			Description: q.Subtitle,
			StepID:      stepID,
		})
	}
	for _, step := range steps {
		out.Steps = append(out.Steps, response_models.StepResponse{
			ID:          step.ID.String(),
			Name:        step.Name,
			Description: step.Description,
			OrderRank:   step.OrderRank,
		})
	}
	return out, nil
}

func (s *ConfiguratorService) CalculatePrice(ctx context.Context, productSlug string, siteSlug string, answers configurator.AnswerMap) (configurator.PriceResult, error) {
	pricing, questions, catalogue, err := s.loadDefinitions(ctx, productSlug, siteSlug)
	if err != nil {
		return configurator.PriceResult{}, err
	}
	if pricing == nil {
		// Nothing configured for this product: zero estimate, not an error.
		return configurator.ZeroResult(), nil
	}

	guarded := configurator.FilterVisibleAnswers(questions, answers)
	return configurator.CalculatePrice(*pricing, questions, guarded, catalogue), nil
}

func (s *ConfiguratorService) PriceQuote(ctx context.Context, productSlug string, siteSlug string, answers configurator.AnswerMap) (configurator.PriceResult, []configurator.Question, error) {
	pricing, questions, catalogue, err := s.loadDefinitions(ctx, productSlug, siteSlug)
	if err != nil {
		return configurator.PriceResult{}, nil, err
	}
	if pricing == nil {
		return configurator.ZeroResult(), questions, nil
	}
	return configurator.CalculatePrice(*pricing, questions, answers, catalogue), questions, nil
}

// loadDefinitions resolves pricing, questions and catalogue for a product.
// Category-scoped content wins; product_slug scoping is the legacy
// fallback. An unknown site behaves like an unconfigured product: nil
// pricing, no questions.
func (s *ConfiguratorService) loadDefinitions(ctx context.Context, productSlug string, siteSlug string) (*configurator.Pricing, []configurator.Question, []configurator.CatalogueItem, error) {
	siteID, err := s.ResolveSiteID(ctx, siteSlug)
	if errors.Is(err, utils.ErrSiteNotFound) {
		return nil, nil, nil, nil
	}
	if err != nil {
		return nil, nil, nil, err
	}

	pricingModel, err := s.pricingRepo.GetForCategory(ctx, siteID, productSlug)
	if err != nil {
		return nil, nil, nil, utils.ErrDatabaseError
	}
	if pricingModel == nil {
		pricingModel, err = s.pricingRepo.GetForProduct(ctx, siteID, productSlug)
		if err != nil {
			return nil, nil, nil, utils.ErrDatabaseError
		}
	}

	questionModels, err := s.loadQuestions(ctx, siteID, productSlug)
	if err != nil {
		return nil, nil, nil, utils.ErrDatabaseError
	}

	catalogueModels, err := s.catalogueRepo.ListBySite(ctx, siteID)
	if err != nil {
		return nil, nil, nil, utils.ErrDatabaseError
	}

	var pricing *configurator.Pricing
	if pricingModel != nil {
		p := pricingModel.ToDomain()
		pricing = &p
	}
	questions := make([]configurator.Question, 0, len(questionModels))
	for i := range questionModels {
		questions = append(questions, questionModels[i].ToDomain())
	}
	catalogue := make([]configurator.CatalogueItem, 0, len(catalogueModels))
	for i := range catalogueModels {
		catalogue = append(catalogue, catalogueModels[i].ToDomain())
	}
	return pricing, questions, catalogue, nil
}

func (s *ConfiguratorService) loadQuestions(ctx context.Context, siteID uuid.UUID, productSlug string) ([]db_models.ConfiguratorQuestion, error) {
	questions, err := s.questionRepo.ListForCategory(ctx, siteID, productSlug)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		questions, err = s.questionRepo.ListForProduct(ctx, siteID, productSlug)
		if err != nil {
			return nil, err
		}
	}
	return questions, nil
}
