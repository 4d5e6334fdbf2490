package services

import (
	"context"

	"github.com/google/uuid"

	"vpgquote/internal/models/db_models"
	"vpgquote/internal/models/request_models"
	"vpgquote/internal/repositories"
	"vpgquote/pkg/utils"
)

// AdminServiceInterface backs the authoring panel: thin CRUD over the
// configurator content tables. All operations are scoped to a site.
type AdminServiceInterface interface {
	ListQuestions(ctx context.Context, siteSlug string, productSlug string) ([]db_models.ConfiguratorQuestion, error)
	CreateQuestion(ctx context.Context, siteSlug string, req request_models.CreateQuestionRequest) (*db_models.ConfiguratorQuestion, error)
	UpdateQuestion(ctx context.Context, siteSlug string, id string, req request_models.UpdateQuestionRequest) (*db_models.ConfiguratorQuestion, error)
	DeleteQuestion(ctx context.Context, siteSlug string, id string) error

	UpsertPricing(ctx context.Context, siteSlug string, req request_models.UpsertPricingRequest) (*db_models.ConfiguratorPricing, error)

	ListCatalogue(ctx context.Context, siteSlug string) ([]db_models.PriceCatalogueItem, error)
	CreateCatalogueItem(ctx context.Context, siteSlug string, req request_models.CreateCatalogueItemRequest) (*db_models.PriceCatalogueItem, error)
	UpdateCatalogueItem(ctx context.Context, siteSlug string, id string, req request_models.UpdateCatalogueItemRequest) (*db_models.PriceCatalogueItem, error)
	DeleteCatalogueItem(ctx context.Context, siteSlug string, id string) error

	ListSubmissions(ctx context.Context, siteSlug string, page, pageSize int) ([]db_models.QuoteSubmission, error)
}

type AdminService struct {
	configuratorService ConfiguratorServiceInterface
	questionRepo        repositories.QuestionRepositoryInterface
	pricingRepo         repositories.PricingRepositoryInterface
	catalogueRepo       repositories.CatalogueRepositoryInterface
	submissionRepo      repositories.SubmissionRepositoryInterface
}

func NewAdminService(
	configuratorService ConfiguratorServiceInterface,
	questionRepo repositories.QuestionRepositoryInterface,
	pricingRepo repositories.PricingRepositoryInterface,
	catalogueRepo repositories.CatalogueRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
) AdminServiceInterface {
	return &AdminService{
		configuratorService: configuratorService,
		questionRepo:        questionRepo,
		pricingRepo:         pricingRepo,
		catalogueRepo:       catalogueRepo,
		submissionRepo:      submissionRepo,
	}
}

func (s *AdminService) ListQuestions(ctx context.Context, siteSlug string, productSlug string) ([]db_models.ConfiguratorQuestion, error) {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListForCategory(ctx, siteID, productSlug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(questions) == 0 {
		questions, err = s.questionRepo.ListForProduct(ctx, siteID, productSlug)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return questions, nil
}

func (s *AdminService) CreateQuestion(ctx context.Context, siteSlug string, req request_models.CreateQuestionRequest) (*db_models.ConfiguratorQuestion, error) {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return nil, err
	}

	question := &db_models.ConfiguratorQuestion{
		SiteID:          siteID,
		ProductSlug:     req.ProductSlug,
		QuestionKey:     req.QuestionKey,
		Label:           req.Label,
		HeadingLevel:    defaultString(req.HeadingLevel, "h2"),
		Subtitle:        req.Subtitle,
		Type:            req.Type,
		DisplayType:     defaultString(req.DisplayType, "select"),
		Options:         db_models.OptionList(req.Options),
		Required:        req.Required,
		OrderRank:       req.OrderRank,
		PricePerUnitMin: req.PricePerUnitMin,
		PricePerUnitMax: req.PricePerUnitMax,
	}
	if question.CategoryID, err = parseOptionalID(req.CategoryID); err != nil {
		return nil, err
	}
	if question.CatalogueItemID, err = parseOptionalID(req.CatalogueItemID); err != nil {
		return nil, err
	}
	if question.StepID, err = parseOptionalID(req.StepID); err != nil {
		return nil, err
	}
	if req.VisibilityRules != nil {
		rules := db_models.VisibilityRulesJSON(*req.VisibilityRules)
		question.VisibilityRules = &rules
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return question, nil
}

func (s *AdminService) UpdateQuestion(ctx context.Context, siteSlug string, id string, req request_models.UpdateQuestionRequest) (*db_models.ConfiguratorQuestion, error) {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return nil, err
	}
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrQuestionNotFound
	}
	question, err := s.questionRepo.GetByID(ctx, siteID, questionID)
	if err != nil {
		return nil, utils.ErrQuestionNotFound
	}

	if req.QuestionKey != nil {
		question.QuestionKey = *req.QuestionKey
	}
	if req.Label != nil {
		question.Label = *req.Label
	}
	if req.HeadingLevel != nil {
		question.HeadingLevel = *req.HeadingLevel
	}
	if req.Subtitle != nil {
		question.Subtitle = req.Subtitle
	}
	if req.Type != nil {
		question.Type = *req.Type
	}
	if req.DisplayType != nil {
		question.DisplayType = *req.DisplayType
	}
	if req.Options != nil {
		question.Options = db_models.OptionList(req.Options)
	}
	if req.Required != nil {
		question.Required = *req.Required
	}
	if req.OrderRank != nil {
		question.OrderRank = *req.OrderRank
	}
	if req.PricePerUnitMin != nil {
		question.PricePerUnitMin = req.PricePerUnitMin
	}
	if req.PricePerUnitMax != nil {
		question.PricePerUnitMax = req.PricePerUnitMax
	}
	if req.CatalogueItemID != nil {
		if question.CatalogueItemID, err = parseOptionalID(req.CatalogueItemID); err != nil {
			return nil, err
		}
	}
	if req.StepID != nil {
		if question.StepID, err = parseOptionalID(req.StepID); err != nil {
			return nil, err
		}
	}
	if req.VisibilityRules != nil {
		rules := db_models.VisibilityRulesJSON(*req.VisibilityRules)
		question.VisibilityRules = &rules
	}

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return question, nil
}

func (s *AdminService) DeleteQuestion(ctx context.Context, siteSlug string, id string) error {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return err
	}
	questionID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrQuestionNotFound
	}
	if err := s.questionRepo.Delete(ctx, siteID, questionID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AdminService) UpsertPricing(ctx context.Context, siteSlug string, req request_models.UpsertPricingRequest) (*db_models.ConfiguratorPricing, error) {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return nil, err
	}

	var existing *db_models.ConfiguratorPricing
	if req.ProductSlug != nil {
		existing, err = s.pricingRepo.GetForProduct(ctx, siteID, *req.ProductSlug)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	if existing == nil && req.CategoryID != nil {
		categoryID, parseErr := parseOptionalID(req.CategoryID)
		if parseErr != nil {
			return nil, parseErr
		}
		existing, err = s.pricingRepo.GetByCategoryID(ctx, siteID, *categoryID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	pricing := existing
	if pricing == nil {
		pricing = &db_models.ConfiguratorPricing{SiteID: siteID, ProductSlug: req.ProductSlug}
		if pricing.CategoryID, err = parseOptionalID(req.CategoryID); err != nil {
			return nil, err
		}
	}
	pricing.BasePriceMin = req.BasePriceMin
	pricing.BasePriceMax = req.BasePriceMax
	pricing.PriceModifiers = db_models.PriceModifierList(req.PriceModifiers)

	if err := s.pricingRepo.Upsert(ctx, pricing); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return pricing, nil
}

func (s *AdminService) ListCatalogue(ctx context.Context, siteSlug string) ([]db_models.PriceCatalogueItem, error) {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return nil, err
	}
	items, err := s.catalogueRepo.ListBySite(ctx, siteID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *AdminService) CreateCatalogueItem(ctx context.Context, siteSlug string, req request_models.CreateCatalogueItemRequest) (*db_models.PriceCatalogueItem, error) {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return nil, err
	}
	item := &db_models.PriceCatalogueItem{
		SiteID:   siteID,
		Name:     req.Name,
		Category: req.Category,
		Image:    req.Image,
		PriceMin: req.PriceMin,
		PriceMax: req.PriceMax,
		Unit:     req.Unit,
	}
	if err := s.catalogueRepo.Create(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return item, nil
}

func (s *AdminService) UpdateCatalogueItem(ctx context.Context, siteSlug string, id string, req request_models.UpdateCatalogueItemRequest) (*db_models.PriceCatalogueItem, error) {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return nil, err
	}
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrCatalogueNotFound
	}
	item, err := s.catalogueRepo.GetByID(ctx, siteID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Image != nil {
		item.Image = req.Image
	}
	if req.PriceMin != nil {
		item.PriceMin = *req.PriceMin
	}
	if req.PriceMax != nil {
		item.PriceMax = *req.PriceMax
	}
	if req.Unit != nil {
		item.Unit = req.Unit
	}

	if err := s.catalogueRepo.Update(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return item, nil
}

func (s *AdminService) DeleteCatalogueItem(ctx context.Context, siteSlug string, id string) error {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return err
	}
	itemID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrCatalogueNotFound
	}
	if err := s.catalogueRepo.Delete(ctx, siteID, itemID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AdminService) ListSubmissions(ctx context.Context, siteSlug string, page, pageSize int) ([]db_models.QuoteSubmission, error) {
	siteID, err := s.configuratorService.ResolveSiteID(ctx, siteSlug)
	if err != nil {
		return nil, err
	}
	submissions, err := s.submissionRepo.ListBySite(ctx, siteID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return submissions, nil
}

func parseOptionalID(id *string) (*uuid.UUID, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return nil, utils.ErrQuestionNotFound
	}
	return &parsed, nil
}

func defaultString(v string, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
