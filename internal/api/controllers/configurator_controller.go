package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vpgquote/internal/configurator"
	"vpgquote/internal/models/request_models"
	"vpgquote/internal/models/response_models"
	"vpgquote/internal/services"
	"vpgquote/pkg/utils"
)

const defaultSiteSlug = "vpg"

// ConfiguratorController serves the public wizard API. Responses keep the
// frontend's original flat contract, including {"error": ...} bodies.
type ConfiguratorController struct {
	configuratorService services.ConfiguratorServiceInterface
	quoteService        services.QuoteServiceInterface
}

func NewConfiguratorController(
	configuratorService services.ConfiguratorServiceInterface,
	quoteService services.QuoteServiceInterface,
) *ConfiguratorController {
	return &ConfiguratorController{
		configuratorService: configuratorService,
		quoteService:        quoteService,
	}
}

// GetQuestions godoc
// @Summary Get configurator questions
// @Description Fetch the wizard questions and steps for a product
// @Tags Configurator
// @Produce json
// @Param product query string true "Product or category slug"
// @Param site query string false "Site slug (default: vpg)"
// @Success 200 {object} response_models.QuestionListResponse
// @Router /api/configurator/questions [get]
func (ctrl *ConfiguratorController) GetQuestions(c *gin.Context) {
	productSlug := c.Query("product")
	if productSlug == "" {
		utils.RespondPublicError(c, http.StatusBadRequest, "Product parameter is required")
		return
	}
	siteSlug := c.DefaultQuery("site", defaultSiteSlug)

	questions, err := ctrl.configuratorService.GetQuestions(c.Request.Context(), productSlug, siteSlug)
	if err != nil {
		utils.RespondPublicError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Header("Cache-Control", "public, s-maxage=300, stale-while-revalidate=3600")
	c.JSON(http.StatusOK, questions)
}

// Calculate godoc
// @Summary Calculate price estimate
// @Description Calculate a price estimate for a partial or full configuration
// @Tags Configurator
// @Accept json
// @Produce json
// @Param request body request_models.CalculateRequest true "Configuration"
// @Success 200 {object} response_models.CalculateResponse
// @Router /api/configurator/calculate [post]
func (ctrl *ConfiguratorController) Calculate(c *gin.Context) {
	var req request_models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondPublicError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ProductSlug == "" {
		utils.RespondPublicError(c, http.StatusBadRequest, "product_slug is required")
		return
	}
	if req.Answers == nil {
		utils.RespondPublicError(c, http.StatusBadRequest, "answers object is required")
		return
	}
	siteSlug := req.Site
	if siteSlug == "" {
		siteSlug = defaultSiteSlug
	}

	result, err := ctrl.configuratorService.CalculatePrice(
		c.Request.Context(), req.ProductSlug, siteSlug, configurator.AnswerMap(req.Answers))
	if err != nil {
		utils.RespondPublicError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, response_models.CalculateResponse{
		Price: response_models.PriceDetails{
			Min:            result.Min,
			MinFormatted:   configurator.FormatPrice(result.Min),
			RangeFormatted: configurator.FormatPriceRange(result.Min, result.Max),
		},
	})
}

// Submit godoc
// @Summary Submit a quote request
// @Description Price the configuration, store the submission and notify by email
// @Tags Configurator
// @Accept json
// @Produce json
// @Param request body request_models.SubmitQuoteRequest true "Configuration and contact details"
// @Success 200 {object} response_models.SubmitQuoteResponse
// @Router /api/configurator/submit [post]
func (ctrl *ConfiguratorController) Submit(c *gin.Context) {
	var req request_models.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondPublicError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ProductSlug == "" {
		utils.RespondPublicError(c, http.StatusBadRequest, "product_slug is required")
		return
	}
	if req.Contact.Name == "" || req.Contact.Email == "" {
		utils.RespondPublicError(c, http.StatusBadRequest, "Contact name and email are required")
		return
	}
	if req.Site == "" {
		req.Site = defaultSiteSlug
	}
	if req.Answers == nil {
		req.Answers = map[string]any{}
	}

	result, err := ctrl.quoteService.SubmitQuote(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrSiteNotFound) {
			utils.RespondPublicError(c, http.StatusBadRequest, "Invalid site")
			return
		}
		utils.RespondPublicError(c, http.StatusInternalServerError, "Er is een fout opgetreden bij het versturen van de offerte")
		return
	}

	c.JSON(http.StatusOK, result)
}
