package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vpgquote/internal/models/request_models"
	"vpgquote/internal/services"
	"vpgquote/pkg/utils"
)

// AdminController serves the authoring panel. Everything except Login sits
// behind the JWT middleware and uses the standard response envelope.
type AdminController struct {
	authService  services.AuthServiceInterface
	adminService services.AdminServiceInterface
}

func NewAdminController(
	authService services.AuthServiceInterface,
	adminService services.AdminServiceInterface,
) *AdminController {
	return &AdminController{
		authService:  authService,
		adminService: adminService,
	}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate the admin account and issue a JWT
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AdminLoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/login [post]
func (ctrl *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// ListQuestions godoc
// @Summary List questions for a product
// @Tags Admin
// @Produce json
// @Param product query string true "Product or category slug"
// @Param site query string false "Site slug (default: vpg)"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/questions [get]
func (ctrl *AdminController) ListQuestions(c *gin.Context) {
	productSlug := c.Query("product")
	if productSlug == "" {
		utils.RespondError(c, http.StatusBadRequest, "Product parameter is required")
		return
	}

	questions, err := ctrl.adminService.ListQuestions(c.Request.Context(), siteParam(c), productSlug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, questions, "Questions retrieved")
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateQuestionRequest true "Question"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/questions [post]
func (ctrl *AdminController) CreateQuestion(c *gin.Context) {
	var req request_models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	question, err := ctrl.adminService.CreateQuestion(c.Request.Context(), siteParam(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, question, "Question created")
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Question id"
// @Param request body request_models.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/questions/{id} [put]
func (ctrl *AdminController) UpdateQuestion(c *gin.Context) {
	var req request_models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	question, err := ctrl.adminService.UpdateQuestion(c.Request.Context(), siteParam(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, question, "Question updated")
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags Admin
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/questions/{id} [delete]
func (ctrl *AdminController) DeleteQuestion(c *gin.Context) {
	if err := ctrl.adminService.DeleteQuestion(c.Request.Context(), siteParam(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Question deleted")
}

// UpsertPricing godoc
// @Summary Create or replace base pricing
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.UpsertPricingRequest true "Pricing"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/pricing [put]
func (ctrl *AdminController) UpsertPricing(c *gin.Context) {
	var req request_models.UpsertPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.CategoryID == nil && req.ProductSlug == nil {
		utils.RespondError(c, http.StatusBadRequest, "category_id or product_slug is required")
		return
	}

	pricing, err := ctrl.adminService.UpsertPricing(c.Request.Context(), siteParam(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, pricing, "Pricing saved")
}

// ListCatalogue godoc
// @Summary List catalogue items
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/catalogue [get]
func (ctrl *AdminController) ListCatalogue(c *gin.Context) {
	items, err := ctrl.adminService.ListCatalogue(c.Request.Context(), siteParam(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Catalogue retrieved")
}

// CreateCatalogueItem godoc
// @Summary Create a catalogue item
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateCatalogueItemRequest true "Catalogue item"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/catalogue [post]
func (ctrl *AdminController) CreateCatalogueItem(c *gin.Context) {
	var req request_models.CreateCatalogueItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, err := ctrl.adminService.CreateCatalogueItem(c.Request.Context(), siteParam(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Catalogue item created")
}

// UpdateCatalogueItem godoc
// @Summary Update a catalogue item
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Catalogue item id"
// @Param request body request_models.UpdateCatalogueItemRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/catalogue/{id} [put]
func (ctrl *AdminController) UpdateCatalogueItem(c *gin.Context) {
	var req request_models.UpdateCatalogueItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, err := ctrl.adminService.UpdateCatalogueItem(c.Request.Context(), siteParam(c), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Catalogue item updated")
}

// DeleteCatalogueItem godoc
// @Summary Delete a catalogue item
// @Tags Admin
// @Produce json
// @Param id path string true "Catalogue item id"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/catalogue/{id} [delete]
func (ctrl *AdminController) DeleteCatalogueItem(c *gin.Context) {
	if err := ctrl.adminService.DeleteCatalogueItem(c.Request.Context(), siteParam(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Catalogue item deleted")
}

// ListSubmissions godoc
// @Summary List quote submissions
// @Tags Admin
// @Produce json
// @Param page query int false "Page (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} utils.APIResponse
// @Router /api/admin/submissions [get]
func (ctrl *AdminController) ListSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	submissions, err := ctrl.adminService.ListSubmissions(c.Request.Context(), siteParam(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, submissions, "Submissions retrieved")
}

func siteParam(c *gin.Context) string {
	return c.DefaultQuery("site", defaultSiteSlug)
}
