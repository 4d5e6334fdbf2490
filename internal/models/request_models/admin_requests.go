package request_models

import "vpgquote/internal/configurator"

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateQuestionRequest struct {
	CategoryID      *string                         `json:"category_id"`
	ProductSlug     *string                         `json:"product_slug"`
	QuestionKey     string                          `json:"question_key" binding:"required"`
	Label           string                          `json:"label" binding:"required"`
	HeadingLevel    string                          `json:"heading_level"`
	Subtitle        *string                         `json:"subtitle"`
	Type            string                          `json:"type" binding:"required,oneof=single-select multi-select text number"`
	DisplayType     string                          `json:"display_type"`
	Options         []configurator.QuestionOption   `json:"options"`
	Required        bool                            `json:"required"`
	OrderRank       int                             `json:"order_rank"`
	CatalogueItemID *string                         `json:"catalogue_item_id"`
	PricePerUnitMin *int64                          `json:"price_per_unit_min"`
	PricePerUnitMax *int64                          `json:"price_per_unit_max"`
	StepID          *string                         `json:"step_id"`
	VisibilityRules *configurator.VisibilityConfig  `json:"visibility_rules"`
}

type UpdateQuestionRequest struct {
	QuestionKey     *string                        `json:"question_key"`
	Label           *string                        `json:"label"`
	HeadingLevel    *string                        `json:"heading_level"`
	Subtitle        *string                        `json:"subtitle"`
	Type            *string                        `json:"type"`
	DisplayType     *string                        `json:"display_type"`
	Options         []configurator.QuestionOption  `json:"options"`
	Required        *bool                          `json:"required"`
	OrderRank       *int                           `json:"order_rank"`
	CatalogueItemID *string                        `json:"catalogue_item_id"`
	PricePerUnitMin *int64                         `json:"price_per_unit_min"`
	PricePerUnitMax *int64                         `json:"price_per_unit_max"`
	StepID          *string                        `json:"step_id"`
	VisibilityRules *configurator.VisibilityConfig `json:"visibility_rules"`
}

type UpsertPricingRequest struct {
	CategoryID     *string                      `json:"category_id"`
	ProductSlug    *string                      `json:"product_slug"`
	BasePriceMin   int64                        `json:"base_price_min"`
	BasePriceMax   int64                        `json:"base_price_max"`
	PriceModifiers []configurator.PriceModifier `json:"price_modifiers"`
}

type CreateCatalogueItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Image    *string `json:"image"`
	PriceMin int64   `json:"price_min"`
	PriceMax int64   `json:"price_max"`
	Unit     *string `json:"unit"`
}

type UpdateCatalogueItemRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Image    *string `json:"image"`
	PriceMin *int64  `json:"price_min"`
	PriceMax *int64  `json:"price_max"`
	Unit     *string `json:"unit"`
}
