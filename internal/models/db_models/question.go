package db_models

import (
	"github.com/google/uuid"

	"vpgquote/internal/configurator"
)

// ConfiguratorQuestion is an admin-authored wizard question. Options and
// visibility rules live in jsonb columns; the price engine receives the
// converted domain value, never the gorm model.
type ConfiguratorQuestion struct {
	BaseModel
	SiteID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"site_id"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	// Deprecated: category scoping replaces product_slug scoping; kept for
	// content authored before categories existed.
	ProductSlug     *string              `gorm:"index" json:"product_slug,omitempty"`
	QuestionKey     string               `gorm:"index;not null" json:"question_key"`
	Label           string               `gorm:"not null" json:"label"`
	HeadingLevel    string               `gorm:"default:h2" json:"heading_level"`
	Subtitle        *string              `json:"subtitle,omitempty"`
	Type            string               `gorm:"not null" json:"type"`
	DisplayType     string               `gorm:"default:select" json:"display_type"`
	Options         OptionList           `gorm:"type:jsonb" json:"options,omitempty"`
	Required        bool                 `json:"required"`
	OrderRank       int                  `gorm:"index" json:"order_rank"`
	CatalogueItemID *uuid.UUID           `gorm:"type:uuid" json:"catalogue_item_id,omitempty"`
	PricePerUnitMin *int64               `json:"price_per_unit_min,omitempty"`
	PricePerUnitMax *int64               `json:"price_per_unit_max,omitempty"`
	StepID          *uuid.UUID           `gorm:"type:uuid" json:"step_id,omitempty"`
	VisibilityRules *VisibilityRulesJSON `gorm:"type:jsonb" json:"visibility_rules,omitempty"`
}

func (ConfiguratorQuestion) TableName() string { return "configurator_questions" }

// ToDomain converts the row into the engine's read-only representation.
func (q *ConfiguratorQuestion) ToDomain() configurator.Question {
	out := configurator.Question{
		QuestionKey: q.QuestionKey,
		Label:       q.Label,
		Type:        configurator.QuestionType(q.Type),
		Options:     []configurator.QuestionOption(q.Options),
		Required:    q.Required,
	}
	if q.VisibilityRules != nil {
		cfg := configurator.VisibilityConfig(*q.VisibilityRules)
		out.VisibilityRules = &cfg
	}
	if q.PricePerUnitMin != nil {
		out.PricePerUnitMin = *q.PricePerUnitMin
	}
	if q.PricePerUnitMax != nil {
		out.PricePerUnitMax = *q.PricePerUnitMax
	}
	if q.CatalogueItemID != nil {
		out.CatalogueItemID = q.CatalogueItemID.String()
	}
	return out
}
