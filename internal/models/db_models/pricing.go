package db_models

import (
	"github.com/google/uuid"

	"vpgquote/internal/configurator"
)

// ConfiguratorPricing holds the base price range for a category (or legacy
// product slug). One definition per category per site.
type ConfiguratorPricing struct {
	BaseModel
	SiteID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"site_id"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	// Deprecated: see ConfiguratorQuestion.ProductSlug.
	ProductSlug  *string `gorm:"index" json:"product_slug,omitempty"`
	BasePriceMin int64   `gorm:"not null" json:"base_price_min"`
	BasePriceMax int64   `gorm:"not null" json:"base_price_max"`
	// Deprecated: option-level pricing replaces this list.
	PriceModifiers PriceModifierList `gorm:"type:jsonb" json:"price_modifiers,omitempty"`
}

func (ConfiguratorPricing) TableName() string { return "configurator_pricing" }

func (p *ConfiguratorPricing) ToDomain() configurator.Pricing {
	return configurator.Pricing{
		BasePriceMin:   p.BasePriceMin,
		BasePriceMax:   p.BasePriceMax,
		PriceModifiers: []configurator.PriceModifier(p.PriceModifiers),
	}
}
