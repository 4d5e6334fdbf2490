package db_models

import "github.com/google/uuid"

// ConfiguratorCategory groups questions, steps and pricing per product
// category. The legacy product_slug scoping on questions and pricing is
// still honored as a fallback.
type ConfiguratorCategory struct {
	BaseModel
	SiteID uuid.UUID `gorm:"type:uuid;index;not null" json:"site_id"`
	Slug   string    `gorm:"index;not null" json:"slug"`
	Name   string    `gorm:"not null" json:"name"`
}

func (ConfiguratorCategory) TableName() string { return "configurator_categories" }
