package db_models

import "github.com/google/uuid"

// ConfiguratorStep partitions a category's questions into wizard pages.
type ConfiguratorStep struct {
	BaseModel
	SiteID      uuid.UUID `gorm:"type:uuid;index;not null" json:"site_id"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null" json:"category_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description,omitempty"`
	OrderRank   int       `gorm:"index" json:"order_rank"`
}

func (ConfiguratorStep) TableName() string { return "configurator_steps" }
