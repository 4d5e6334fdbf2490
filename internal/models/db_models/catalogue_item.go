package db_models

import (
	"github.com/google/uuid"

	"vpgquote/internal/configurator"
)

// PriceCatalogueItem is shared priced reference data options can link to.
// Unit decides scaling: "per m" by inferred length, "per m²" by inferred
// area, "per stuk" or null flat.
type PriceCatalogueItem struct {
	BaseModel
	SiteID   uuid.UUID `gorm:"type:uuid;index;not null" json:"site_id"`
	Name     string    `gorm:"not null" json:"name"`
	Category string    `gorm:"index" json:"category"`
	Image    *string   `json:"image,omitempty"`
	PriceMin int64     `gorm:"not null" json:"price_min"`
	PriceMax int64     `gorm:"not null" json:"price_max"`
	Unit     *string   `json:"unit,omitempty"`
}

func (PriceCatalogueItem) TableName() string { return "price_catalogue_items" }

func (i *PriceCatalogueItem) ToDomain() configurator.CatalogueItem {
	out := configurator.CatalogueItem{
		ID:       i.ID.String(),
		PriceMin: i.PriceMin,
		PriceMax: i.PriceMax,
	}
	if i.Unit != nil {
		out.Unit = *i.Unit
	}
	return out
}
