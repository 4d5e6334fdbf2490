package db_models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteSubmission is a persisted quote request: the full answer map plus
// contact details and the price estimate at submission time. Estimates are
// stored rounded to whole cents.
type QuoteSubmission struct {
	BaseModel
	SiteID           uuid.UUID         `gorm:"type:uuid;index;not null" json:"site_id"`
	Configuration    ConfigurationJSON `gorm:"type:jsonb;not null" json:"configuration"`
	PriceEstimateMin *int64            `json:"price_estimate_min,omitempty"`
	PriceEstimateMax *int64            `json:"price_estimate_max,omitempty"`
	ContactName      string            `gorm:"not null" json:"contact_name"`
	ContactEmail     string            `gorm:"index;not null" json:"contact_email"`
	ContactPhone     *string           `json:"contact_phone,omitempty"`
	ContactAddress   *string           `json:"contact_address,omitempty"`
	AppointmentID    *int64            `json:"appointment_id,omitempty"`
	ReminderSentAt   *time.Time        `json:"reminder_sent_at,omitempty"`
}

func (QuoteSubmission) TableName() string { return "quote_submissions" }
