package curation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcceptedPhoto publishes a photo to the customer dashboard. The existence of
// the row is the sole publish signal; EventID is always re-derived from the
// source photo, never taken from the caller.
type AcceptedPhoto struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PhotoID   uuid.UUID `json:"photo_id" gorm:"type:uuid;not null;uniqueIndex"`
	EventID   uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (AcceptedPhoto) TableName() string {
	return "accepted_photos"
}

// BeforeCreate sets a UUID before creating the record
func (a *AcceptedPhoto) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// AcceptedReporting publishes a reporting to the customer dashboard.
type AcceptedReporting struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ReportingID uuid.UUID `json:"reporting_id" gorm:"type:uuid;not null;uniqueIndex"`
	EventID     uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (AcceptedReporting) TableName() string {
	return "accepted_reportings"
}

// BeforeCreate sets a UUID before creating the record
func (a *AcceptedReporting) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
