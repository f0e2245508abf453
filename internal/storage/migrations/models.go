package migrations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Migration models mirror the domain structs but carry the relation fields
// GORM needs to build the full schema in one place.

// Event is a promoter campaign
type Event struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CoverURL  *string   `json:"cover_url"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Photos     []Photo     `gorm:"foreignKey:EventID" json:"photos,omitempty"`
	Reportings []Reporting `gorm:"foreignKey:EventID" json:"reportings,omitempty"`
}

func (Event) TableName() string {
	return "events"
}

// Photo is the metadata row for an uploaded image
type Photo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	EventID     uuid.UUID `gorm:"type:uuid;not null" json:"event_id"`
	StoragePath string    `gorm:"not null" json:"storage_path"`
	Note        *string   `json:"note"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

func (Photo) TableName() string {
	return "photos"
}

// Reporting is a structured workday report
type Reporting struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	EventID   uuid.UUID         `gorm:"type:uuid;not null" json:"event_id"`
	Answers   datatypes.JSONMap `gorm:"type:jsonb;not null" json:"answers"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

func (Reporting) TableName() string {
	return "reportings"
}

// AcceptedPhoto publishes a photo to the customer dashboard
type AcceptedPhoto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	PhotoID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"photo_id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null" json:"event_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Photo Photo `gorm:"foreignKey:PhotoID" json:"photo,omitempty"`
	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

func (AcceptedPhoto) TableName() string {
	return "accepted_photos"
}

// AcceptedReporting publishes a reporting to the customer dashboard
type AcceptedReporting struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ReportingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"reporting_id"`
	EventID     uuid.UUID `gorm:"type:uuid;not null" json:"event_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Reporting Reporting `gorm:"foreignKey:ReportingID" json:"reporting,omitempty"`
	Event     Event     `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

func (AcceptedReporting) TableName() string {
	return "accepted_reportings"
}

// AdminUser can log into the admin surface
type AdminUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// CustomerUser is an allow-list entry for the customer dashboard
type CustomerUser struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CustomerUser) TableName() string {
	return "customer_users"
}

// AllModels returns a slice of all models for migration
func AllModels() []any {
	return []any{
		&Event{},
		&Photo{},
		&Reporting{},
		&AcceptedPhoto{},
		&AcceptedReporting{},
		&AdminUser{},
		&CustomerUser{},
	}
}
