package postgres

import (
	"github.com/google/uuid"

	"github.com/gravadigital/promoter-portal-api/internal/domain/curation"
	"github.com/gravadigital/promoter-portal-api/internal/domain/event"
	"github.com/gravadigital/promoter-portal-api/internal/domain/photo"
	"github.com/gravadigital/promoter-portal-api/internal/domain/reporting"
	"github.com/gravadigital/promoter-portal-api/internal/domain/user"
)

// FilterAll is the event filter value that leaves a listing unfiltered.
const FilterAll = "all"

// EventRepository defines the methods for interacting with events in the DB.
type EventRepository interface {
	Create(event *event.Event) error
	GetByID(id string) (*event.Event, error)
	GetAll() ([]*event.Event, error)
	Update(event *event.Event) error
	Delete(id string) error
}

// PhotoRepository defines the methods for interacting with photo metadata.
// Photo rows are created and deleted, never updated.
type PhotoRepository interface {
	Create(photo *photo.Photo) error
	GetByID(id string) (*photo.Photo, error)
	// GetRecent returns the most recent rows, newest first, capped at limit.
	// eventFilter is FilterAll or a concrete event id.
	GetRecent(eventFilter string, limit int) ([]*photo.Photo, error)
	// GetByIDs resolves rows restricted to the given id set.
	GetByIDs(ids []uuid.UUID) ([]*photo.Photo, error)
	Delete(id string) error
}

// ReportingRepository defines the methods for interacting with reportings.
type ReportingRepository interface {
	Create(reporting *reporting.Reporting) error
	GetByID(id string) (*reporting.Reporting, error)
	GetRecent(eventFilter string, limit int) ([]*reporting.Reporting, error)
	GetByIDs(ids []uuid.UUID) ([]*reporting.Reporting, error)
	UpdateAnswers(id string, answers map[string]any) error
	Delete(id string) error
}

// CurationRepository manages the customer-visible association tables.
type CurationRepository interface {
	// AcceptPhotos inserts association rows, skipping photo ids that are
	// already published. Returns the number of rows actually inserted.
	AcceptPhotos(rows []*curation.AcceptedPhoto) (int64, error)
	AcceptReportings(rows []*curation.AcceptedReporting) (int64, error)

	// GetPublishedEventIDs returns the distinct event ids that have at least
	// one accepted photo or reporting.
	GetPublishedEventIDs() ([]uuid.UUID, error)
	// GetAcceptedPhotos reads photos for an event through accepted_photos.
	GetAcceptedPhotos(eventID string) ([]*photo.Photo, error)
	// GetAcceptedReportings reads reportings through accepted_reportings.
	GetAcceptedReportings(eventID string) ([]*reporting.Reporting, error)
}

// UserRepository covers both admin accounts and the customer allow-list.
type UserRepository interface {
	CreateAdmin(admin *user.AdminUser) error
	GetAdminByEmail(email string) (*user.AdminUser, error)
	// GetCustomerByEmail matches case-insensitively.
	GetCustomerByEmail(email string) (*user.CustomerUser, error)
	// IsCustomerEmail reports whether the email is on the customer
	// allow-list, regardless of active state.
	IsCustomerEmail(email string) (bool, error)
}
