package photo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Photo is the metadata row for an uploaded image. The binary lives in the
// object store at StoragePath; rows are never mutated, only deleted.
type Photo struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID     uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index"`
	StoragePath string    `json:"storage_path" gorm:"not null"`
	Note        *string   `json:"note"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by GORM
func (Photo) TableName() string {
	return "photos"
}

// BeforeCreate sets a UUID before creating the record
func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// NewPhoto creates a photo row for an object already stored at storagePath
func NewPhoto(eventID uuid.UUID, storagePath string) *Photo {
	return &Photo{
		ID:          uuid.New(),
		EventID:     eventID,
		StoragePath: storagePath,
	}
}
