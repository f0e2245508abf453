package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	photoDomain "github.com/gravadigital/promoter-portal-api/internal/domain/photo"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
)

// PostgresPhotoRepository implements PhotoRepository using GORM
type PostgresPhotoRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresPhotoRepository creates a new PostgreSQL photo repository
func NewPostgresPhotoRepository(db *gorm.DB) *PostgresPhotoRepository {
	return &PostgresPhotoRepository{
		db:  db,
		log: logger.Repository("photo"),
	}
}

func (r *PostgresPhotoRepository) Create(photo *photoDomain.Photo) error {
	if photo == nil {
		return fmt.Errorf("photo cannot be nil")
	}

	if photo.StoragePath == "" {
		return fmt.Errorf("photo storage path cannot be empty")
	}

	if photo.EventID == uuid.Nil {
		return fmt.Errorf("photo event ID cannot be empty")
	}

	if err := r.db.Create(photo).Error; err != nil {
		r.log.Error("failed to create photo", "error", err, "storage_path", photo.StoragePath)
		return fmt.Errorf("failed to create photo: %w", err)
	}

	r.log.Debug("photo created", "photo_id", photo.ID, "event_id", photo.EventID)
	return nil
}

func (r *PostgresPhotoRepository) GetByID(id string) (*photoDomain.Photo, error) {
	photoID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid photo ID format: %w", err)
	}

	var p photoDomain.Photo
	if err := r.db.First(&p, photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("photo not found")
		}
		r.log.Error("failed to retrieve photo", "photo_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve photo: %w", err)
	}

	return &p, nil
}

// GetRecent returns the newest rows first, capped at limit. Anything older
// than the cap simply never loads; that truncation is a known limitation of
// the list views.
func (r *PostgresPhotoRepository) GetRecent(eventFilter string, limit int) ([]*photoDomain.Photo, error) {
	query := r.db.Order("created_at DESC").Limit(limit)

	if eventFilter != FilterAll {
		eventID, err := uuid.Parse(eventFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid event ID format: %w", err)
		}
		query = query.Where("event_id = ?", eventID)
	}

	var photos []*photoDomain.Photo
	if err := query.Find(&photos).Error; err != nil {
		r.log.Error("failed to retrieve photos", "event_filter", eventFilter, "error", err)
		return nil, fmt.Errorf("failed to retrieve photos: %w", err)
	}

	r.log.Debug("photos retrieved", "event_filter", eventFilter, "count", len(photos))
	return photos, nil
}

func (r *PostgresPhotoRepository) GetByIDs(ids []uuid.UUID) ([]*photoDomain.Photo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var photos []*photoDomain.Photo
	if err := r.db.Where("id IN ?", ids).Find(&photos).Error; err != nil {
		r.log.Error("failed to retrieve photos by ids", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to retrieve photos by ids: %w", err)
	}

	return photos, nil
}

func (r *PostgresPhotoRepository) Delete(id string) error {
	photoID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid photo ID format: %w", err)
	}

	result := r.db.Delete(&photoDomain.Photo{}, photoID)
	if result.Error != nil {
		r.log.Error("failed to delete photo", "photo_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete photo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("photo not found")
	}

	r.log.Info("photo deleted", "photo_id", id)
	return nil
}
