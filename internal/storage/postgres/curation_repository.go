package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	curationDomain "github.com/gravadigital/promoter-portal-api/internal/domain/curation"
	photoDomain "github.com/gravadigital/promoter-portal-api/internal/domain/photo"
	reportingDomain "github.com/gravadigital/promoter-portal-api/internal/domain/reporting"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
)

// PostgresCurationRepository implements CurationRepository using GORM
type PostgresCurationRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresCurationRepository creates a new PostgreSQL curation repository
func NewPostgresCurationRepository(db *gorm.DB) *PostgresCurationRepository {
	return &PostgresCurationRepository{
		db:  db,
		log: logger.Repository("curation"),
	}
}

// AcceptPhotos inserts association rows. The unique index on photo_id plus
// ON CONFLICT DO NOTHING makes resubmission with overlapping selections
// idempotent instead of duplicating rows.
func (r *PostgresCurationRepository) AcceptPhotos(rows []*curationDomain.AcceptedPhoto) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "photo_id"}},
		DoNothing: true,
	}).Create(&rows)
	if result.Error != nil {
		r.log.Error("failed to accept photos", "count", len(rows), "error", result.Error)
		return 0, fmt.Errorf("failed to accept photos: %w", result.Error)
	}

	r.log.Info("photos accepted", "requested", len(rows), "inserted", result.RowsAffected)
	return result.RowsAffected, nil
}

// AcceptReportings mirrors AcceptPhotos for reportings.
func (r *PostgresCurationRepository) AcceptReportings(rows []*curationDomain.AcceptedReporting) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "reporting_id"}},
		DoNothing: true,
	}).Create(&rows)
	if result.Error != nil {
		r.log.Error("failed to accept reportings", "count", len(rows), "error", result.Error)
		return 0, fmt.Errorf("failed to accept reportings: %w", result.Error)
	}

	r.log.Info("reportings accepted", "requested", len(rows), "inserted", result.RowsAffected)
	return result.RowsAffected, nil
}

func (r *PostgresCurationRepository) GetPublishedEventIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID

	err := r.db.Raw(`
        SELECT DISTINCT event_id FROM accepted_photos
        UNION
        SELECT DISTINCT event_id FROM accepted_reportings
    `).Scan(&ids).Error
	if err != nil {
		r.log.Error("failed to retrieve published event ids", "error", err)
		return nil, fmt.Errorf("failed to retrieve published event ids: %w", err)
	}

	return ids, nil
}

// GetAcceptedPhotos reads photos through the association table only; that is
// the publish boundary between raw submissions and what customers see.
func (r *PostgresCurationRepository) GetAcceptedPhotos(eventID string) ([]*photoDomain.Photo, error) {
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format: %w", err)
	}

	var photos []*photoDomain.Photo
	err = r.db.
		Joins("JOIN accepted_photos ON accepted_photos.photo_id = photos.id").
		Where("accepted_photos.event_id = ?", eventUUID).
		Order("photos.created_at DESC").
		Find(&photos).Error
	if err != nil {
		r.log.Error("failed to retrieve accepted photos", "event_id", eventID, "error", err)
		return nil, fmt.Errorf("failed to retrieve accepted photos: %w", err)
	}

	return photos, nil
}

func (r *PostgresCurationRepository) GetAcceptedReportings(eventID string) ([]*reportingDomain.Reporting, error) {
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format: %w", err)
	}

	var reportings []*reportingDomain.Reporting
	err = r.db.
		Joins("JOIN accepted_reportings ON accepted_reportings.reporting_id = reportings.id").
		Where("accepted_reportings.event_id = ?", eventUUID).
		Order("reportings.created_at DESC").
		Find(&reportings).Error
	if err != nil {
		r.log.Error("failed to retrieve accepted reportings", "event_id", eventID, "error", err)
		return nil, fmt.Errorf("failed to retrieve accepted reportings: %w", err)
	}

	return reportings, nil
}
