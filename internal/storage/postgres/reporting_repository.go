package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	reportingDomain "github.com/gravadigital/promoter-portal-api/internal/domain/reporting"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
)

// PostgresReportingRepository implements ReportingRepository using GORM
type PostgresReportingRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresReportingRepository creates a new PostgreSQL reporting repository
func NewPostgresReportingRepository(db *gorm.DB) *PostgresReportingRepository {
	return &PostgresReportingRepository{
		db:  db,
		log: logger.Repository("reporting"),
	}
}

func (r *PostgresReportingRepository) Create(rep *reportingDomain.Reporting) error {
	if rep == nil {
		return fmt.Errorf("reporting cannot be nil")
	}

	if rep.EventID == uuid.Nil {
		return fmt.Errorf("reporting event ID cannot be empty")
	}

	if err := r.db.Create(rep).Error; err != nil {
		r.log.Error("failed to create reporting", "error", err, "event_id", rep.EventID)
		return fmt.Errorf("failed to create reporting: %w", err)
	}

	r.log.Debug("reporting created", "reporting_id", rep.ID, "event_id", rep.EventID)
	return nil
}

func (r *PostgresReportingRepository) GetByID(id string) (*reportingDomain.Reporting, error) {
	reportingID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid reporting ID format: %w", err)
	}

	var rep reportingDomain.Reporting
	if err := r.db.First(&rep, reportingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("reporting not found")
		}
		r.log.Error("failed to retrieve reporting", "reporting_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve reporting: %w", err)
	}

	return &rep, nil
}

func (r *PostgresReportingRepository) GetRecent(eventFilter string, limit int) ([]*reportingDomain.Reporting, error) {
	query := r.db.Order("created_at DESC").Limit(limit)

	if eventFilter != FilterAll {
		eventID, err := uuid.Parse(eventFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid event ID format: %w", err)
		}
		query = query.Where("event_id = ?", eventID)
	}

	var reportings []*reportingDomain.Reporting
	if err := query.Find(&reportings).Error; err != nil {
		r.log.Error("failed to retrieve reportings", "event_filter", eventFilter, "error", err)
		return nil, fmt.Errorf("failed to retrieve reportings: %w", err)
	}

	r.log.Debug("reportings retrieved", "event_filter", eventFilter, "count", len(reportings))
	return reportings, nil
}

func (r *PostgresReportingRepository) GetByIDs(ids []uuid.UUID) ([]*reportingDomain.Reporting, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var reportings []*reportingDomain.Reporting
	if err := r.db.Where("id IN ?", ids).Find(&reportings).Error; err != nil {
		r.log.Error("failed to retrieve reportings by ids", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to retrieve reportings by ids: %w", err)
	}

	return reportings, nil
}

func (r *PostgresReportingRepository) UpdateAnswers(id string, answers map[string]any) error {
	reportingID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid reporting ID format: %w", err)
	}

	result := r.db.Model(&reportingDomain.Reporting{}).
		Where("id = ?", reportingID).
		Update("answers", datatypes.JSONMap(answers))
	if result.Error != nil {
		r.log.Error("failed to update reporting answers", "reporting_id", id, "error", result.Error)
		return fmt.Errorf("failed to update reporting answers: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("reporting not found")
	}

	r.log.Info("reporting answers updated", "reporting_id", id)
	return nil
}

func (r *PostgresReportingRepository) Delete(id string) error {
	reportingID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid reporting ID format: %w", err)
	}

	result := r.db.Delete(&reportingDomain.Reporting{}, reportingID)
	if result.Error != nil {
		r.log.Error("failed to delete reporting", "reporting_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete reporting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("reporting not found")
	}

	r.log.Info("reporting deleted", "reporting_id", id)
	return nil
}
