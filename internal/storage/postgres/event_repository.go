package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDomain "github.com/gravadigital/promoter-portal-api/internal/domain/event"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
)

// PostgresEventRepository implements EventRepository using GORM
type PostgresEventRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewPostgresEventRepository creates a new PostgreSQL event repository
func NewPostgresEventRepository(db *gorm.DB) *PostgresEventRepository {
	return &PostgresEventRepository{
		db:  db,
		log: logger.Repository("event"),
	}
}

func (r *PostgresEventRepository) Create(event *eventDomain.Event) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}

	if err := event.Validate(); err != nil {
		return err
	}

	if err := r.db.Create(event).Error; err != nil {
		r.log.Error("failed to create event", "error", err, "name", event.Name)
		return fmt.Errorf("failed to create event: %w", err)
	}

	r.log.Info("event created", "event_id", event.ID, "name", event.Name)
	return nil
}

func (r *PostgresEventRepository) GetByID(id string) (*eventDomain.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID format: %w", err)
	}

	var ev eventDomain.Event
	if err := r.db.First(&ev, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("event not found")
		}
		r.log.Error("failed to retrieve event", "event_id", id, "error", err)
		return nil, fmt.Errorf("failed to retrieve event: %w", err)
	}

	return &ev, nil
}

func (r *PostgresEventRepository) GetAll() ([]*eventDomain.Event, error) {
	var events []*eventDomain.Event
	if err := r.db.Order("created_at DESC").Find(&events).Error; err != nil {
		r.log.Error("failed to retrieve events", "error", err)
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}

	r.log.Debug("events retrieved", "count", len(events))
	return events, nil
}

func (r *PostgresEventRepository) Update(event *eventDomain.Event) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}

	if err := event.Validate(); err != nil {
		return err
	}

	var existing eventDomain.Event
	if err := r.db.First(&existing, event.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("event not found")
		}
		return fmt.Errorf("failed to check event existence: %w", err)
	}

	if err := r.db.Save(event).Error; err != nil {
		r.log.Error("failed to update event", "event_id", event.ID, "error", err)
		return fmt.Errorf("failed to update event: %w", err)
	}

	r.log.Info("event updated", "event_id", event.ID, "name", event.Name)
	return nil
}

func (r *PostgresEventRepository) Delete(id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid event ID format: %w", err)
	}

	// Dependent photos, reportings and accepted rows go with the event via
	// ON DELETE CASCADE foreign keys.
	result := r.db.Delete(&eventDomain.Event{}, eventID)
	if result.Error != nil {
		r.log.Error("failed to delete event", "event_id", id, "error", result.Error)
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("event not found")
	}

	r.log.Info("event deleted", "event_id", id)
	return nil
}
