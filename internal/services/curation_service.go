package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gravadigital/promoter-portal-api/internal/domain/curation"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
)

// CurationResult summarizes one publish call. Counts reflect rows
// actually inserted; previously accepted items are counted as skipped.
type CurationResult struct {
	PhotosAccepted     int64    `json:"photos_accepted"`
	PhotosSkipped      int64    `json:"photos_skipped"`
	ReportingsAccepted int64    `json:"reportings_accepted"`
	ReportingsSkipped  int64    `json:"reportings_skipped"`
	UnresolvedIDs      []string `json:"unresolved_ids,omitempty"`
}

// CurationService publishes selected photos and reportings to the
// customer dashboard.
type CurationService struct {
	photos     postgres.PhotoRepository
	reportings postgres.ReportingRepository
	curations  postgres.CurationRepository
}

// NewCurationService creates a new curation service
func NewCurationService(photos postgres.PhotoRepository, reportings postgres.ReportingRepository, curations postgres.CurationRepository) *CurationService {
	return &CurationService{
		photos:     photos,
		reportings: reportings,
		curations:  curations,
	}
}

// Accept publishes the given photo and reporting IDs. The event each
// item belongs to is read from the stored row, never from the caller.
// IDs that resolve to nothing are reported back, not treated as errors.
// Re-accepting an already published item is a no-op.
func (s *CurationService) Accept(photoIDs, reportingIDs []string) (*CurationResult, error) {
	log := logger.Service("curation")
	result := &CurationResult{}

	photoUUIDs, badPhotoIDs := parseIDs(photoIDs)
	reportingUUIDs, badReportingIDs := parseIDs(reportingIDs)
	result.UnresolvedIDs = append(result.UnresolvedIDs, badPhotoIDs...)
	result.UnresolvedIDs = append(result.UnresolvedIDs, badReportingIDs...)

	if len(photoUUIDs) > 0 {
		photos, err := s.photos.GetByIDs(photoUUIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve photos: %w", err)
		}

		found := make(map[uuid.UUID]bool, len(photos))
		rows := make([]*curation.AcceptedPhoto, 0, len(photos))
		for _, p := range photos {
			found[p.ID] = true
			rows = append(rows, &curation.AcceptedPhoto{
				PhotoID: p.ID,
				EventID: p.EventID,
			})
		}
		for _, id := range photoUUIDs {
			if !found[id] {
				result.UnresolvedIDs = append(result.UnresolvedIDs, id.String())
			}
		}

		if len(rows) > 0 {
			inserted, err := s.curations.AcceptPhotos(rows)
			if err != nil {
				return nil, fmt.Errorf("failed to accept photos: %w", err)
			}
			result.PhotosAccepted = inserted
			result.PhotosSkipped = int64(len(rows)) - inserted
		}
	}

	if len(reportingUUIDs) > 0 {
		reportings, err := s.reportings.GetByIDs(reportingUUIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve reportings: %w", err)
		}

		found := make(map[uuid.UUID]bool, len(reportings))
		rows := make([]*curation.AcceptedReporting, 0, len(reportings))
		for _, r := range reportings {
			found[r.ID] = true
			rows = append(rows, &curation.AcceptedReporting{
				ReportingID: r.ID,
				EventID:     r.EventID,
			})
		}
		for _, id := range reportingUUIDs {
			if !found[id] {
				result.UnresolvedIDs = append(result.UnresolvedIDs, id.String())
			}
		}

		if len(rows) > 0 {
			inserted, err := s.curations.AcceptReportings(rows)
			if err != nil {
				return nil, fmt.Errorf("failed to accept reportings: %w", err)
			}
			result.ReportingsAccepted = inserted
			result.ReportingsSkipped = int64(len(rows)) - inserted
		}
	}

	log.Info("Curation applied",
		"photos_accepted", result.PhotosAccepted,
		"reportings_accepted", result.ReportingsAccepted,
		"unresolved", len(result.UnresolvedIDs))

	return result, nil
}

// parseIDs splits raw strings into valid UUIDs and rejects, deduplicating
// the valid ones.
func parseIDs(raw []string) ([]uuid.UUID, []string) {
	seen := make(map[uuid.UUID]bool, len(raw))
	valid := make([]uuid.UUID, 0, len(raw))
	var invalid []string

	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			invalid = append(invalid, s)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		valid = append(valid, id)
	}

	return valid, invalid
}
