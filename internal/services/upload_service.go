package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gravadigital/promoter-portal-api/internal/domain/photo"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/storage/object"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
)

// UploadResult reports the outcome for a single file. A batch is never
// all-or-nothing: files that succeed stay stored even when siblings fail.
type UploadResult struct {
	Filename string `json:"filename"`
	PhotoID  string `json:"photo_id,omitempty"`
	URL      string `json:"url,omitempty"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// UploadService stores photo files and their database rows.
type UploadService struct {
	store       object.Store
	photos      postgres.PhotoRepository
	events      postgres.EventRepository
	maxFileSize int64
}

// NewUploadService creates a new upload service
func NewUploadService(store object.Store, photos postgres.PhotoRepository, events postgres.EventRepository, maxFileSize int64) *UploadService {
	return &UploadService{
		store:       store,
		photos:      photos,
		events:      events,
		maxFileSize: maxFileSize,
	}
}

// UploadPhotos stores each file under the event's prefix and records a
// photo row for it. Per-file failures are reported in the result list
// and do not stop the batch.
func (s *UploadService) UploadPhotos(ctx context.Context, eventID string, files []*multipart.FileHeader) ([]UploadResult, error) {
	log := logger.Storage()

	if _, err := s.events.GetByID(eventID); err != nil {
		return nil, fmt.Errorf("event not found: %w", err)
	}

	results := make([]UploadResult, 0, len(files))
	for _, header := range files {
		result := s.uploadOne(ctx, eventID, header)
		if !result.Success {
			log.Warn("Photo upload failed", "event_id", eventID, "filename", header.Filename, "error", result.Error)
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *UploadService) uploadOne(ctx context.Context, eventID string, header *multipart.FileHeader) UploadResult {
	result := UploadResult{Filename: header.Filename}

	if s.maxFileSize > 0 && header.Size > s.maxFileSize {
		result.Error = fmt.Sprintf("file exceeds maximum size of %d bytes", s.maxFileSize)
		return result
	}

	file, err := header.Open()
	if err != nil {
		result.Error = "failed to open file"
		return result
	}
	defer file.Close()

	key := fmt.Sprintf("%s/%s-%s", eventID, uuid.New().String(), sanitizeFilename(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.store.Put(ctx, key, file, header.Size, contentType); err != nil {
		result.Error = "failed to store file"
		return result
	}

	record := photo.NewPhoto(uuid.MustParse(eventID), key)
	if err := s.photos.Create(record); err != nil {
		// The object is already stored; drop it so no orphan remains.
		if removeErr := s.store.Remove(ctx, key); removeErr != nil {
			logger.Storage().Error("Failed to remove orphaned object", "key", key, "error", removeErr)
		}
		result.Error = "failed to record photo"
		return result
	}

	result.PhotoID = record.ID.String()
	result.URL = s.store.PublicURL(key)
	result.Success = true
	return result
}

// UploadCover stores an event cover image under the covers/ prefix and
// returns its public URL.
func (s *UploadService) UploadCover(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if s.maxFileSize > 0 && header.Size > s.maxFileSize {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.maxFileSize)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	key := fmt.Sprintf("covers/%s-%s", uuid.New().String(), sanitizeFilename(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.store.Put(ctx, key, file, header.Size, contentType); err != nil {
		return "", fmt.Errorf("failed to store cover: %w", err)
	}

	return s.store.PublicURL(key), nil
}

// DeletePhoto removes the stored object and its database row. A missing
// object is not fatal; the row is removed regardless.
func (s *UploadService) DeletePhoto(ctx context.Context, photoID string) error {
	record, err := s.photos.GetByID(photoID)
	if err != nil {
		return err
	}

	if err := s.store.Remove(ctx, record.StoragePath); err != nil {
		logger.Storage().Warn("Failed to remove stored object", "key", record.StoragePath, "error", err)
	}

	return s.photos.Delete(photoID)
}

// sanitizeFilename keeps only the base name and strips path separators
// so a client-supplied name cannot escape the event prefix.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "file"
	}
	return base
}
