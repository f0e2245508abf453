package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/promoter-portal-api/internal/archive"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/storage/object"
)

// ArchiveHandler streams zip archives of an event's stored photos.
type ArchiveHandler struct {
	store    object.Store
	pageSize int
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(store object.Store, pageSize int) *ArchiveHandler {
	if pageSize <= 0 {
		pageSize = archive.DefaultPageSize
	}
	return &ArchiveHandler{store: store, pageSize: pageSize}
}

// Download handles GET /api/photos/zip?eventId=<id>. The archive is
// streamed, so once bytes are on the wire a failure can only cut the
// stream short; error statuses exist only before the first listing
// succeeds.
func (h *ArchiveHandler) Download(c *gin.Context) {
	log := logger.Archive()

	eventID := c.Query("eventId")
	if eventID == "" {
		c.String(http.StatusBadRequest, "eventId is required")
		return
	}

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.zip\"", eventID))

	result, err := archive.BuildEventArchive(c.Request.Context(), h.store, eventID, h.pageSize, c.Writer)
	if err != nil {
		log.Error("Archive build failed", "event_id", eventID, "error", err)
		c.String(http.StatusInternalServerError, "failed to build archive: %v", err)
		return
	}

	log.Info("Archive streamed", "event_id", eventID, "entries", result.Entries, "skipped", result.Skipped)
}
