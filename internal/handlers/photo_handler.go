package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/response"
	"github.com/gravadigital/promoter-portal-api/internal/services"
	"github.com/gravadigital/promoter-portal-api/internal/storage/object"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
	"github.com/gravadigital/promoter-portal-api/internal/validation"
)

// PhotoHandler handles photo upload and listing endpoints.
type PhotoHandler struct {
	photos   postgres.PhotoRepository
	uploads  *services.UploadService
	store    object.Store
	photoCap int
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photos postgres.PhotoRepository, uploads *services.UploadService, store object.Store, photoCap int) *PhotoHandler {
	return &PhotoHandler{
		photos:   photos,
		uploads:  uploads,
		store:    store,
		photoCap: photoCap,
	}
}

// PhotoView is a photo row with its resolved public URL.
type PhotoView struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	URL       string `json:"url"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Upload handles POST /api/events/:id/photos. The multipart form
// carries one or more files under "photos". Results are reported per
// file.
func (h *PhotoHandler) Upload(c *gin.Context) {
	log := logger.Handler("photo")

	eventID := c.Param("id")
	if err := validation.ValidateUUID(eventID, "eventId"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequestError(c, "multipart form is required")
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		response.BadRequestError(c, "at least one photo is required")
		return
	}

	results, err := h.uploads.UploadPhotos(c.Request.Context(), eventID, files)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.NotFoundError(c, "event not found")
			return
		}
		log.Error("Upload failed", "event_id", eventID, "error", err)
		response.InternalServerError(c, "upload failed")
		return
	}

	status := http.StatusCreated
	for _, r := range results {
		if !r.Success {
			status = http.StatusMultiStatus
			break
		}
	}

	response.SuccessResponse(c, status, "Upload processed", results)
}

// List handles GET /api/photos?event=<id|all>
func (h *PhotoHandler) List(c *gin.Context) {
	eventFilter := c.DefaultQuery("event", postgres.FilterAll)
	if eventFilter != postgres.FilterAll {
		if err := validation.ValidateUUID(eventFilter, "event"); err != nil {
			response.BadRequestError(c, err.Error())
			return
		}
	}

	photos, err := h.photos.GetRecent(eventFilter, h.photoCap)
	if err != nil {
		logger.Handler("photo").Error("Failed to list photos", "error", err)
		response.InternalServerError(c, "failed to list photos")
		return
	}

	views := make([]PhotoView, 0, len(photos))
	for _, p := range photos {
		view := PhotoView{
			ID:        p.ID.String(),
			EventID:   p.EventID.String(),
			URL:       h.store.PublicURL(p.StoragePath),
			CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if p.Note != nil {
			view.Note = *p.Note
		}
		views = append(views, view)
	}

	response.SuccessResponse(c, http.StatusOK, "", views)
}

// Delete handles DELETE /api/photos/:id
func (h *PhotoHandler) Delete(c *gin.Context) {
	log := logger.Handler("photo")

	id := c.Param("id")
	if err := validation.ValidateUUID(id, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if err := h.uploads.DeletePhoto(c.Request.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.NotFoundError(c, "photo not found")
			return
		}
		log.Error("Failed to delete photo", "photo_id", id, "error", err)
		response.InternalServerError(c, "failed to delete photo")
		return
	}

	log.Info("Photo deleted", "photo_id", id)
	response.SuccessResponse(c, http.StatusOK, "Photo deleted successfully", nil)
}
