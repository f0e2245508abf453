package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/promoter-portal-api/internal/domain/event"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/response"
	"github.com/gravadigital/promoter-portal-api/internal/services"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
	"github.com/gravadigital/promoter-portal-api/internal/validation"
)

// EventHandler handles event management endpoints.
type EventHandler struct {
	events  postgres.EventRepository
	uploads *services.UploadService
}

// NewEventHandler creates a new event handler
func NewEventHandler(events postgres.EventRepository, uploads *services.UploadService) *EventHandler {
	return &EventHandler{events: events, uploads: uploads}
}

// Create handles POST /api/events. The body is a multipart form with a
// name field and an optional cover image.
func (h *EventHandler) Create(c *gin.Context) {
	log := logger.Handler("event")

	name := strings.TrimSpace(c.PostForm("name"))
	if err := (validation.EventValidation{}).ValidateEventName(name); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	var coverURL *string
	if cover, err := c.FormFile("cover"); err == nil && cover != nil {
		url, err := h.uploads.UploadCover(c.Request.Context(), cover)
		if err != nil {
			log.Error("Cover upload failed", "error", err)
			response.InternalServerError(c, "failed to store cover image")
			return
		}
		coverURL = &url
	}

	e := event.NewEvent(name, coverURL)
	if err := h.events.Create(e); err != nil {
		log.Error("Failed to create event", "error", err)
		response.InternalServerError(c, "failed to create event")
		return
	}

	log.Info("Event created", "event_id", e.ID, "name", e.Name)
	response.SuccessResponse(c, http.StatusCreated, "Event created successfully", e)
}

// List handles GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.GetAll()
	if err != nil {
		logger.Handler("event").Error("Failed to list events", "error", err)
		response.InternalServerError(c, "failed to list events")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", events)
}

// Get handles GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if err := validation.ValidateUUID(id, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	e, err := h.events.GetByID(id)
	if err != nil {
		response.NotFoundError(c, "event not found")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", e)
}

// UpdateEventRequest is the body for PATCH /api/events/:id. Nil fields
// are left unchanged.
type UpdateEventRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

// Update handles PATCH /api/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	log := logger.Handler("event")

	id := c.Param("id")
	if err := validation.ValidateUUID(id, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	e, err := h.events.GetByID(id)
	if err != nil {
		response.NotFoundError(c, "event not found")
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "invalid request body")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := (validation.EventValidation{}).ValidateEventName(name); err != nil {
			response.BadRequestError(c, err.Error())
			return
		}
		e.Name = name
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := h.events.Update(e); err != nil {
		log.Error("Failed to update event", "event_id", id, "error", err)
		response.InternalServerError(c, "failed to update event")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Event updated successfully", e)
}

// UpdateCover handles PUT /api/events/:id/cover with a multipart form.
func (h *EventHandler) UpdateCover(c *gin.Context) {
	log := logger.Handler("event")

	id := c.Param("id")
	if err := validation.ValidateUUID(id, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	e, err := h.events.GetByID(id)
	if err != nil {
		response.NotFoundError(c, "event not found")
		return
	}

	cover, err := c.FormFile("cover")
	if err != nil {
		response.BadRequestError(c, "cover file is required")
		return
	}

	url, err := h.uploads.UploadCover(c.Request.Context(), cover)
	if err != nil {
		log.Error("Cover upload failed", "event_id", id, "error", err)
		response.InternalServerError(c, "failed to store cover image")
		return
	}

	e.CoverURL = &url
	if err := h.events.Update(e); err != nil {
		log.Error("Failed to update event", "event_id", id, "error", err)
		response.InternalServerError(c, "failed to update event")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Cover updated successfully", e)
}

// Delete handles DELETE /api/events/:id. Photos, reportings and accepted
// rows go with the event through the cascade.
func (h *EventHandler) Delete(c *gin.Context) {
	log := logger.Handler("event")

	id := c.Param("id")
	if err := validation.ValidateUUID(id, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if err := h.events.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.NotFoundError(c, "event not found")
			return
		}
		log.Error("Failed to delete event", "event_id", id, "error", err)
		response.InternalServerError(c, "failed to delete event")
		return
	}

	log.Info("Event deleted", "event_id", id)
	response.SuccessResponse(c, http.StatusOK, "Event deleted successfully", nil)
}
