package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/promoter-portal-api/internal/domain/event"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/response"
	"github.com/gravadigital/promoter-portal-api/internal/storage/object"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
	"github.com/gravadigital/promoter-portal-api/internal/validation"
)

// CustomerHandler serves the customer dashboard. Everything here reads
// through the accepted_* tables; unpublished material never leaves the
// admin area.
type CustomerHandler struct {
	events    postgres.EventRepository
	curations postgres.CurationRepository
	store     object.Store
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(events postgres.EventRepository, curations postgres.CurationRepository, store object.Store) *CustomerHandler {
	return &CustomerHandler{
		events:    events,
		curations: curations,
		store:     store,
	}
}

// ListEvents handles GET /api/customer/events and returns only events
// with at least one published photo or reporting.
func (h *CustomerHandler) ListEvents(c *gin.Context) {
	log := logger.Handler("customer")

	ids, err := h.curations.GetPublishedEventIDs()
	if err != nil {
		log.Error("Failed to resolve published events", "error", err)
		response.InternalServerError(c, "failed to list events")
		return
	}

	events := make([]*event.Event, 0, len(ids))
	for _, id := range ids {
		e, err := h.events.GetByID(id.String())
		if err != nil {
			// The event vanished between the two reads; skip it.
			continue
		}
		events = append(events, e)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	response.SuccessResponse(c, http.StatusOK, "", events)
}

// ListPhotos handles GET /api/customer/events/:id/photos
func (h *CustomerHandler) ListPhotos(c *gin.Context) {
	log := logger.Handler("customer")

	id := c.Param("id")
	if err := validation.ValidateUUID(id, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	photos, err := h.curations.GetAcceptedPhotos(id)
	if err != nil {
		log.Error("Failed to list published photos", "event_id", id, "error", err)
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

// ListReportings handles GET /api/customer/events/:id/reportings
func (h *CustomerHandler) ListReportings(c *gin.Context) {
	log := logger.Handler("customer")

	id := c.Param("id")
	if err := validation.ValidateUUID(id, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	reportings, err := h.curations.GetAcceptedReportings(id)
	if err != nil {
		log.Error("Failed to list published reportings", "event_id", id, "error", err)
		response.InternalServerError(c, "failed to list reportings")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", reportings)
}
