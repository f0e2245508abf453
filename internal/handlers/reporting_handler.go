package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gravadigital/promoter-portal-api/internal/domain/reporting"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/response"
	"github.com/gravadigital/promoter-portal-api/internal/services"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
	"github.com/gravadigital/promoter-portal-api/internal/validation"
)

// ReportingHandler handles workday report endpoints.
type ReportingHandler struct {
	reportings   postgres.ReportingRepository
	events       postgres.EventRepository
	exports      *services.ExportService
	reportingCap int
}

// NewReportingHandler creates a new reporting handler
func NewReportingHandler(reportings postgres.ReportingRepository, events postgres.EventRepository, exports *services.ExportService, reportingCap int) *ReportingHandler {
	return &ReportingHandler{
		reportings:   reportings,
		events:       events,
		exports:      exports,
		reportingCap: reportingCap,
	}
}

// CreateReportingRequest is the body for POST /api/events/:id/reportings.
type CreateReportingRequest struct {
	Answers map[string]any `json:"answers" binding:"required"`
}

// Create handles POST /api/events/:id/reportings
func (h *ReportingHandler) Create(c *gin.Context) {
	log := logger.Handler("reporting")

	eventID := c.Param("id")
	if err := validation.ValidateUUID(eventID, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	var req CreateReportingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "answers are required")
		return
	}

	if _, err := h.events.GetByID(eventID); err != nil {
		response.NotFoundError(c, "event not found")
		return
	}

	if err := (validation.ReportingValidation{}).ValidateAnswers(req.Answers); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	r := reporting.NewReporting(uuid.MustParse(eventID), req.Answers)
	if err := h.reportings.Create(r); err != nil {
		log.Error("Failed to create reporting", "event_id", eventID, "error", err)
		response.InternalServerError(c, "failed to create reporting")
		return
	}

	log.Info("Reporting created", "reporting_id", r.ID, "event_id", eventID)
	response.SuccessResponse(c, http.StatusCreated, "Reporting created successfully", r)
}

// ReportingView is a reporting row with its event name resolved for the
// admin list.
type ReportingView struct {
	*reporting.Reporting
	EventName string `json:"event_name"`
}

// List handles GET /api/reportings?event=<id|all>
func (h *ReportingHandler) List(c *gin.Context) {
	log := logger.Handler("reporting")

	eventFilter := c.DefaultQuery("event", postgres.FilterAll)
	if eventFilter != postgres.FilterAll {
		if err := validation.ValidateUUID(eventFilter, "event"); err != nil {
			response.BadRequestError(c, err.Error())
			return
		}
	}

	reportings, err := h.reportings.GetRecent(eventFilter, h.reportingCap)
	if err != nil {
		log.Error("Failed to list reportings", "error", err)
		response.InternalServerError(c, "failed to list reportings")
		return
	}

	events, err := h.events.GetAll()
	if err != nil {
		log.Error("Failed to resolve event names", "error", err)
		response.InternalServerError(c, "failed to list reportings")
		return
	}
	names := make(map[uuid.UUID]string, len(events))
	for _, e := range events {
		names[e.ID] = e.Name
	}

	views := make([]ReportingView, 0, len(reportings))
	for _, r := range reportings {
		views = append(views, ReportingView{
			Reporting: r,
			EventName: names[r.EventID],
		})
	}

	response.SuccessResponse(c, http.StatusOK, "", views)
}

// UpdateReportingRequest is the body for PATCH /api/reportings/:id.
type UpdateReportingRequest struct {
	Answers map[string]any `json:"answers" binding:"required"`
}

// Update handles PATCH /api/reportings/:id. The answer record is
// replaced as a whole; partial key merges are a client concern.
func (h *ReportingHandler) Update(c *gin.Context) {
	log := logger.Handler("reporting")

	id := c.Param("id")
	if err := validation.ValidateUUID(id, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	var req UpdateReportingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "answers are required")
		return
	}

	if err := (validation.ReportingValidation{}).ValidateAnswers(req.Answers); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if err := h.reportings.UpdateAnswers(id, req.Answers); err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.NotFoundError(c, "reporting not found")
			return
		}
		log.Error("Failed to update reporting", "reporting_id", id, "error", err)
		response.InternalServerError(c, "failed to update reporting")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Reporting updated successfully", nil)
}

// Delete handles DELETE /api/reportings/:id
func (h *ReportingHandler) Delete(c *gin.Context) {
	log := logger.Handler("reporting")

	id := c.Param("id")
	if err := validation.ValidateUUID(id, "id"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	if err := h.reportings.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			response.NotFoundError(c, "reporting not found")
			return
		}
		log.Error("Failed to delete reporting", "reporting_id", id, "error", err)
		response.InternalServerError(c, "failed to delete reporting")
		return
	}

	log.Info("Reporting deleted", "reporting_id", id)
	response.SuccessResponse(c, http.StatusOK, "Reporting deleted successfully", nil)
}

// Export handles GET /api/reportings/export?event=<id|all> and streams
// an xlsx workbook.
func (h *ReportingHandler) Export(c *gin.Context) {
	log := logger.Handler("reporting")

	eventFilter := c.DefaultQuery("event", postgres.FilterAll)
	if eventFilter != postgres.FilterAll {
		if err := validation.ValidateUUID(eventFilter, "event"); err != nil {
			response.BadRequestError(c, err.Error())
			return
		}
	}

	if eventFilter != postgres.FilterAll {
		if _, err := h.events.GetByID(eventFilter); err != nil {
			response.NotFoundError(c, "event not found")
			return
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"reportings-%s.xlsx\"", eventFilter))

	if err := h.exports.WriteReportingsXLSX(eventFilter, c.Writer); err != nil {
		log.Error("Export failed", "event", eventFilter, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
}
