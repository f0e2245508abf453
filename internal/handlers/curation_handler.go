package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/response"
	"github.com/gravadigital/promoter-portal-api/internal/services"
)

// CurationHandler handles admin publishing of photos and reportings.
type CurationHandler struct {
	curation *services.CurationService
}

// NewCurationHandler creates a new curation handler
func NewCurationHandler(curation *services.CurationService) *CurationHandler {
	return &CurationHandler{curation: curation}
}

// CurationRequest is the body for POST /api/curation.
type CurationRequest struct {
	PhotoIDs     []string `json:"photo_ids"`
	ReportingIDs []string `json:"reporting_ids"`
}

// Accept handles POST /api/curation
func (h *CurationHandler) Accept(c *gin.Context) {
	log := logger.Handler("curation")

	var req CurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "invalid request body")
		return
	}

	if len(req.PhotoIDs) == 0 && len(req.ReportingIDs) == 0 {
		response.BadRequestError(c, "at least one photo or reporting id is required")
		return
	}

	result, err := h.curation.Accept(req.PhotoIDs, req.ReportingIDs)
	if err != nil {
		log.Error("Curation failed", "error", err)
		response.InternalServerError(c, "failed to apply curation")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Curation applied", result)
}
