package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_reporting_system/internal/models"
)

var validationMessages = map[models.ValidationOutcome]string{
	models.ValidationCreated: "Incident validated successfully",
	models.ValidationUpdated: "Validation updated successfully",
}

// @Summary Validate an incident
// @Description Record the caller's vote. A repeated vote replaces the previous type.
// @Tags Validations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param vote body ValidateIncidentRequest false "Vote type, confirm by default"
// @Success 200 {object} ValidateIncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid validation type"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /incidents/{id}/validate [post]
func (h *Handler) validateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "validateIncident").WithField("id", id)

	var input ValidateIncidentRequest
	if !h.bindOptionalJSON(c, log, &input) {
		return
	}

	user := currentUser(c)
	outcome, err := h.validationService.Validate(c.Request.Context(), id, user.ID, models.ValidationType(input.ValidationType))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ValidateIncidentResponse{Message: validationMessages[outcome], Outcome: string(outcome)})
}

// @Summary Validation statistics
// @Description Vote counts per type. With a valid token the caller's own vote is included.
// @Tags Validations
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} ValidationStatsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/validations [get]
func (h *Handler) incidentValidations(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "incidentValidations").WithField("id", id)

	var callerID *string
	if user := currentUser(c); user != nil {
		callerID = &user.ID
	}

	stats, err := h.validationService.Stats(c.Request.Context(), id, callerID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Remove validation
// @Description Remove the caller's vote. Removing a missing vote returns 404.
// @Tags Validations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 404 {object} ErrorResponse "Validation not found"
// @Router /incidents/{id}/validate [delete]
func (h *Handler) removeValidation(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "removeValidation").WithField("id", id)

	if err := h.validationService.Remove(c.Request.Context(), id, currentUser(c).ID); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Validation removed successfully"})
}
