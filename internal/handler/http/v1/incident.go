package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_reporting_system/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// @Summary Submit an incident report
// @Description Accepts payloads from both the legacy and the current mobile client. Resubmitting an existing id returns the stored record with 200.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body SubmitIncidentRequest true "Incident report"
// @Success 201 {object} IncidentResponse
// @Success 200 {object} IncidentResponse "Already submitted"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "Missing incident type, location or description"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) submitIncident(c *gin.Context) {
	var input SubmitIncidentRequest
	log := h.logger.WithField("method", "submitIncident")

	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, created, err := h.incidentService.Submit(c.Request.Context(), DTOToSubmission(input))
	if err != nil {
		respondError(c, log, err, statusOverride{kind: models.ErrValidation, status: http.StatusUnprocessableEntity})
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	c.JSON(status, ModelToIncidentResponse(incident))
}

// @Summary List recent incidents
// @Description Latest incidents for the public feed, without moderation notes
// @Tags Incidents
// @Produce json
// @Success 200 {object} map[string][]IncidentResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListPublic(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"incidents": ModelsToIncidentResponses(incidents)})
}

// adminFilter собирает фильтр из параметров status и q
func adminFilter(c *gin.Context) models.IncidentFilter {
	filter := models.IncidentFilter{Query: strings.TrimSpace(c.Query("q"))}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		s := models.IncidentStatus(status)
		filter.Status = &s
	}
	return filter
}

// @Summary List incidents for moderation
// @Description Filter by status and search type, description or reporter phone
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(new, in-progress, resolved)
// @Param q query string false "Search string"
// @Success 200 {object} map[string][]AdminIncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Router /admin/incidents [get]
func (h *Handler) adminListIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "adminListIncidents")

	incidents, err := h.incidentService.AdminList(c.Request.Context(), adminFilter(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"incidents": ModelsToAdminIncidentResponses(incidents)})
}

// @Summary Export incidents
// @Description Download the filtered moderation list as an XLSX workbook
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(new, in-progress, resolved)
// @Param q query string false "Search string"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Router /admin/incidents/export [get]
func (h *Handler) adminExportIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "adminExportIncidents")

	data, err := h.incidentService.Export(c.Request.Context(), adminFilter(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="incidents.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// @Summary Get incident by ID
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} map[string]AdminIncidentResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /admin/incidents/{id} [get]
func (h *Handler) adminGetIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "adminGetIncident").WithField("id", id)

	incident, err := h.incidentService.AdminGet(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"incident": ModelToAdminIncidentResponse(incident)})
}

// @Summary Moderate an incident
// @Description Change status and/or internal notes. Any status may be set from any other.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param patch body UpdateIncidentRequest true "Fields to update"
// @Success 200 {object} map[string]AdminIncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid status or no fields to update"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /admin/incidents/{id} [patch]
func (h *Handler) adminUpdateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "adminUpdateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.incidentService.Update(c.Request.Context(), id, input.toPatch())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"incident": ModelToAdminIncidentResponse(incident)})
}

// @Summary Delete an incident
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} OKResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Router /admin/incidents/{id} [delete]
func (h *Handler) adminDeleteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "adminDeleteIncident").WithField("id", id)

	if err := h.incidentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}
