package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

// @Summary Save emergency plan
// @Description Create or replace the caller's family emergency plan
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body SavePlanRequest true "Plan"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse "plan_data must be an object"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Router /user/emergency-plan [post]
func (h *Handler) savePlan(c *gin.Context) {
	var input SavePlanRequest
	log := h.logger.WithField("method", "savePlan")

	if !h.bindJSON(c, log, &input) {
		return
	}

	plan, err := h.userDataService.SavePlan(c.Request.Context(), currentUser(c).ID, input.PlanData)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Emergency plan saved successfully",
		"plan":    PlanToResponse(plan),
	})
}

// @Summary Get emergency plan
// @Description The plan is null when nothing was saved yet
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]PlanResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Router /user/emergency-plan [get]
func (h *Handler) getPlan(c *gin.Context) {
	log := h.logger.WithField("method", "getPlan")

	plan, err := h.userDataService.GetPlan(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": PlanToResponse(plan)})
}

// @Summary Save checklist progress
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checklist body SaveChecklistRequest true "Checklist"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse "checklist_data must be an array of objects"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Router /user/checklist [post]
func (h *Handler) saveChecklist(c *gin.Context) {
	var input SaveChecklistRequest
	log := h.logger.WithField("method", "saveChecklist")

	if !h.bindJSON(c, log, &input) {
		return
	}

	checklist, err := h.userDataService.SaveChecklist(c.Request.Context(), currentUser(c).ID, input.ChecklistData)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Checklist saved successfully",
		"checklist": ChecklistToResponse(checklist),
	})
}

// @Summary Get checklist progress
// @Description The checklist is null when nothing was saved yet
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]ChecklistResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Router /user/checklist [get]
func (h *Handler) getChecklist(c *gin.Context) {
	log := h.logger.WithField("method", "getChecklist")

	checklist, err := h.userDataService.GetChecklist(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checklist": ChecklistToResponse(checklist)})
}

// @Summary Go-bag checklist
// @Tags Reference
// @Produce json
// @Success 200 {object} map[string][]models.ChecklistItem
// @Router /checklist [get]
func (h *Handler) goBagChecklist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"checklist": service.GoBagChecklist()})
}

// @Summary Support resources
// @Tags Reference
// @Produce json
// @Success 200 {object} models.SupportResources
// @Router /resources [get]
func (h *Handler) resources(c *gin.Context) {
	c.JSON(http.StatusOK, service.Resources())
}
