package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_reporting_system/internal/models"
)

func locationTypeFilter(c *gin.Context) *models.LocationType {
	value := strings.TrimSpace(c.Query("location_type"))
	if value == "" {
		value = strings.TrimSpace(c.Query("type"))
	}
	if value == "" {
		return nil
	}
	t := models.LocationType(value)
	return &t
}

// locationID разбирает числовой id объекта карты. При ошибке ответ уже записан.
func locationID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "invalid location ID"})
		return 0, false
	}
	return id, true
}

// @Summary Emergency hotlines
// @Description Seeds the default list on first access
// @Tags Reference
// @Produce json
// @Success 200 {object} map[string][]HotlineResponse
// @Router /hotlines [get]
func (h *Handler) listHotlines(c *gin.Context) {
	log := h.logger.WithField("method", "listHotlines")

	hotlines, err := h.referenceService.ListHotlines(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotlines": HotlinesToResponses(hotlines)})
}

// @Summary Create hotline
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hotline body HotlineRequest true "Hotline"
// @Success 200 {object} map[string]HotlineResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Router /admin/hotlines [post]
func (h *Handler) createHotline(c *gin.Context) {
	var input HotlineRequest
	log := h.logger.WithField("method", "createHotline")

	if !h.bindJSON(c, log, &input) {
		return
	}

	hotline := input.toModel("")
	if err := h.referenceService.CreateHotline(c.Request.Context(), hotline); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotline": HotlineToResponse(hotline)})
}

// @Summary Replace hotline
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotline ID"
// @Param hotline body HotlineRequest true "Hotline"
// @Success 200 {object} map[string]HotlineResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Hotline not found"
// @Router /admin/hotlines/{id} [put]
func (h *Handler) updateHotline(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateHotline").WithField("id", id)

	var input HotlineRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	hotline := input.toModel(id)
	if err := h.referenceService.UpdateHotline(c.Request.Context(), hotline); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotline": HotlineToResponse(hotline)})
}

// @Summary Delete hotline
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotline ID"
// @Success 200 {object} OKResponse
// @Failure 404 {object} ErrorResponse "Hotline not found"
// @Router /admin/hotlines/{id} [delete]
func (h *Handler) deleteHotline(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteHotline").WithField("id", id)

	if err := h.referenceService.DeleteHotline(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// @Summary Map locations
// @Description Evacuation centers, hospitals and other facilities. Seeds the default set on first access.
// @Tags Reference
// @Produce json
// @Param location_type query string false "Type filter" Enums(evacuation, hospital, police, fire, government)
// @Success 200 {object} map[string][]LocationResponse
// @Router /map/locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	log := h.logger.WithField("method", "listLocations")

	locations, err := h.referenceService.ListLocations(c.Request.Context(), locationTypeFilter(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": LocationsToResponses(locations)})
}

// @Summary Create map location
// @Description The id is assigned as the current maximum plus one
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body CreateLocationRequest true "Location"
// @Success 200 {object} map[string]LocationResponse
// @Failure 400 {object} ErrorResponse "Invalid location type"
// @Failure 409 {object} ErrorResponse "Concurrent insert took the id"
// @Router /admin/locations [post]
func (h *Handler) createLocation(c *gin.Context) {
	var input CreateLocationRequest
	log := h.logger.WithField("method", "createLocation")

	if !h.bindJSON(c, log, &input) {
		return
	}

	location := input.toModel()
	if err := h.referenceService.CreateLocation(c.Request.Context(), location); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": LocationToResponse(location)})
}

// @Summary Update map location
// @Description Only the fields present in the body are changed
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param patch body UpdateLocationRequest true "Fields to update"
// @Success 200 {object} map[string]LocationResponse
// @Failure 400 {object} ErrorResponse "Invalid location type or no fields to update"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Router /admin/locations/{id} [put]
func (h *Handler) updateLocation(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("id", id)

	var input UpdateLocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	location, err := h.referenceService.UpdateLocation(c.Request.Context(), id, input.toPatch())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": LocationToResponse(location)})
}

// @Summary Delete map location
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} OKResponse
// @Failure 404 {object} ErrorResponse "Location not found"
// @Router /admin/locations/{id} [delete]
func (h *Handler) deleteLocation(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteLocation").WithField("id", id)

	if err := h.referenceService.DeleteLocation(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}
