package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/wildfire_risk_service/internal/models"
)

// @Summary Create a risk zone
// @Description Create a risk zone assessment. Requires superuser privilege.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param zone body CreateZoneRequest true "Zone creation request"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input CreateZoneRequest
	log := h.logger.WithField("method", "createZone")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone := toZoneModel(&input)
	if err := h.zoneService.CreateZone(c.Request.Context(), zone); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, toZoneResponse(zone))
}

// @Summary List risk zones
// @Description List risk zones ordered by risk level descending, with optional filters.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Param min_risk_level query number false "Minimum risk level"
// @Param max_risk_level query number false "Maximum risk level"
// @Param region_name query string false "Region name substring"
// @Param risk_category query string false "Risk category" Enums(Low, Medium, High)
// @Success 200 {array} ZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")
	skip, limit := parsePagination(c)

	var filter models.ZoneFilter
	if v := c.Query("min_risk_level"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRiskLevel = &f
		}
	}
	if v := c.Query("max_risk_level"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxRiskLevel = &f
		}
	}
	filter.RegionName = c.Query("region_name")
	filter.RiskCategory = c.Query("risk_category")

	zones, err := h.zoneService.ListZones(c.Request.Context(), filter, skip, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponses(zones))
}

// @Summary Get risk zone by coordinates
// @Description Find the most recent risk zone whose coordinates match the given point within the configured tolerance.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No zone at these coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/by-coordinates [get]
func (h *Handler) getZoneByCoordinates(c *gin.Context) {
	log := h.logger.WithField("method", "getZoneByCoordinates")

	lat, errLat := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("longitude"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude query parameters are required"})
		return
	}

	zone, err := h.zoneService.FindZoneByCoordinates(c.Request.Context(), lat, lon)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(zone))
}

// @Summary Get risk zone by ID
// @Description Get a single risk zone by its ID.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [get]
func (h *Handler) getZone(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getZone").WithField("id", id)

	zone, err := h.zoneService.GetZone(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(zone))
}

// @Summary Update a risk zone
// @Description Partially update a risk zone. Absent fields are left untouched. Requires superuser privilege.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Param zone body UpdateZoneRequest true "Zone update request"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [put]
func (h *Handler) updateZone(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateZone").WithField("id", id)

	var input UpdateZoneRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone, err := h.zoneService.UpdateZone(c.Request.Context(), id, toZoneUpdate(&input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(zone))
}

// @Summary Delete a risk zone
// @Description Delete a risk zone by ID. Requires superuser privilege.
// @Tags Zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [delete]
func (h *Handler) deleteZone(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteZone").WithField("id", id)

	if err := h.zoneService.DeleteZone(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
