package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/wildfire_risk_service/internal/models"
)

// @Summary Report a fire incident
// @Description Report a fire incident linked to an existing risk zone. Requires superuser privilege.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Linked zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

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

	incident := toIncidentModel(&input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), incident); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, toIncidentResponse(incident))
}

// @Summary List fire incidents
// @Description List fire incidents ordered by start date descending, with optional filters.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Param region_name query string false "Region name substring, matched through the owning zone"
// @Param status query string false "Incident status" Enums(Active, Contained, Extinguished)
// @Param severity query string false "Incident severity" Enums(Low, Medium, High)
// @Param start_date_from query string false "Earliest start date (RFC 3339)"
// @Param start_date_to query string false "Latest start date (RFC 3339)"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	skip, limit := parsePagination(c)

	filter := models.IncidentFilter{
		RegionName: c.Query("region_name"),
		Status:     c.Query("status"),
		Severity:   c.Query("severity"),
	}
	if v := c.Query("start_date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.StartDateFrom = &t
		}
	}
	if v := c.Query("start_date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.StartDateTo = &t
		}
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter, skip, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponses(incidents))
}

// @Summary Get fire incident by ID
// @Description Get a single fire incident by its ID.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// @Summary Update a fire incident
// @Description Partially update a fire incident. Absent fields are left untouched. Requires superuser privilege.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
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

	incident, err := h.incidentService.UpdateIncident(c.Request.Context(), id, toIncidentUpdate(&input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// @Summary Delete a fire incident
// @Description Delete a fire incident by ID. Requires superuser privilege.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
