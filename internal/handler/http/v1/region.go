package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Save a region subscription
// @Description Save a monitored region for the authenticated user. New predictions inside the region use its alert threshold.
// @Tags Regions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param region body CreateRegionRequest true "Region creation request"
// @Success 201 {object} RegionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions [post]
func (h *Handler) createRegion(c *gin.Context) {
	user := currentUser(c)
	var input CreateRegionRequest
	log := h.logger.WithField("method", "createRegion").WithField("user_id", user.ID)

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

	region := toRegionModel(&input, user.ID)
	if err := h.regionService.CreateRegion(c.Request.Context(), user, region); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, toRegionResponse(region))
}

// @Summary List region subscriptions
// @Description List the authenticated user's saved regions.
// @Tags Regions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} RegionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions [get]
func (h *Handler) listRegions(c *gin.Context) {
	user := currentUser(c)
	log := h.logger.WithField("method", "listRegions").WithField("user_id", user.ID)
	skip, limit := parsePagination(c)

	regions, err := h.regionService.ListRegions(c.Request.Context(), user.ID, skip, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toRegionResponses(regions))
}

// @Summary Delete a region subscription
// @Description Delete a saved region. Only the owner or a superuser may delete it.
// @Tags Regions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Region ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid region ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Region not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /regions/{id} [delete]
func (h *Handler) deleteRegion(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user := currentUser(c)
	log := h.logger.WithField("method", "deleteRegion").WithField("id", id)

	if err := h.regionService.DeleteRegion(c.Request.Context(), user, id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
