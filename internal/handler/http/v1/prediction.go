package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Predict fire risk at a point
// @Description Produce a risk assessment for the coordinates. A recent assessment at the same point is reused; otherwise a new zone is created and the caller's alert threshold is evaluated against it.
// @Tags Predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PredictRiskRequest true "Prediction request"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /predictions/fire-risk [post]
func (h *Handler) predictFireRisk(c *gin.Context) {
	user := currentUser(c)
	var input PredictRiskRequest
	log := h.logger.WithField("method", "predictFireRisk").WithField("user_id", user.ID)

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

	zone, err := h.predictionService.PredictFireRisk(c.Request.Context(), user, input.Latitude, input.Longitude, input.RegionName)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toZoneResponse(zone))
}

// @Summary Predict fire spread from a zone
// @Description Project hourly spread points from an assessed zone for up to a week ahead.
// @Tags Predictions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PredictSpreadRequest true "Spread prediction request"
// @Success 200 {object} service.SpreadForecast
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /predictions/fire-spread [post]
func (h *Handler) predictFireSpread(c *gin.Context) {
	var input PredictSpreadRequest
	log := h.logger.WithField("method", "predictFireSpread")

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

	hours := input.HoursAhead
	if hours == 0 {
		hours = 24
	}

	forecast, err := h.predictionService.PredictFireSpread(c.Request.Context(), input.ZoneID, hours)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}
