package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/wildfire_risk_service/internal/apperr"
	"github.com/shenikar/wildfire_risk_service/internal/config"
	"github.com/shenikar/wildfire_risk_service/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	zoneService       service.ZoneService
	incidentService   service.IncidentService
	alertService      service.AlertService
	regionService     service.RegionService
	userService       service.UserService
	predictionService service.PredictionService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	zoneService service.ZoneService,
	incidentService service.IncidentService,
	alertService service.AlertService,
	regionService service.RegionService,
	userService service.UserService,
	predictionService service.PredictionService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		zoneService:       zoneService,
		incidentService:   incidentService,
		alertService:      alertService,
		regionService:     regionService,
		userService:       userService,
		predictionService: predictionService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// respondError maps a service error to an HTTP status. Unrecognized errors
// become a 500 with a generic body so internals never leak to clients.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case apperr.IsValidation(err):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrUnauthorized):
		log.WithError(err).Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		log.WithError(err).Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		log.WithError(err).Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseIDParam parses the :id path parameter. A non-numeric value aborts
// the request with a 400.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return 0, false
	}
	return id, true
}

// parsePagination reads skip/limit query parameters with defaults.
func parsePagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return skip, limit
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
