package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary List alerts
// @Description List the authenticated user's alerts, newest first.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Param is_read query bool false "Filter by read state"
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	user := currentUser(c)
	log := h.logger.WithField("method", "listAlerts").WithField("user_id", user.ID)
	skip, limit := parsePagination(c)

	var isRead *bool
	if v := c.Query("is_read"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			isRead = &b
		}
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), user.ID, isRead, skip, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toAlertResponses(alerts))
}

// @Summary Get alert by ID
// @Description Get one of the authenticated user's alerts by its ID. Other users' alerts are invisible.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user := currentUser(c)
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.alertService.GetAlert(c.Request.Context(), id, user.ID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toAlertResponse(alert))
}

// @Summary Mark an alert as read
// @Description Mark one of the authenticated user's alerts as read.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/read [post]
func (h *Handler) markAlertRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user := currentUser(c)
	log := h.logger.WithField("method", "markAlertRead").WithField("id", id)

	alert, err := h.alertService.MarkAlertRead(c.Request.Context(), id, user.ID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toAlertResponse(alert))
}

// @Summary Mark all alerts as read
// @Description Mark every alert of the authenticated user as read.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Status OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/mark-all-read [post]
func (h *Handler) markAllAlertsRead(c *gin.Context) {
	user := currentUser(c)
	log := h.logger.WithField("method", "markAllAlertsRead").WithField("user_id", user.ID)

	if err := h.alertService.MarkAllAlertsRead(c.Request.Context(), user.ID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Delete an alert
// @Description Delete one of the authenticated user's alerts.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [delete]
func (h *Handler) deleteAlert(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user := currentUser(c)
	log := h.logger.WithField("method", "deleteAlert").WithField("id", id)

	if err := h.alertService.DeleteAlert(c.Request.Context(), id, user.ID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
