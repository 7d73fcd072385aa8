package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. Read endpoints require a
// bearer token; zone and incident mutations additionally require superuser
// privilege.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Open endpoints
	api.POST("/auth/login", h.login)
	api.POST("/users", h.registerUser)
	api.GET("/system/health", h.healthCheck)

	authorized := api.Group("")
	authorized.Use(JWTAuthMiddleware(h.cfg, h.userService, h.logger))
	{
		zones := authorized.Group("/zones")
		{
			zones.GET("", h.listZones)
			zones.GET("/by-coordinates", h.getZoneByCoordinates)
			zones.GET("/:id", h.getZone)

			zones.POST("", RequireSuperuser(), h.createZone)
			zones.PUT("/:id", RequireSuperuser(), h.updateZone)
			zones.DELETE("/:id", RequireSuperuser(), h.deleteZone)
		}

		incidents := authorized.Group("/incidents")
		{
			incidents.GET("", h.listIncidents)
			incidents.GET("/:id", h.getIncident)

			incidents.POST("", RequireSuperuser(), h.createIncident)
			incidents.PUT("/:id", RequireSuperuser(), h.updateIncident)
			incidents.DELETE("/:id", RequireSuperuser(), h.deleteIncident)
		}

		predictions := authorized.Group("/predictions")
		{
			predictions.POST("/fire-risk", h.predictFireRisk)
			predictions.POST("/fire-spread", h.predictFireSpread)
		}

		alerts := authorized.Group("/alerts")
		{
			alerts.GET("", h.listAlerts)
			alerts.POST("/mark-all-read", h.markAllAlertsRead)
			alerts.GET("/:id", h.getAlert)
			alerts.POST("/:id/read", h.markAlertRead)
			alerts.DELETE("/:id", h.deleteAlert)
		}

		regions := authorized.Group("/regions")
		{
			regions.POST("", h.createRegion)
			regions.GET("", h.listRegions)
			regions.DELETE("/:id", h.deleteRegion)
		}

		users := authorized.Group("/users")
		{
			users.GET("/me", h.getCurrentUser)
			users.PUT("/me", h.updateCurrentUser)

			users.GET("", RequireSuperuser(), h.listUsers)
			users.GET("/:id", RequireSuperuser(), h.getUser)
			users.DELETE("/:id", RequireSuperuser(), h.deleteUser)
		}
	}
}
