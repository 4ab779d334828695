package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Вход и регистрация без токена
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/authenticate", h.authenticate)
		auth.POST("/refresh", h.refresh)
	}

	protected := api.Group("", JWTAuthMiddleware(h.userService, h.logger))
	protected.GET("/users/me", h.me)

	zones := protected.Group("/zones")
	{
		zones.GET("", h.listZones)
		zones.GET("/stats", h.getZoneStats)
		zones.GET("/count", h.countZonesCreated)
		zones.GET("/:id", h.getZone)

		admin := zones.Group("", AdminOnly(h.logger))
		admin.POST("", h.createZone)
		admin.PUT("/:id", h.updateZone)
		admin.DELETE("/:id", h.deleteZone)
		admin.POST("/:id/tips", h.addSafetyTip)
		admin.DELETE("/:id/tips/:tipId", h.removeSafetyTip)
	}

	sos := protected.Group("/sos")
	{
		sos.POST("", h.raiseSos)
		sos.GET("/mine", h.listMySos)
		sos.GET("/:id", h.getSos)

		admin := sos.Group("", AdminOnly(h.logger))
		admin.GET("/all", h.listAllSos)
		admin.GET("/stats", h.getSosStats)
		admin.PATCH("/:id/status", h.updateSosStatus)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
