package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API.
// authLimiter ставится на вход, регистрацию и создание администратора; nil отключает ограничение.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc) {
	limited := []gin.HandlerFunc{}
	if authLimiter != nil {
		limited = append(limited, authLimiter)
	}
	withLimit := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, limited...), handler)
	}

	api.GET("/", h.root)

	// Учетные записи
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", withLimit(h.register)...)
		authGroup.POST("/login", withLimit(h.login)...)
		authGroup.GET("/me", h.RequireAuth(), h.me)
		authGroup.POST("/logout", h.RequireAuth(), h.logout)
	}

	// Прием отчетов и публичная лента
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.submitIncident)
		incidents.GET("", h.listIncidents)
		incidents.POST("/:id/validate", h.RequireAuth(), h.validateIncident)
		incidents.DELETE("/:id/validate", h.RequireAuth(), h.removeValidation)
		incidents.GET("/:id/validations", h.OptionalAuth(), h.incidentValidations)
	}

	// Справочные данные
	api.GET("/hotlines", h.listHotlines)
	api.GET("/map/locations", h.listLocations)
	api.GET("/checklist", h.goBagChecklist)
	api.GET("/resources", h.resources)

	// Личные данные пользователя
	user := api.Group("/user", h.RequireAuth())
	{
		user.GET("/emergency-plan", h.getPlan)
		user.POST("/emergency-plan", h.savePlan)
		user.GET("/checklist", h.getChecklist)
		user.POST("/checklist", h.saveChecklist)
	}

	// Администрирование
	admin := api.Group("/admin")
	admin.POST("/bootstrap", withLimit(h.bootstrapAdmin)...)

	moderation := admin.Group("", h.RequireAuth(), h.RequireAdmin())
	{
		moderation.GET("/incidents", h.adminListIncidents)
		moderation.GET("/incidents/export", h.adminExportIncidents)
		moderation.GET("/incidents/:id", h.adminGetIncident)
		moderation.PATCH("/incidents/:id", h.adminUpdateIncident)
		moderation.DELETE("/incidents/:id", h.adminDeleteIncident)

		moderation.GET("/hotlines", h.listHotlines)
		moderation.POST("/hotlines", h.createHotline)
		moderation.PUT("/hotlines/:id", h.updateHotline)
		moderation.DELETE("/hotlines/:id", h.deleteHotline)

		moderation.GET("/locations", h.listLocations)
		moderation.POST("/locations", h.createLocation)
		moderation.PUT("/locations/:id", h.updateLocation)
		moderation.DELETE("/locations/:id", h.deleteLocation)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
