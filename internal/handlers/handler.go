package handlers

import (
	"svt_viewer/internal/logger"
	"svt_viewer/internal/metrics"
	"svt_viewer/internal/service"

	"github.com/gin-gonic/gin"

	_ "svt_viewer/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health and metrics endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerThermostatRoutes(api)
		h.registerDiagnosticRoutes(api)
	}
}

func (h *Handler) registerThermostatRoutes(api *gin.RouterGroup) {
	thermostats := api.Group("/thermostats")
	{
		thermostats.GET("", h.listThermostats)
		thermostats.GET("/:id", h.getThermostat)
		thermostats.POST("/refresh", h.refreshThermostats)
	}
}

func (h *Handler) registerDiagnosticRoutes(api *gin.RouterGroup) {
	diagnostics := api.Group("/diagnostics")
	{
		diagnostics.GET("", h.getDiagnostics)
	}
}
