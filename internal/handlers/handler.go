package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hvac_reward/internal/logger"
	"hvac_reward/internal/metrics"
	"hvac_reward/internal/service"
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
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.requireUser)
	{
		h.registerRewardRoutes(api)
		h.registerHistoryRoutes(api)
		h.registerScenarioRoutes(api)
	}
}

func (h *Handler) registerRewardRoutes(api *gin.RouterGroup) {
	rw := api.Group("/reward")
	{
		rw.POST("", h.computeReward)
		rw.POST("/wire", h.computeRewardWire)
		rw.POST("/batch", h.computeRewardBatch)
	}
}

func (h *Handler) registerHistoryRoutes(api *gin.RouterGroup) {
	rs := api.Group("/rewards")
	{
		rs.GET("", h.listRewards)
		rs.GET("/latest", h.latestReward)
		rs.GET("/export", h.exportRewards)
	}
}

func (h *Handler) registerScenarioRoutes(api *gin.RouterGroup) {
	sc := api.Group("/scenarios/:id")
	{
		sc.PUT("/inventory", h.putInventory)
		sc.GET("/inventory", h.getInventory)
	}
}
