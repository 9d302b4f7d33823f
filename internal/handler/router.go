package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pickup-options-service/internal/handler/api"
	"pickup-options-service/internal/handler/middleware"
	"pickup-options-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, pickupHandler *api.PickupHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, pickupHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, pickupHandler *api.PickupHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "/:id/pickup-options", Handler: pickupHandler.Resolve},
				{Method: http.MethodPost, Path: "/:id/pickup-options/open", Handler: pickupHandler.ResolveOpen},
				{Method: http.MethodDelete, Path: "/:id/pickup-options", Handler: pickupHandler.Invalidate},
			})
		}

		points := apiGroup.Group("/pickup-points")
		{
			addRoutes(points, []route{
				{Method: http.MethodPost, Path: "/changed", Handler: pickupHandler.PointsChanged},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
