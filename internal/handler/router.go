package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parcel-registry/internal/handler/api"
	"parcel-registry/internal/handler/middleware"
	"parcel-registry/internal/pkg/config"
	"parcel-registry/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Mutation     *api.MutationHandler
	Ownership    *api.OwnershipHandler
	Alert        *api.AlertHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		parcels := apiGroup.Group("/parcels/:id")
		addRoutes(parcels, []route{
			{Method: http.MethodPost, Path: "/availability", Handler: h.Availability.Check},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Availability.Reserve},
			{Method: http.MethodGet, Path: "/status", Handler: h.Availability.Status},
			{Method: http.MethodPut, Path: "/owner", Handler: h.Ownership.Assign},
			{Method: http.MethodGet, Path: "/ownership-history", Handler: h.Ownership.History},
			{Method: http.MethodGet, Path: "/mutations", Handler: h.Mutation.ListByParcel},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Availability.Release},
			{Method: http.MethodGet, Path: "/verifications", Handler: h.Availability.History},
		})

		mutations := apiGroup.Group("/mutations")
		addRoutes(mutations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Mutation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Mutation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Mutation.Get},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Mutation.Approve},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Mutation.Reject},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Mutation.Complete},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Mutation.Cancel},
		})

		alerts := apiGroup.Group("/alerts")
		addRoutes(alerts, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Alert.List},
			{Method: http.MethodPost, Path: "/:id/acknowledge", Handler: h.Alert.Acknowledge},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
