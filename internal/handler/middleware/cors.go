package middleware

import (
	"log/slog"
	"slices"

	"parcel-registry/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browsers hide these unless exposed: Location after a create, Retry-After
// on 503 busy, and the request id for support reports.
var apiExposedHeaders = []string{"Location", "Retry-After", "X-Request-ID"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposedHeaders(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func exposedHeaders(configured []string) []string {
	out := slices.Clone(configured)
	for _, h := range apiExposedHeaders {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
