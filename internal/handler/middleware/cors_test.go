//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"parcel-registry/internal/handler/middleware"
	"parcel-registry/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSExposesAPIHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{http.MethodGet},
		AllowHeaders:  []string{"Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := nethttptest.NewRecorder()
	engine.ServeHTTP(w, req)

	exposed := strings.ToLower(w.Header().Get("Access-Control-Expose-Headers"))
	for _, h := range []string{"content-length", "location", "retry-after", "x-request-id"} {
		assert.Contains(t, exposed, h)
	}
}

func TestCORSWithTestConfig(t *testing.T) {
	assert.NotPanics(t, func() {
		middleware.NewCORSMiddleware(config.NewTestConfig().CORS)
	})
}
