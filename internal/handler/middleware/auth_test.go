//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"parcel-registry/internal/handler/middleware"
	"parcel-registry/internal/pkg/jwt"
	"parcel-registry/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := jwt.NewService("test-secret", "parcel-registry", time.Hour)
	auth := middleware.NewAuthMiddleware(svc)

	router := gin.New()
	router.GET("/whoami", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetActorID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"actor_id": id.String()})
	})

	t.Run("valid token", func(t *testing.T) {
		actorID := uuid.New()
		token, err := svc.GenerateToken(actorID)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, actorID.String(), body["actor_id"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", "parcel-registry", -time.Minute)
		token, err := expired.GenerateToken(uuid.New())
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
