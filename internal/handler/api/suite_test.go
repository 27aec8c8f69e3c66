//go:build unit

package api_test

import (
	"net/http"

	"parcel-registry/internal/handler/httperr"
	"parcel-registry/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearer = "bearer-token"

// fakeAuth stands in for RequireAuth: any bearer token authenticates as
// actorID.
func fakeAuth(actorID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errNoToken, "Unauthorized", nil)
			return
		}
		middleware.SetActorID(c, actorID)
		c.Next()
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errNoToken = testError("no token")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return r
}
