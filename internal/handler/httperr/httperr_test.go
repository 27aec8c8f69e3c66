//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"parcel-registry/internal/handler/httperr"
	"parcel-registry/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		kind error
		want int
	}{
		{errs.ErrNotFound, http.StatusNotFound},
		{errs.ErrInvalidInput, http.StatusBadRequest},
		{errs.ErrPermissionDenied, http.StatusForbidden},
		{errs.ErrConflict, http.StatusConflict},
		{errs.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{errs.ErrBusy, http.StatusServiceUnavailable},
		{nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, httperr.StatusOf(tt.kind), "kind %v", tt.kind)
	}
}

func TestAbortWithUseCaseError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		httperr.AbortWithUseCaseError(c, err)
		return rec
	}

	t.Run("wrapped kinded error keeps only the user message", func(t *testing.T) {
		rec := run(errs.Wrap(errs.WithKind(errs.ErrConflict, "Parcelle réservée"), "reserve parcel"))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":{"kind":"conflict","message":"Parcelle réservée"}}`, rec.Body.String())
	})

	t.Run("busy sets Retry-After", func(t *testing.T) {
		rec := run(errs.WithKind(errs.ErrBusy, "Ressource occupée, veuillez réessayer"))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})

	t.Run("internal error is not echoed", func(t *testing.T) {
		rec := run(errs.New("duplicate key value violates unique constraint"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "duplicate key")
	})
}
