//go:build unit || integration

package bootstrap_test

import (
	"net/http"
	"strings"
	"testing"

	"parcel-registry/cmd/bootstrap"
	"parcel-registry/cmd/bootstrap/components"
	resdto "parcel-registry/internal/handler/dto/response"
	"parcel-registry/internal/pkg/config"
	"parcel-registry/internal/pkg/jwt"
	"parcel-registry/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type actors struct {
	manager, citizen, buyer uuid.UUID
	parcel                  uuid.UUID
}

// newApp wires everything except config loading and the HTTP listener.
func newApp(t *testing.T, cfg config.Config) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var (
		engine *gin.Engine
		tokens *jwt.Service
	)
	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.PolicyModule,
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		components.StoreModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&engine, &tokens),
		fx.NopLogger,
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return engine, tokens
}

// runAllocationFlow drives one parcel from available to assigned through a
// reservation and a sale.
func runAllocationFlow(t *testing.T, router *gin.Engine, tokens *jwt.Service, a actors) {
	t.Helper()

	token := func(id uuid.UUID) string {
		tok, err := tokens.GenerateToken(id)
		require.NoError(t, err)
		return tok
	}
	managerToken, citizenToken := token(a.manager), token(a.citizen)
	parcelPath := "/api/parcels/" + a.parcel.String()

	var verdict resdto.VerdictResponse
	w := httptest.PerformRequest(t, router, http.MethodPost, parcelPath+"/availability", nil, citizenToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &verdict)
	assert.True(t, verdict.Available)

	var reserved resdto.ReserveResponse
	w = httptest.PerformRequest(t, router, http.MethodPost, parcelPath+"/reservations",
		map[string]any{"ttl_seconds": 600, "purpose": "Instruction du dossier"}, managerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &reserved)
	assert.Equal(t, a.parcel.String(), reserved.ParcelID)

	w = httptest.PerformRequest(t, router, http.MethodPost, parcelPath+"/availability", nil, citizenToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &verdict)
	assert.False(t, verdict.Available)
	assert.Equal(t, "reserved", verdict.Reason)

	var m resdto.MutationResponse
	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/mutations", map[string]any{
		"parcel_id":     a.parcel,
		"mutation_type": "sale",
		"to_owner_id":   a.buyer,
		"price":         1500000,
	}, managerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &m)
	assert.Equal(t, "pending", m.Status)

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/mutations/"+m.ID+"/approve", nil, citizenToken)
	httptest.AssertErrorKind(t, w, http.StatusForbidden, "permission_denied")

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/mutations/"+m.ID+"/approve", nil, managerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &m)
	assert.Equal(t, "approved", m.Status)

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/mutations/"+m.ID+"/complete", nil, managerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &m)
	assert.Equal(t, "completed", m.Status)

	var status resdto.ParcelStatusResponse
	w = httptest.PerformRequest(t, router, http.MethodGet, parcelPath+"/status", nil, citizenToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &status)
	assert.Equal(t, "assigned", status.Status)
	require.NotNil(t, status.OwnerID)
	assert.Equal(t, a.buyer.String(), *status.OwnerID)
	assert.Nil(t, status.ActiveReservation, "completion releases the hold")

	w = httptest.PerformRequest(t, router, http.MethodPost, parcelPath+"/availability", nil, citizenToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &verdict)
	assert.Equal(t, "assigned", verdict.Reason)

	var alerts resdto.AlertListResponse
	w = httptest.PerformRequest(t, router, http.MethodGet, "/api/alerts?acknowledged=false", nil, managerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &alerts)
	require.Len(t, alerts.Items, 1)
	assert.Equal(t, "double_attribution_attempt", alerts.Items[0].AlertType)

	w = httptest.PerformRequest(t, router, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "parcel_availability_verdicts_total"))
}

