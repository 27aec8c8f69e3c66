//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parcel-registry/internal/domain/availability"
	"parcel-registry/internal/handler/api"
	resdto "parcel-registry/internal/handler/dto/response"
	"parcel-registry/internal/testutil/httptest"
	commandsmock "parcel-registry/internal/testutil/mock/commands"
	queriesmock "parcel-registry/internal/testutil/mock/queries"
	"parcel-registry/internal/usecase/commands"
	"parcel-registry/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OwnershipHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOwnershipCommands
	mockQueries  *queriesmock.MockOwnershipQueries
	actorID      uuid.UUID
}

func (s *OwnershipHandlerTestSuite) SetupTest() {
	s.router = newRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOwnershipCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOwnershipQueries(s.mockCtrl)
	s.actorID = uuid.New()

	h := api.NewOwnershipHandler(s.mockCommands, s.mockQueries)
	auth := fakeAuth(s.actorID)
	s.router.PUT("/parcels/:id/owner", auth, h.Assign)
	s.router.GET("/parcels/:id/ownership-history", auth, h.History)
}

func (s *OwnershipHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOwnershipHandlerSuite(t *testing.T) {
	suite.Run(t, new(OwnershipHandlerTestSuite))
}

func (s *OwnershipHandlerTestSuite) TestAssign() {
	parcelID, owner := uuid.New(), uuid.New()
	url := "/parcels/" + parcelID.String() + "/owner"

	s.Run("success: attribution result", func() {
		released := uuid.New()
		result := &commands.AssignResult{
			ParcelID:              parcelID,
			NewOwnerID:            &owner,
			HistoryID:             uuid.New(),
			ReleasedReservationID: &released,
		}
		in := commands.AssignOwnerInput{ParcelID: parcelID, NewOwnerID: owner}
		s.mockCommands.EXPECT().AssignOwner(gomock.Any(), in, s.actorID).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"owner_id": owner}, bearer)

		var body resdto.AssignOwnerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(parcelID.String(), body.ParcelID)
		s.Nil(body.PreviousOwnerID)
		s.Require().NotNil(body.NewOwnerID)
		s.Equal(owner.String(), *body.NewOwnerID)
		s.Require().NotNil(body.ReleasedReservationID)
		s.Equal(released.String(), *body.ReleasedReservationID)
	})

	s.Run("error: owner_id is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: double attribution is a conflict without the current owner", func() {
		current := uuid.New()
		s.mockCommands.EXPECT().AssignOwner(gomock.Any(), gomock.Any(), s.actorID).
			Return(nil, availability.Assigned(current).Err()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"owner_id": owner}, bearer)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Parcelle déjà attribuée")
		s.NotContains(rec.Body.String(), current.String())
	})
}

func (s *OwnershipHandlerTestSuite) TestHistory() {
	parcelID := uuid.New()
	url := "/parcels/" + parcelID.String() + "/ownership-history"

	s.Run("success", func() {
		newValue := uuid.New().String()
		rows := []*queries.OwnershipHistoryView{{
			ID:        uuid.New(),
			ParcelID:  parcelID,
			Action:    "update",
			Field:     "owner_id",
			NewValue:  &newValue,
			Details:   "Attribution directe",
			ChangedBy: s.actorID,
			ChangedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		}}
		s.mockQueries.EXPECT().GetOwnershipHistory(gomock.Any(), parcelID).Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)

		var body []resdto.OwnershipHistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Attribution directe", body[0].Details)
		s.Nil(body[0].OldValue)
		s.Nil(body[0].MutationID)
		s.Equal(s.actorID.String(), body[0].ChangedBy)
	})

	s.Run("error: 404 for an unknown parcel", func() {
		s.mockQueries.EXPECT().GetOwnershipHistory(gomock.Any(), parcelID).Return(nil, queries.ErrParcelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "not_found")
	})
}
