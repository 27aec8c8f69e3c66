package api

import (
	"net/http"

	reqdto "parcel-registry/internal/handler/dto/request"
	resdto "parcel-registry/internal/handler/dto/response"
	"parcel-registry/internal/handler/httperr"
	"parcel-registry/internal/usecase/commands"
	"parcel-registry/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Check parcel availability
// @Description Records a verification log entry and raises an alert when the parcel is already assigned
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parcel ID"
// @Success 200 {object} resdto.VerdictResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /parcels/{id}/availability [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	parcelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentActor(c)
	if !ok {
		return
	}
	verdict, err := h.cmds.CheckAvailability(c.Request.Context(), parcelID, actorID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerdict(parcelID, verdict))
}

// @Summary Reserve parcel
// @Description Places a time-bounded hold on an available parcel
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parcel ID"
// @Param request body reqdto.ReserveRequest false "Reservation options"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /parcels/{id}/reservations [post]
func (h *AvailabilityHandler) Reserve(c *gin.Context) {
	parcelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.ReserveRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	result, err := h.cmds.Reserve(c.Request.Context(), req.ToInput(parcelID), actorID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/parcels/"+parcelID.String()+"/status")
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary Release reservation
// @Description Releases an active hold; allowed for the holder or a manager
// @Tags availability
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *AvailabilityHandler) Release(c *gin.Context) {
	reservationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.cmds.ReleaseReservation(c.Request.Context(), reservationID, actorID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Parcel status
// @Description Derived status of a parcel: available, reserved or assigned
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parcel ID"
// @Success 200 {object} resdto.ParcelStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parcels/{id}/status [get]
func (h *AvailabilityHandler) Status(c *gin.Context) {
	parcelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetParcelStatus(c.Request.Context(), parcelID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromParcelStatusView(view))
}

// @Summary Verification history
// @Description Newest first, optionally for a single parcel
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param parcel_id query string false "Parcel ID"
// @Param limit query int false "Maximum entries"
// @Success 200 {array} resdto.VerificationLogResponse
// @Failure 400 {object} httperr.Response
// @Router /verifications [get]
func (h *AvailabilityHandler) History(c *gin.Context) {
	var query reqdto.VerificationHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	parcelID, err := query.ParcelUUID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid parcel_id", nil)
		return
	}
	rows, err := h.q.GetVerificationHistory(c.Request.Context(), parcelID, query.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerificationLogViews(rows))
}
