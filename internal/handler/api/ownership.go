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

type OwnershipHandler struct {
	cmds commands.OwnershipCommands
	q    queries.OwnershipQueries
}

func NewOwnershipHandler(cmds commands.OwnershipCommands, q queries.OwnershipQueries) *OwnershipHandler {
	return &OwnershipHandler{cmds: cmds, q: q}
}

// @Summary Assign owner
// @Description Direct attribution of an unowned parcel; a second attribution is refused and raises an alert
// @Tags ownership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parcel ID"
// @Param request body reqdto.AssignOwnerRequest true "New owner"
// @Success 200 {object} resdto.AssignOwnerResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /parcels/{id}/owner [put]
func (h *OwnershipHandler) Assign(c *gin.Context) {
	parcelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.AssignOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.AssignOwner(c.Request.Context(), req.ToInput(parcelID), actorID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssignResult(result))
}

// @Summary Ownership history
// @Description Owner changes of a parcel, newest first
// @Tags ownership
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parcel ID"
// @Success 200 {array} resdto.OwnershipHistoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parcels/{id}/ownership-history [get]
func (h *OwnershipHandler) History(c *gin.Context) {
	parcelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	rows, err := h.q.GetOwnershipHistory(c.Request.Context(), parcelID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnershipHistoryViews(rows))
}
