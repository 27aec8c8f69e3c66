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

type AlertHandler struct {
	cmds commands.AlertCommands
	q    queries.AlertQueries
}

func NewAlertHandler(cmds commands.AlertCommands, q queries.AlertQueries) *AlertHandler {
	return &AlertHandler{cmds: cmds, q: q}
}

// @Summary List alerts
// @Description Newest first with keyset pagination; pass next_cursor back as after
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Param acknowledged query bool false "Acknowledged filter"
// @Param alert_type query string false "Alert type"
// @Param severity query string false "low, medium, high or critical"
// @Param parcel_id query string false "Parcel ID"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.AlertListResponse
// @Failure 400 {object} httperr.Response
// @Router /alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	var query reqdto.ListAlertsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid parcel_id", nil)
		return
	}
	rows, next, err := h.q.List(c.Request.Context(), filter, query.Cursor(), query.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAlertViews(rows, next))
}

// @Summary Acknowledge alert
// @Tags alerts
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /alerts/{id}/acknowledge [post]
func (h *AlertHandler) Acknowledge(c *gin.Context) {
	alertID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Acknowledge(c.Request.Context(), alertID, actorID); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
