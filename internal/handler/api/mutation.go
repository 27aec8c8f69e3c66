package api

import (
	"net/http"

	"parcel-registry/internal/domain/mutation"
	reqdto "parcel-registry/internal/handler/dto/request"
	resdto "parcel-registry/internal/handler/dto/response"
	"parcel-registry/internal/handler/httperr"
	"parcel-registry/internal/usecase/commands"
	"parcel-registry/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MutationHandler struct {
	cmds commands.MutationCommands
	q    queries.MutationQueries
}

func NewMutationHandler(cmds commands.MutationCommands, q queries.MutationQueries) *MutationHandler {
	return &MutationHandler{cmds: cmds, q: q}
}

// @Summary Create mutation
// @Description Opens a pending ownership-change request; at most one open mutation per parcel
// @Tags mutations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMutationRequest true "Mutation request"
// @Success 201 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /mutations [post]
func (h *MutationHandler) Create(c *gin.Context) {
	actorID, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	snap, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actorID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/mutations/"+snap.ID.String())
	c.JSON(http.StatusCreated, resdto.FromMutationSnapshot(snap))
}

// @Summary Approve mutation
// @Tags mutations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mutation ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /mutations/{id}/approve [post]
func (h *MutationHandler) Approve(c *gin.Context) {
	h.transition(c, func(c *gin.Context, ids transitionIDs) (*mutation.Snapshot, error) {
		return h.cmds.Approve(c.Request.Context(), ids.mutation, ids.actor)
	})
}

// @Summary Reject mutation
// @Tags mutations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mutation ID"
// @Param request body reqdto.RejectMutationRequest true "Rejection reason"
// @Success 200 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /mutations/{id}/reject [post]
func (h *MutationHandler) Reject(c *gin.Context) {
	var req reqdto.RejectMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.transition(c, func(c *gin.Context, ids transitionIDs) (*mutation.Snapshot, error) {
		return h.cmds.Reject(c.Request.Context(), ids.mutation, ids.actor, req.Reason)
	})
}

// @Summary Complete mutation
// @Description Applies an approved mutation to the parcel owner and writes the ownership history
// @Tags mutations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mutation ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /mutations/{id}/complete [post]
func (h *MutationHandler) Complete(c *gin.Context) {
	h.transition(c, func(c *gin.Context, ids transitionIDs) (*mutation.Snapshot, error) {
		return h.cmds.Complete(c.Request.Context(), ids.mutation, ids.actor)
	})
}

// @Summary Cancel mutation
// @Tags mutations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mutation ID"
// @Param request body reqdto.CancelMutationRequest false "Cancellation reason"
// @Success 200 {object} resdto.MutationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /mutations/{id}/cancel [post]
func (h *MutationHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelMutationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	h.transition(c, func(c *gin.Context, ids transitionIDs) (*mutation.Snapshot, error) {
		return h.cmds.Cancel(c.Request.Context(), ids.mutation, ids.actor, req.TrimmedReason())
	})
}

// @Summary Get mutation
// @Tags mutations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mutation ID"
// @Success 200 {object} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /mutations/{id} [get]
func (h *MutationHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMutationView(view))
}

// @Summary List mutations
// @Description Newest first, paged
// @Tags mutations
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved, rejected, completed or cancelled"
// @Param page query int false "Page, from 1"
// @Param page_size query int false "Page size, at most 100"
// @Success 200 {object} resdto.MutationPageResponse
// @Failure 400 {object} httperr.Response
// @Router /mutations [get]
func (h *MutationHandler) List(c *gin.Context) {
	var query reqdto.ListMutationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	page, err := h.q.List(c.Request.Context(), query.Status, query.Page, query.PageSize)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMutationPage(page))
}

// @Summary List parcel mutations
// @Tags mutations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Parcel ID"
// @Success 200 {array} resdto.MutationResponse
// @Failure 400 {object} httperr.Response
// @Router /parcels/{id}/mutations [get]
func (h *MutationHandler) ListByParcel(c *gin.Context) {
	parcelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	rows, err := h.q.ListByParcel(c.Request.Context(), parcelID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMutationViews(rows))
}

type transitionIDs struct {
	mutation uuid.UUID
	actor    uuid.UUID
}

func (h *MutationHandler) transition(c *gin.Context, apply func(c *gin.Context, ids transitionIDs) (*mutation.Snapshot, error)) {
	mutationID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentActor(c)
	if !ok {
		return
	}
	snap, err := apply(c, transitionIDs{mutation: mutationID, actor: actorID})
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMutationSnapshot(snap))
}
