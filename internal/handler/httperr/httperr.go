package httperr

import (
	"net/http"

	"parcel-registry/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const retryAfterSeconds = "1"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    string `json:"kind,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	if kind := errs.KindOf(err); kind != nil {
		resp.Error.Kind = KindName(kind)
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUseCaseError maps the error kind to a status. The message of a
// kinded error is user-facing; anything else is answered with a generic 500
// and only reaches the logs.
func AbortWithUseCaseError(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	if kind == nil {
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if kind == errs.ErrBusy {
		c.Header("Retry-After", retryAfterSeconds)
	}
	AbortWithError(c, StatusOf(kind), err, userMessage(err), nil)
}

func StatusOf(kind error) int {
	switch kind {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrInvalidInput:
		return http.StatusBadRequest
	case errs.ErrPermissionDenied:
		return http.StatusForbidden
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrInvalidTransition:
		return http.StatusUnprocessableEntity
	case errs.ErrBusy:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func KindName(kind error) string {
	switch kind {
	case errs.ErrNotFound:
		return "not_found"
	case errs.ErrInvalidInput:
		return "invalid_input"
	case errs.ErrPermissionDenied:
		return "permission_denied"
	case errs.ErrConflict:
		return "conflict"
	case errs.ErrInvalidTransition:
		return "invalid_transition"
	case errs.ErrBusy:
		return "busy"
	default:
		return ""
	}
}

// userMessage drops wrap prefixes added on the way up so only the message the
// use-case chose is returned.
func userMessage(err error) string {
	return errs.UnwrapAll(err).Error()
}
