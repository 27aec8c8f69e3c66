package middleware

import (
	"log/slog"
	"time"

	"parcel-registry/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
	maxRequestIDLen = 64
)

// RequestLogger tags every request with an id and writes one access line
// when it completes. An id sent by a proxy is kept if it looks sane.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := incomingRequestID(c)
		c.Set(ctxRequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		}
		// Auth runs inside the /api group, so the actor is only known here.
		if actorID, ok := GetActorID(c); ok {
			attrs = append(attrs, slog.String("actor_id", actorID.String()))
		}
		if kind := lastErrorKind(c); kind != "" {
			attrs = append(attrs, slog.String("error_kind", kind))
		}

		level := slog.LevelInfo
		switch status := c.Writer.Status(); {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		logger.LogAttrs(c.Request.Context(), level, "request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func incomingRequestID(c *gin.Context) string {
	if id := c.GetHeader(requestIDHeader); id != "" && len(id) <= maxRequestIDLen {
		return id
	}
	return uuid.NewString()
}

func lastErrorKind(c *gin.Context) string {
	if len(c.Errors) == 0 {
		return ""
	}
	if resp, ok := c.Errors.Last().Meta.(httperr.Response); ok {
		return resp.Error.Kind
	}
	return ""
}
