package controller

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey    = "finboard.userID"
	requestIDKey = "finboard.requestID"

	// defaultUserID stands in until real authentication exists.
	defaultUserID = int64(1)
)

// CallerIdentity resolves the acting user from the X-User-ID header and
// threads it through the request context.
func CallerIdentity() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := defaultUserID
		if header := ctx.GetHeader("X-User-ID"); header != "" {
			if parsed, err := strconv.ParseInt(header, 10, 64); err == nil && parsed > 0 {
				userID = parsed
			}
		}
		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

func callerID(ctx *gin.Context) int64 {
	if id, ok := ctx.Get(userIDKey); ok {
		return id.(int64)
	}
	return defaultUserID
}

// RequestID tags every response with an X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := uuid.NewString()
		ctx.Set(requestIDKey, id)
		ctx.Writer.Header().Set("X-Request-ID", id)
		ctx.Next()
	}
}

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		logger.Info("request",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
			"request_id", ctx.GetString(requestIDKey),
		)
	}
}
