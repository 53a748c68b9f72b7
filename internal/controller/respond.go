package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNilRepository = errors.New("repository cannot be nil")
)

// Envelope is the response shape shared by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(ctx *gin.Context, data any, message string) {
	ctx.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

func respondCreated(ctx *gin.Context, data any, message string) {
	ctx.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, Envelope{Error: message})
}

func notFound(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusNotFound, Envelope{Error: message})
}

func internalError(ctx *gin.Context, message string, err error) {
	detail := message
	if err != nil {
		detail = message + ": " + err.Error()
	}
	ctx.JSON(http.StatusInternalServerError, Envelope{Error: detail})
}
