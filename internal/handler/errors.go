package handler

import (
	"errors"
	"net/http"
	"strconv"

	"roomchat/internal/services"
	"roomchat/internal/transport/httpdto"
	roomchat_errors "roomchat/pkg/errors"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "internal server error"

// writeError maps a service error to a JSON error body. Unexpected errors
// are attached to the gin context for the error middleware to log and are
// answered with a generic message.
func writeError(c *gin.Context, err error) {
	status := services.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, httpdto.NewErrorResponse(internalErrorMessage, errorCode(err, status)))
		return
	}
	c.JSON(status, httpdto.NewErrorResponse(err.Error(), errorCode(err, status)))
}

func errorCode(err error, status int) string {
	if errors.Is(err, roomchat_errors.ErrDuplicateUser) {
		return "DUPLICATE_USER"
	}
	switch status {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return "INTERNAL_ERROR"
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(message, "INVALID_REQUEST"))
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, roomchat_errors.ErrInvalidInput
	}
	return id, nil
}
