package handler

import (
	"net/http"
	"time"

	"roomchat/internal/services"
	"roomchat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetByID handles GET /user/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		badRequest(c, "invalid user id")
		return
	}

	info, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserDTO(info))
}

func toUserDTO(info services.UserInfo) httpdto.UserDTO {
	return httpdto.UserDTO{
		ID:       info.ID,
		Username: info.Username,
		JoinedAt: info.CreatedAt.Format(time.RFC3339),
	}
}
