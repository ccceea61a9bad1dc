// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"roomchat/internal/services"
	"roomchat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	info, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewMessageResponse("User registered successfully.", toUserDTO(info)))
}

// Login handles user authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.LoginEnvelope{
		Response: httpdto.NewMessageResponse("Login successful.", httpdto.LoginResponse{
			UserID:      res.User.ID,
			Username:    res.User.Username,
			AccessToken: res.AccessToken,
			ExpiresIn:   res.ExpiresIn,
		}),
		UserID: res.User.ID,
	})
}
