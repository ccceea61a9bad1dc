package handler

import (
	"net/http"
	"time"

	"roomchat/internal/domain/chat"
	"roomchat/internal/services"
	"roomchat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Create handles POST /chats and POST /create_chat
func (h *ChatHandler) Create(c *gin.Context) {
	var req httpdto.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ChatName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewMessageResponse("Chat created successfully.", toChatDTO(created)))
}

// List handles GET /chats and GET /get_chats. The body is a bare array.
func (h *ChatHandler) List(c *gin.Context) {
	chats, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	items := lo.Map(chats, func(item chat.Chat, _ int) httpdto.ChatDTO {
		return toChatDTO(item)
	})
	c.JSON(http.StatusOK, items)
}

// GetByID handles GET /chat/:id
func (h *ChatHandler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		badRequest(c, "invalid chat id")
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toChatDTO(found))
}

func toChatDTO(item chat.Chat) httpdto.ChatDTO {
	return httpdto.ChatDTO{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}
