package handler

import (
	"net/http"
	"time"

	"roomchat/internal/domain/message"
	"roomchat/internal/services"
	"roomchat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send handles POST /send_message; chat_id in the body is optional.
func (h *MessageHandler) Send(c *gin.Context) {
	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}
	h.send(c, req)
}

// SendToChat handles POST /chats/:id/messages
func (h *MessageHandler) SendToChat(c *gin.Context) {
	chatID, err := parseID(c, "id")
	if err != nil {
		badRequest(c, "invalid chat id")
		return
	}

	var req httpdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}
	id := httpdto.NumericID(chatID)
	req.ChatID = &id
	h.send(c, req)
}

func (h *MessageHandler) send(c *gin.Context, req httpdto.SendMessageRequest) {
	userID := uint64(req.UserID)
	if userID == 0 {
		userID, _ = services.UserIDFromContext(c.Request.Context())
	}

	view, err := h.service.SendMessage(c.Request.Context(), services.SendMessageInput{
		ChatID:    req.ChatID.Ptr(),
		UserID:    userID,
		Content:   req.Content,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpdto.NewMessageResponse("Message sent successfully.", toMessageDTO(view)))
}

// List handles GET /messages
func (h *MessageHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// ListByChat handles GET /chats/:id/messages and GET /get_messages/:id
func (h *MessageHandler) ListByChat(c *gin.Context) {
	chatID, err := parseID(c, "id")
	if err != nil {
		badRequest(c, "invalid chat id")
		return
	}
	h.list(c, &chatID)
}

// list writes the messages as a bare array, oldest first.
func (h *MessageHandler) list(c *gin.Context, chatID *uint64) {
	views, err := h.service.ListMessages(c.Request.Context(), chatID)
	if err != nil {
		writeError(c, err)
		return
	}

	items := lo.Map(views, func(item message.View, _ int) httpdto.MessageDTO {
		return toMessageDTO(item)
	})
	c.JSON(http.StatusOK, items)
}

func toMessageDTO(v message.View) httpdto.MessageDTO {
	return httpdto.MessageDTO{
		ID:        v.ID,
		ChatID:    v.ChatID,
		UserID:    v.UserID,
		Username:  v.Username,
		Content:   v.Content,
		Timestamp: v.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
