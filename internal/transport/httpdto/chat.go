package httpdto

// CreateChatRequest is used for POST /chats and POST /create_chat
type CreateChatRequest struct {
	ChatName string `json:"chat_name"`
}

type ChatDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
