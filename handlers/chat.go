package handlers

import (
	"net/http"

	"grindsphere/models"
	"grindsphere/services/chat"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ChatHandler exposes messaging endpoints, including the live websocket
// stream.
type ChatHandler struct {
	ChatSvc *chat.DefaultChatService
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens via the Bearer token; cross-origin upgrades are fine.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SendMessageHandler appends a message to the thread with the receiver.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.ChatSvc.Send(c, currentUserID(c), req)
	if err != nil {
		logger.Error("Failed to send message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// InboxHandler lists the caller's conversations, most recent first.
func (h *ChatHandler) InboxHandler(c *gin.Context) {
	logger := getLogger(c)

	entries, err := h.ChatSvc.Inbox(currentUserID(c))
	if err != nil {
		logger.Error("Failed to list conversations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": entries})
}

// HistoryHandler returns a thread's messages oldest first.
func (h *ChatHandler) HistoryHandler(c *gin.Context) {
	logger := getLogger(c)

	msgs, err := h.ChatSvc.History(currentUserID(c), c.Param("id"))
	if err != nil {
		logger.Error("Failed to fetch messages",
			zap.String("conversationID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// StreamHandler upgrades to a websocket and relays the caller's live messages
// until the connection closes.
func (h *ChatHandler) StreamHandler(c *gin.Context) {
	logger := getLogger(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("Websocket upgrade failed", zap.Error(err))
		return
	}
	h.ChatSvc.StreamMessages(c.Request.Context(), conn, currentUserID(c))
}
