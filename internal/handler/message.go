package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"back2me/internal/hub"
	"back2me/internal/middleware"
	"back2me/internal/model"
	"back2me/internal/store"
)

type MessageHandler struct {
	Store *store.Store
	Hub   *hub.Hub
}

type sendMessageBody struct {
	ConversationID int64  `json:"conversation_id" binding:"required"`
	ReceiverID     int64  `json:"receiver_id" binding:"required"`
	Message        string `json:"message" binding:"required"`
}

// Send appends a message to a conversation. The sender is always the
// authenticated caller; the conversation id is taken as-is from the body.
func (h *MessageHandler) Send(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var body sendMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	msg := h.Store.SendMessage(body.ConversationID, sess.UserID, body.ReceiverID, body.Message, time.Now().Unix())
	h.notify(msg)

	c.JSON(http.StatusOK, gin.H{"success": true, "message_id": msg.ID, "message": msg})
}

func (h *MessageHandler) ListForConversation(c *gin.Context) {
	conversationID, err := strconv.ParseInt(c.Param("conversation_id"), 10, 64)
	if err != nil {
		badRequest(c, err)
		return
	}

	msgs := h.Store.ConversationMessages(conversationID)
	c.JSON(http.StatusOK, gin.H{"success": true, "messages": msgs})
}

func (h *MessageHandler) Conversations(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	convs := h.Store.ConversationsForUser(sess.UserID)
	c.JSON(http.StatusOK, gin.H{"success": true, "conversations": convs})
}

// notify pushes the new message to any open sockets of both participants.
// The HTTP response does not depend on delivery.
func (h *MessageHandler) notify(msg model.Message) {
	if h.Hub == nil {
		return
	}

	payload, err := json.Marshal(gin.H{"type": "new-message", "message": msg})
	if err != nil {
		return
	}
	h.Hub.Broadcast(msg.ReceiverID, payload)
	if msg.SenderID != msg.ReceiverID {
		h.Hub.Broadcast(msg.SenderID, payload)
	}
}
