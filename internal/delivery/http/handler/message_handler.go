package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	entity "local-market/internal/domain"
	service "local-market/internal/service"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// GET /api/messages/conversations
func (h *MessageHandler) GetConversations(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	conversations, err := h.messageService.GetConversations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if conversations == nil {
		conversations = []entity.Conversation{}
	}
	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// GET /api/messages/:userId
// Fetching a thread marks the other side's messages as read.
func (h *MessageHandler) GetThread(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	otherUserID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	messages, err := h.messageService.GetThread(userID, otherUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if messages == nil {
		messages = []entity.MessageWithSender{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// POST /api/messages
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	message, err := h.messageService.SendMessage(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error sending message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}
