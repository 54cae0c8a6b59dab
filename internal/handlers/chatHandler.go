package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/dto"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/services"
)

type ChatService interface {
	List(ctx context.Context) ([]models.ChatMessage, error)
	Post(ctx context.Context, username, text string) (models.ChatMessage, error)
	Delete(ctx context.Context, messageID string, requester models.User) error
}

type ChatHandler struct {
	log         *slog.Logger
	chatService ChatService
	userService UserService
}

func NewChatHandler(log *slog.Logger, chatService ChatService, userService UserService) *ChatHandler {
	return &ChatHandler{
		log:         log,
		chatService: chatService,
		userService: userService,
	}
}

// GetMessages
// @Summary List stream chat messages
// @Tags chat
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ChatMessage "Messages"
// @Router /api/chat [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	messages, err := h.chatService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// PostMessage
// @Summary Post a chat message as the current user
// @Tags chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param message body dto.ChatMessageRequest true "Message text"
// @Success 201 {object} models.ChatMessage "Posted message"
// @Failure 401 {object} dto.ErrorResponse "No active session"
// @Router /api/chat [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var input dto.ChatMessageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Info(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	msg, err := h.chatService.Post(c.Request.Context(), user.Username, input.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// DeleteMessage
// @Summary Delete a chat message
// @Description Users delete their own messages; admins delete anything.
// @Tags chat
// @Security BearerAuth
// @Produce json
// @Param message path string true "Message id"
// @Success 200 {string} string "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Unknown message"
// @Router /api/chat/{message} [delete]
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	messageID := c.Param("message")

	user, err := h.userService.Info(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if err := h.chatService.Delete(c.Request.Context(), messageID, user); err != nil {
		switch {
		case errors.Is(err, services.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		case errors.Is(err, services.ErrMessageForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete another user's message"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Message deleted"})
}
