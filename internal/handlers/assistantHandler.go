package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/dto"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/services"
)

type AssistantService interface {
	Greeting(username string) string
	Ask(ctx context.Context, username, message string) (string, error)
}

type AssistantHandler struct {
	log              *slog.Logger
	assistantService AssistantService
	userService      UserService
}

func NewAssistantHandler(log *slog.Logger, assistantService AssistantService, userService UserService) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		assistantService: assistantService,
		userService:      userService,
	}
}

// Greeting
// @Summary Get the help assistant's opening line
// @Tags assistant
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AssistantResponse "Greeting"
// @Router /api/assistant [get]
func (h *AssistantHandler) Greeting(c *gin.Context) {
	user, err := h.userService.Info(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AssistantResponse{Reply: h.assistantService.Greeting(user.Username)})
}

// Ask
// @Summary Ask the help assistant a question
// @Description The canned reply is delivered after a short think delay.
// @Tags assistant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param question body dto.AssistantRequest true "Question"
// @Success 200 {object} dto.AssistantResponse "Reply"
// @Failure 401 {object} dto.ErrorResponse "No active session"
// @Router /api/assistant [post]
func (h *AssistantHandler) Ask(c *gin.Context) {
	var input dto.AssistantRequest
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

	reply, err := h.assistantService.Ask(c.Request.Context(), user.Username, input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AssistantResponse{Reply: reply})
}
