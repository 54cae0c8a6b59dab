package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/dto"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/middlewares"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/services"
)

type AuthService interface {
	Login(ctx context.Context, username, email string) (services.Session, error)
	LoginGuest(ctx context.Context, username, email string) (services.Session, error)
	LoginOverride(ctx context.Context, code string) (services.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (models.User, bool, error)
}

type AuthHandler struct {
	log         *slog.Logger
	authService AuthService
}

func NewAuthHandler(log *slog.Logger, authService AuthService) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: authService,
	}
}

// Auth
// @Summary Log in via the identity provider, or as a guest
// @Description Runs the external identity flow. Provider failures degrade to a guest identity; set guest=true to skip the provider entirely.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   auth body dto.AuthRequest true "Login form"
// @Success 200 {object} dto.SessionResponse "Session established"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /api/auth [post]
func (h *AuthHandler) Auth(c *gin.Context) {
	var input dto.AuthRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		session services.Session
		err     error
	)
	if input.Guest {
		session, err = h.authService.LoginGuest(c.Request.Context(), input.Username, input.Email)
	} else {
		session, err = h.authService.Login(c.Request.Context(), input.Username, input.Email)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFailedToGenerateTokens) || errors.Is(err, services.ErrFailedToStoreRefreshToken):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		case errors.Is(err, middlewares.ErrEmptyField) ||
			errors.Is(err, middlewares.ErrUsernameTooShort) ||
			errors.Is(err, middlewares.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "Authorization successful",
		"user":         session.User,
		"token":        session.AccessToken,
		"refreshToken": session.RefreshToken,
		"time":         time.Now().Format(time.RFC3339),
	})
}

// Override
// @Summary Log in as the platform administrator
// @Description Grants the Core Team identity when the submitted access code matches.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   override body dto.OverrideRequest true "Access code"
// @Success 200 {object} dto.SessionResponse "Session established"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Code rejected"
// @Router /api/auth/override [post]
func (h *AuthHandler) Override(c *gin.Context) {
	var input dto.OverrideRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authService.LoginOverride(c.Request.Context(), input.Code)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid access code"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "Override accepted",
		"user":         session.User,
		"token":        session.AccessToken,
		"refreshToken": session.RefreshToken,
		"time":         time.Now().Format(time.RFC3339),
	})
}

// Logout
// @Summary End the current session
// @Description Clears the persisted record and returns the client to the locked stream.
// @Tags auth
// @Security BearerAuth
// @Produce  json
// @Success 200 {string} string "Session cleared"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Session cleared",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// Session
// @Summary Restore the persisted session, if any
// @Tags auth
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} models.User "Active session"
// @Failure 404 {object} dto.ErrorResponse "No session"
// @Router /api/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	user, found, err := h.authService.CurrentSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "No active session"})
		return
	}

	c.JSON(http.StatusOK, user)
}
