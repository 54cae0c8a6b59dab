package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/services"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/view"
)

type ViewHandler struct {
	log         *slog.Logger
	coordinator *view.Coordinator
	userService UserService
}

func NewViewHandler(log *slog.Logger, coordinator *view.Coordinator, userService UserService) *ViewHandler {
	return &ViewHandler{
		log:         log,
		coordinator: coordinator,
		userService: userService,
	}
}

// GetView
// @Summary Get the active view and gate state
// @Tags view
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any "Current view"
// @Router /api/view [get]
func (h *ViewHandler) GetView(c *gin.Context) {
	current, authenticated := h.coordinator.Current()

	c.JSON(http.StatusOK, gin.H{
		"view":          string(current),
		"authenticated": authenticated,
	})
}

// Navigate
// @Summary Move to another view
// @Description The admin view requires the administrator flag; nothing is reachable while the gate is up.
// @Tags view
// @Security BearerAuth
// @Produce json
// @Param view path string true "Target view" Enums(stream, profile, shop, admin)
// @Success 200 {object} map[string]any "New active view"
// @Failure 400 {object} dto.ErrorResponse "Unknown view or invalid transition"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /api/view/{view} [post]
func (h *ViewHandler) Navigate(c *gin.Context) {
	target, err := view.Parse(c.Param("view"))
	if err != nil {
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

	if err := h.coordinator.NavigateTo(target, user); err != nil {
		switch {
		case errors.Is(err, view.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		case errors.Is(err, view.ErrViewForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		case errors.Is(err, view.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid view transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	current, _ := h.coordinator.Current()

	c.JSON(http.StatusOK, gin.H{"view": string(current)})
}
