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
	"github.com/monsieurbulb/Four-To-The-Floor/internal/repository"
)

type FeedService interface {
	List(ctx context.Context) ([]models.FeedItem, error)
	Add(ctx context.Context, req dto.FeedItemRequest) (models.FeedItem, error)
}

type FeedHandler struct {
	log         *slog.Logger
	feedService FeedService
}

func NewFeedHandler(log *slog.Logger, feedService FeedService) *FeedHandler {
	return &FeedHandler{
		log:         log,
		feedService: feedService,
	}
}

// GetFeed
// @Summary List the archive library, most recent first
// @Tags feed
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.FeedItem "Library entries"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /api/feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	items, err := h.feedService.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrFeedUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Feed temporarily unavailable"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddFeedItem
// @Summary Publish a new library entry (admin only)
// @Description A playback id takes precedence over a text body when both are supplied.
// @Tags feed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body dto.FeedItemRequest true "New entry"
// @Success 201 {object} models.FeedItem "Published entry"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /api/feed [post]
func (h *FeedHandler) AddFeedItem(c *gin.Context) {
	var input dto.FeedItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.feedService.Add(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Feed item published",
		"item":    item,
		"time":    time.Now().Format(time.RFC3339),
	})
}
