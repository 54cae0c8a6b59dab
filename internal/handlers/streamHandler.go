package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/catalog"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/dto"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/playback"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/share"
)

// StreamHandler serves the static surfaces of the client: the live source,
// the shop catalog, scheduled events and the guided tour.
type StreamHandler struct {
	log        *slog.Logger
	playbackID string
	pageURL    string
}

func NewStreamHandler(log *slog.Logger, playbackID, pageURL string) *StreamHandler {
	return &StreamHandler{
		log:        log,
		playbackID: playbackID,
		pageURL:    pageURL,
	}
}

// GetStream
// @Summary Get the live stream source and share targets
// @Description Resolves the configured playback id to an HLS URL, or the holding stream when none is configured.
// @Tags stream
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.StreamResponse "Stream source"
// @Router /api/stream [get]
func (h *StreamHandler) GetStream(c *gin.Context) {
	targets := share.Default(h.pageURL)

	c.JSON(http.StatusOK, dto.StreamResponse{
		Source: playback.Resolve(h.playbackID),
		Share: dto.ShareTargets{
			Twitter:  targets.Twitter,
			Facebook: targets.Facebook,
			Copy:     targets.Copy,
		},
	})
}

// GetCatalog
// @Summary List the shop products
// @Tags stream
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Product "Products"
// @Router /api/shop/catalog [get]
func (h *StreamHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Products())
}

// GetEvents
// @Summary List scheduled events
// @Tags stream
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Event "Events"
// @Router /api/events [get]
func (h *StreamHandler) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Events())
}

// GetTour
// @Summary Get the guided tour steps
// @Tags stream
// @Security BearerAuth
// @Produce json
// @Success 200 {array} catalog.TourStep "Tour steps"
// @Router /api/tour [get]
func (h *StreamHandler) GetTour(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.TourSteps())
}
