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
	"github.com/monsieurbulb/Four-To-The-Floor/internal/reducer"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/services"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/view"
)

type UserService interface {
	Purchase(ctx context.Context, productID string, tender models.Tender) (models.User, error)
	UseAsset(ctx context.Context, assetID string) (models.User, error)
	ClaimSubscriptionReward(ctx context.Context) (models.User, error)
	ToggleEventSubscription(ctx context.Context, eventID string) (models.User, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (models.User, error)
	Info(ctx context.Context) (models.User, error)
}

type UserHandler struct {
	log         *slog.Logger
	userService UserService
	coordinator *view.Coordinator
}

func NewUserHandler(log *slog.Logger, userService UserService, coordinator *view.Coordinator) *UserHandler {
	return &UserHandler{
		log:         log,
		userService: userService,
		coordinator: coordinator,
	}
}

// GetUserInfo godoc
// @Summary Get the current user, active view and reward availability
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.InfoResponse "Current user state"
// @Failure 401 {object} dto.ErrorResponse "No active session"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /api/info [get]
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	user, err := h.userService.Info(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	current, _ := h.coordinator.Current()

	c.JSON(http.StatusOK, dto.InfoResponse{
		User:            user,
		CurrentView:     string(current),
		RewardAvailable: !user.RewardClaimed,
	})
}

// BuyProduct
// @Summary Buy a shop product with cash or points
// @Description Rejected purchases leave the user record untouched.
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param purchase body dto.PurchaseRequest true "Product and tender"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} dto.ErrorResponse "Rejected purchase"
// @Failure 401 {object} dto.ErrorResponse "No active session"
// @Failure 404 {object} dto.ErrorResponse "Unknown product"
// @Router /api/shop/buy [post]
func (h *UserHandler) BuyProduct(c *gin.Context) {
	var input dto.PurchaseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Purchase(c.Request.Context(), input.ProductID, models.Tender(input.Tender))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveSession):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, reducer.ErrInsufficientFunds) ||
			errors.Is(err, reducer.ErrInsufficientPoints) ||
			errors.Is(err, reducer.ErrTenderNotOffered):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Purchase complete",
		"user":    user,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// UseAsset
// @Summary Consume one unit of an inventory asset
// @Description Consuming an empty or unknown asset is a no-op, not an error.
// @Tags user
// @Security BearerAuth
// @Produce json
// @Param asset path string true "Asset id"
// @Success 200 {object} models.User "Updated user"
// @Failure 401 {object} dto.ErrorResponse "No active session"
// @Router /api/assets/{asset}/use [post]
func (h *UserHandler) UseAsset(c *gin.Context) {
	assetID := c.Param("asset")
	if assetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset id is required"})
		return
	}

	user, err := h.userService.UseAsset(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// ClaimReward
// @Summary Claim the stream subscription reward
// @Description Grants bonus points once per login session.
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User "Updated user"
// @Failure 401 {object} dto.ErrorResponse "No active session"
// @Failure 409 {object} dto.ErrorResponse "Already claimed"
// @Router /api/subscribe [post]
func (h *UserHandler) ClaimReward(c *gin.Context) {
	user, err := h.userService.ClaimSubscriptionReward(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveSession):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		case errors.Is(err, services.ErrRewardAlreadyClaimed):
			c.JSON(http.StatusConflict, gin.H{"error": "Reward already claimed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// ToggleEvent
// @Summary Subscribe to or unsubscribe from a scheduled event
// @Tags user
// @Security BearerAuth
// @Produce json
// @Param event path string true "Event id"
// @Success 200 {object} models.User "Updated user"
// @Failure 401 {object} dto.ErrorResponse "No active session"
// @Failure 404 {object} dto.ErrorResponse "Unknown event"
// @Router /api/events/{event}/toggle [post]
func (h *UserHandler) ToggleEvent(c *gin.Context) {
	eventID := c.Param("event")

	user, err := h.userService.ToggleEventSubscription(c.Request.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveSession):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile
// @Summary Apply a partial profile edit
// @Description Omitted fields are left untouched; the result is sanitized before persisting.
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.User "Updated user"
// @Failure 401 {object} dto.ErrorResponse "No active session"
// @Router /api/profile [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var input dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
