package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/dto"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/metrics"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/reducer"
)

// Catalog looks up immutable reference data.
type Catalog interface {
	ProductByID(id string) (models.Product, bool)
	EventByID(id string) (models.Event, bool)
}

var (
	ErrNoActiveSession      = errors.New("no active session")
	ErrProductNotFound      = errors.New("product not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrRewardAlreadyClaimed = errors.New("subscription reward already claimed")
)

// UserService drives every mutation of the current user: restore, reduce,
// save. Persistence is the explicit boundary; no ambient user state exists
// anywhere else.
type UserService struct {
	log      *slog.Logger
	sessions SessionStore
	catalog  Catalog
}

func NewUserService(log *slog.Logger, sessions SessionStore, catalog Catalog) *UserService {
	return &UserService{
		log:      log,
		sessions: sessions,
		catalog:  catalog,
	}
}

// Purchase buys a product with the chosen tender. Rejections leave the
// persisted record untouched.
func (s *UserService) Purchase(ctx context.Context, productID string, tender models.Tender) (models.User, error) {
	const op = "services.UserService.Purchase"

	log := s.log.With(
		slog.String("op", op),
		slog.String("product_id", productID),
		slog.String("tender", string(tender)),
	)

	user, err := s.current(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	product, ok := s.catalog.ProductByID(productID)
	if !ok {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrProductNotFound)
	}

	next, err := reducer.ApplyPurchase(user, product, tender)
	if err != nil {
		metrics.RecordPurchase(string(tender), "rejected")
		log.Info("purchase rejected", slog.String("reason", err.Error()))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.Save(ctx, next); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordPurchase(string(tender), "accepted")
	log.Info("purchase accepted", slog.String("product", product.Name))

	return next, nil
}

// UseAsset consumes one unit of an inventory asset. Using an empty or unknown
// asset is a no-op.
func (s *UserService) UseAsset(ctx context.Context, assetID string) (models.User, error) {
	const op = "services.UserService.UseAsset"

	user, err := s.current(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	next := reducer.ConsumeAsset(user, assetID)

	if err := s.sessions.Save(ctx, next); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return next, nil
}

// ClaimSubscriptionReward grants the stream subscription reward at most once
// per login session. The guard lives on the persisted record, which dies at
// logout, so a fresh session can claim again.
func (s *UserService) ClaimSubscriptionReward(ctx context.Context) (models.User, error) {
	const op = "services.UserService.ClaimSubscriptionReward"

	user, err := s.current(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if user.RewardClaimed {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrRewardAlreadyClaimed)
	}

	next := reducer.AwardSubscription(user)
	next.RewardClaimed = true

	if err := s.sessions.Save(ctx, next); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription reward granted", slog.String("op", op), slog.Int("points", next.Points))

	return next, nil
}

// ToggleEventSubscription subscribes to or unsubscribes from a scheduled
// event.
func (s *UserService) ToggleEventSubscription(ctx context.Context, eventID string) (models.User, error) {
	const op = "services.UserService.ToggleEventSubscription"

	user, err := s.current(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, ok := s.catalog.EventByID(eventID); !ok {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrEventNotFound)
	}

	next := user
	next.SubscribedEventIDs = make([]string, 0, len(user.SubscribedEventIDs)+1)
	subscribed := false
	for _, id := range user.SubscribedEventIDs {
		if id == eventID {
			subscribed = true
			continue
		}
		next.SubscribedEventIDs = append(next.SubscribedEventIDs, id)
	}
	if !subscribed {
		next.SubscribedEventIDs = append(next.SubscribedEventIDs, eventID)
	}

	if err := s.sessions.Save(ctx, next); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return next, nil
}

// UpdateProfile applies a partial profile edit; nil fields are untouched.
func (s *UserService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (models.User, error) {
	const op = "services.UserService.UpdateProfile"

	user, err := s.current(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	next := user
	if req.Bio != nil {
		next.Bio = *req.Bio
	}
	if req.ProfileImage != nil {
		next.ProfileImage = *req.ProfileImage
	}
	if req.Style != nil {
		next.ProfileStyle = *req.Style
	}
	if req.Following != nil {
		following := make([]string, len(*req.Following))
		copy(following, *req.Following)
		next.Following = following
	}

	next = reducer.SanitizeIncoming(next)

	if err := s.sessions.Save(ctx, next); err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return next, nil
}

// Info returns the current user record.
func (s *UserService) Info(ctx context.Context) (models.User, error) {
	const op = "services.UserService.Info"

	user, err := s.current(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserService) current(ctx context.Context) (models.User, error) {
	user, found, err := s.sessions.Restore(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrNoActiveSession
	}

	return user, nil
}
