package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/identity"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/idgen"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/jwt"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/metrics"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/middlewares"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/reducer"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/view"
)

// SessionStore persists the single user record to durable local storage.
type SessionStore interface {
	Restore(ctx context.Context) (models.User, bool, error)
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

type TokenStore interface {
	StoreRefreshToken(ctx context.Context, userID, refreshToken string) error
}

var (
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrFailedToGenerateTokens    = errors.New("failed to generate tokens")
	ErrFailedToStoreRefreshToken = errors.New("failed to store refresh token")
)

const (
	guestPoints      = 100
	guestUsername    = "New Initiate"
	guestEmail       = "guest@fttf.local"
	guestWalletAddr  = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
	adminUsername    = "Core Team"
	adminEmail       = "core@fttf.local"
	adminWalletAddr  = "0x0000000000000000000000000000000000000000"
	adminAvatar      = "https://ui-avatars.com/api/?name=Core+Team&background=2dd4bf&color=1c1917"
	adminWalletPence = 50000_00
	adminPoints      = 50000
	overrideHashCost = bcrypt.DefaultCost
)

// isAdminUsername applies the demo's admin heuristic to a chosen name.
func isAdminUsername(name string) bool {
	lowered := strings.ToLower(name)
	return strings.Contains(lowered, "admin") || strings.Contains(lowered, "core")
}

// Session carries a logged-in user together with the issued token pair.
type Session struct {
	User         models.User
	AccessToken  string
	RefreshToken string
}

// AuthService owns the login/logout lifecycle. Provider logins fall back to a
// fabricated guest identity whenever the external collaborator fails or times
// out; entry is never blocked.
type AuthService struct {
	log             *slog.Logger
	sessions        SessionStore
	tokens          TokenStore
	provider        identity.Provider
	jwtGen          *jwt.Generator
	ids             idgen.Generator
	coordinator     *view.Coordinator
	identityTimeout time.Duration
	overrideHash    []byte
	now             func() time.Time
}

func NewAuthService(
	log *slog.Logger,
	sessions SessionStore,
	tokens TokenStore,
	provider identity.Provider,
	jwtGen *jwt.Generator,
	ids idgen.Generator,
	coordinator *view.Coordinator,
	identityTimeout time.Duration,
	overrideCode string,
) (*AuthService, error) {
	const op = "services.NewAuthService"

	hash, err := bcrypt.GenerateFromPassword([]byte(overrideCode), overrideHashCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AuthService{
		log:             log,
		sessions:        sessions,
		tokens:          tokens,
		provider:        provider,
		jwtGen:          jwtGen,
		ids:             ids,
		coordinator:     coordinator,
		identityTimeout: identityTimeout,
		overrideHash:    hash,
		now:             time.Now,
	}, nil
}

// Login runs the external identity flow. When the provider is unavailable,
// cancelled or slow it degrades to a guest identity carrying the submitted
// username and email.
func (s *AuthService) Login(ctx context.Context, username, email string) (Session, error) {
	const op = "services.AuthService.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	if err := middlewares.CheckInput(username, email); err != nil {
		return Session{}, fmt.Errorf("%s: %w", op, err)
	}

	cctx, cancel := context.WithTimeout(ctx, s.identityTimeout)
	defer cancel()

	if err := s.provider.Connect(cctx); err != nil {
		log.Warn("identity provider unavailable, falling back to guest", slog.String("error", err.Error()))
		return s.LoginGuest(ctx, username, email)
	}

	claims, err := s.provider.UserInfo(cctx)
	if err != nil {
		log.Warn("identity provider returned no claims, falling back to guest", slog.String("error", err.Error()))
		return s.LoginGuest(ctx, username, email)
	}

	// The chain address is optional; a lookup failure is not.
	address, err := s.provider.AccountAddress(cctx)
	if err != nil {
		address = ""
	}

	name := username
	if name == "" {
		name = claims.Name
	}
	if name == "" {
		name = "Anonymous"
	}

	mail := email
	if mail == "" {
		mail = claims.Email
	}

	user := models.User{
		ID:            s.ids.NewID(),
		Username:      name,
		Email:         mail,
		WalletAddress: address,
		Bio:           fmt.Sprintf("Member since %d.", s.now().Year()),
		IsAdmin:       isAdminUsername(name),
		ProfileImage:  claims.AvatarURL,
	}

	return s.establish(ctx, log, user)
}

// LoginGuest fabricates a local guest identity; it is also the fallback exit
// of every failed provider flow.
func (s *AuthService) LoginGuest(ctx context.Context, username, email string) (Session, error) {
	const op = "services.AuthService.LoginGuest"

	log := s.log.With(slog.String("op", op))

	if username == "" {
		username = guestUsername
	}
	if email == "" {
		email = guestEmail
	}

	user := models.User{
		ID:            s.ids.NewID(),
		Username:      username,
		Email:         email,
		Points:        guestPoints,
		WalletAddress: guestWalletAddr,
		Bio:           "Guest account. Simulation mode.",
		IsAdmin:       isAdminUsername(username),
	}

	return s.establish(ctx, log, user)
}

// LoginOverride grants the administrator identity when the submitted access
// code matches the configured override code.
func (s *AuthService) LoginOverride(ctx context.Context, code string) (Session, error) {
	const op = "services.AuthService.LoginOverride"

	log := s.log.With(slog.String("op", op))

	if err := bcrypt.CompareHashAndPassword(s.overrideHash, []byte(code)); err != nil {
		log.Info("override code rejected")
		return Session{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user := models.User{
		ID:            s.ids.NewID(),
		Username:      adminUsername,
		Email:         adminEmail,
		WalletBalance: adminWalletPence,
		Points:        adminPoints,
		WalletAddress: adminWalletAddr,
		Bio:           "Platform Administrator",
		IsAdmin:       true,
		ProfileImage:  adminAvatar,
	}

	return s.establish(ctx, log, user)
}

// Logout clears the persisted record, forces the coordinator back to the
// stream and re-raises the authentication gate.
func (s *AuthService) Logout(ctx context.Context) error {
	const op = "services.AuthService.Logout"

	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.coordinator.Reset()
	metrics.SetSessionActive(false)

	s.log.Info("session cleared", slog.String("op", op))

	return nil
}

// CurrentSession restores the persisted record, if any.
func (s *AuthService) CurrentSession(ctx context.Context) (models.User, bool, error) {
	const op = "services.AuthService.CurrentSession"

	user, found, err := s.sessions.Restore(ctx)
	if err != nil {
		return models.User{}, false, fmt.Errorf("%s: %w", op, err)
	}
	if found {
		s.coordinator.Authenticate()
	}

	return user, found, nil
}

// establish is the single exit of every accepted login: sanitize, persist,
// issue tokens, drop the gate.
func (s *AuthService) establish(ctx context.Context, log *slog.Logger, user models.User) (Session, error) {
	const op = "services.AuthService.establish"

	user = reducer.SanitizeIncoming(user)

	if err := s.sessions.Save(ctx, user); err != nil {
		return Session{}, fmt.Errorf("%s: %w", op, err)
	}

	accessToken, refreshToken, err := s.jwtGen.GeneratePair(user.ID)
	if err != nil {
		log.Error("failed to generate tokens", slog.String("error", err.Error()))
		return Session{}, fmt.Errorf("%s: %w", op, ErrFailedToGenerateTokens)
	}

	if err := s.tokens.StoreRefreshToken(ctx, user.ID, refreshToken); err != nil {
		log.Error("failed to store refresh token", slog.String("error", err.Error()))
		return Session{}, fmt.Errorf("%s: %w", op, ErrFailedToStoreRefreshToken)
	}

	s.coordinator.Authenticate()
	metrics.SetSessionActive(true)

	log.Info("user logged in", slog.String("user_id", user.ID), slog.Bool("is_admin", user.IsAdmin))

	return Session{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
