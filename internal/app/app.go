package app

import (
	"context"
	"log/slog"
	"time"

	httpserver "github.com/monsieurbulb/Four-To-The-Floor/internal/app/http-server"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/catalog"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/config"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/handlers"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/identity"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/idgen"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/jwt"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/middlewares"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/repository/memory"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/repository/postgres"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/repository/redis"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/routes"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/services"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/view"
)

type App struct {
	HTTPServer *httpserver.Server
}

// New wires the whole application. Redis and postgres are optional backends;
// without them the session and feed live in process memory, which matches the
// demo deployment.
func New(log *slog.Logger, cfg *config.Config) *App {
	if err := catalog.Validate(); err != nil {
		panic(err)
	}

	refreshTTL := time.Duration(cfg.JWT.RefreshExpirationDays) * 24 * time.Hour

	var (
		sessionStore services.SessionStore
		tokenStore   services.TokenStore
	)
	if cfg.Redis.RedisConn != "" {
		redisDB, err := redis.InitRedis(log, cfg.Redis.RedisConn, cfg.Redis.RedisPassword, cfg.Redis.RedisDBNumber, refreshTTL)
		if err != nil {
			panic(err)
		}
		sessionStore = redisDB
		tokenStore = redisDB
	} else {
		mem := memory.NewSessionStorage()
		sessionStore = mem
		tokenStore = mem
	}

	var feedRepo services.FeedRepository
	if cfg.Database.PostgresConn != "" {
		storage, err := postgres.NewPostgres(context.Background(), cfg.Database.PostgresConn)
		if err != nil {
			panic(err)
		}
		feedRepo = storage
	} else {
		feedRepo = memory.NewFeedStorage(catalog.SeedFeed())
	}

	jwtGen := jwt.NewGenerator(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessExpirationMinutes)*time.Minute,
		refreshTTL,
	)

	ids := idgen.UUID{}
	coordinator := view.NewCoordinator(log)
	provider := identity.NewSimulated()

	authService, err := services.NewAuthService(
		log,
		sessionStore,
		tokenStore,
		provider,
		jwtGen,
		ids,
		coordinator,
		cfg.Identity.Timeout,
		cfg.Admin.OverrideCode,
	)
	if err != nil {
		panic(err)
	}

	userService := services.NewUserService(log, sessionStore, catalog.Static{})
	feedService := services.NewFeedService(log, feedRepo, ids, nil)
	chatService := services.NewChatService(log, ids, nil)
	assistantService := services.NewAssistantService(log, cfg.Assistant.ReplyDelay)

	userHandler := handlers.NewUserHandler(log, userService, coordinator)

	h := routes.Handlers{
		Auth:      handlers.NewAuthHandler(log, authService),
		User:      userHandler,
		Feed:      handlers.NewFeedHandler(log, feedService),
		View:      handlers.NewViewHandler(log, coordinator, userService),
		Chat:      handlers.NewChatHandler(log, chatService, userService),
		Assistant: handlers.NewAssistantHandler(log, assistantService, userService),
		Stream:    handlers.NewStreamHandler(log, cfg.Stream.PlaybackID, cfg.Stream.PageURL),
	}

	authMiddleware := middlewares.NewAuthMiddleware(jwtGen)

	r := routes.InitRoutes(h, authMiddleware, sessionStore)

	server := httpserver.NewServer(log, cfg.Server.Address, r)

	return &App{
		HTTPServer: server,
	}
}
