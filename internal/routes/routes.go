package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-openapi/runtime/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/handlers"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/middlewares"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Feed      *handlers.FeedHandler
	View      *handlers.ViewHandler
	Chat      *handlers.ChatHandler
	Assistant *handlers.AssistantHandler
	Stream    *handlers.StreamHandler
}

func InitRoutes(h Handlers, authMiddleware *middlewares.AuthMiddleware, sessions middlewares.SessionReader) *gin.Engine {
	router := gin.Default()

	_ = router.SetTrustedProxies(nil)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.StaticFile("/swagger.yaml", "./swagger.yaml")

	opts := middleware.SwaggerUIOpts{SpecURL: "/swagger.yaml"}
	sh := middleware.SwaggerUI(opts, nil)

	router.GET("/swagger/*any", func(c *gin.Context) {
		sh.ServeHTTP(c.Writer, c.Request)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// public routes
	api.POST("/auth", h.Auth.Auth)
	api.POST("/auth/override", h.Auth.Override)
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// protected routes
	api.Use(authMiddleware.Handle())
	{
		api.GET("/session", h.Auth.Session)
		api.POST("/logout", h.Auth.Logout)

		api.GET("/info", h.User.GetUserInfo)
		api.POST("/shop/buy", h.User.BuyProduct)
		api.POST("/assets/:asset/use", h.User.UseAsset)
		api.POST("/subscribe", h.User.ClaimReward)
		api.POST("/events/:event/toggle", h.User.ToggleEvent)
		api.PATCH("/profile", h.User.UpdateProfile)

		api.GET("/view", h.View.GetView)
		api.POST("/view/:view", h.View.Navigate)

		api.GET("/feed", h.Feed.GetFeed)

		api.GET("/chat", h.Chat.GetMessages)
		api.POST("/chat", h.Chat.PostMessage)
		api.DELETE("/chat/:message", h.Chat.DeleteMessage)

		api.GET("/assistant", h.Assistant.Greeting)
		api.POST("/assistant", h.Assistant.Ask)

		api.GET("/stream", h.Stream.GetStream)
		api.GET("/shop/catalog", h.Stream.GetCatalog)
		api.GET("/events", h.Stream.GetEvents)
		api.GET("/tour", h.Stream.GetTour)
	}

	// admin routes
	admin := api.Group("")
	admin.Use(middlewares.RequireAdmin(sessions))
	{
		admin.POST("/feed", h.Feed.AddFeedItem)
	}

	return router
}
