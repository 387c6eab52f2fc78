package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/victorivanov/famhub/internal/auth"
	"github.com/victorivanov/famhub/internal/redis"
)

// Dependencies holds all handler instances and middleware for route wiring.
type Dependencies struct {
	Auth     *AuthHandler
	Channels *ChannelHandler
	Messages *MessageHandler
	Uploads  *UploadHandler

	TokenService *auth.TokenService
	Redis        *redis.Client
}

// SetupRouter registers all API routes on the Echo instance.
func SetupRouter(e *echo.Echo, deps *Dependencies) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	v1 := e.Group("/api/v1")

	// Auth routes — no auth middleware, stricter rate limit.
	authGroup := v1.Group("/auth",
		RateLimitMiddleware(deps.Redis, 10, time.Minute),
	)
	authGroup.POST("/register", deps.Auth.Register)
	authGroup.POST("/login", deps.Auth.Login)

	// Protected routes — require a bearer token + general rate limit.
	authMw := deps.TokenService.Middleware()
	protected := v1.Group("", authMw,
		RateLimitMiddleware(deps.Redis, 100, time.Minute),
	)

	protected.GET("/auth/me", deps.Auth.Me)
	protected.PUT("/auth/profile", deps.Auth.UpdateProfile)

	protected.GET("/channels", deps.Channels.List)
	protected.POST("/channels", deps.Channels.Create)
	protected.GET("/channels/:id", deps.Channels.Get)

	protected.GET("/channels/:id/messages", deps.Messages.List)
	protected.POST("/channels/:id/messages", deps.Messages.Create)

	protected.POST("/uploads", deps.Uploads.Create)
}
