package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/victorivanov/famhub/internal/api"
	"github.com/victorivanov/famhub/internal/auth"
	"github.com/victorivanov/famhub/internal/config"
	"github.com/victorivanov/famhub/internal/database"
	redisclient "github.com/victorivanov/famhub/internal/redis"
	"github.com/victorivanov/famhub/internal/service"
	"github.com/victorivanov/famhub/internal/storage"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	// --- Infrastructure ---

	if err := database.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	mongoDB := mongoClient.Database(cfg.MongoDatabase)
	if err := database.EnsureMessageIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}

	rdb, err := redisclient.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	blobStore, err := storage.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket)
	if err != nil {
		log.Fatalf("minio: %v", err)
	}

	tokenSvc := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	// --- Repositories ---

	users := database.NewUserRepository(pool)
	channels := database.NewChannelRepository(pool)
	messages := database.NewMessageRepository(mongoDB)

	// --- Services ---

	authSvc := service.NewAuthService(users, tokenSvc)
	channelSvc := service.NewChannelService(channels)
	messageSvc := service.NewMessageService(messages, users, channelSvc)
	uploadSvc := service.NewUploadService(blobStore)

	// --- Handlers ---

	deps := &api.Dependencies{
		Auth:         api.NewAuthHandler(authSvc),
		Channels:     api.NewChannelHandler(channelSvc),
		Messages:     api.NewMessageHandler(messageSvc),
		Uploads:      api.NewUploadHandler(uploadSvc),
		TokenService: tokenSvc,
		Redis:        rdb,
	}

	// --- Echo ---

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	api.SetupRouter(e, deps)

	// --- Start ---

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("famhub starting", "addr", cfg.ServerAddr)
		if err := e.Start(cfg.ServerAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-sigCtx.Done()
	slog.Info("shutting down")
	if err := e.Shutdown(context.Background()); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
