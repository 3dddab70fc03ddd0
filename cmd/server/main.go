package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/config"
	"github.com/kalyan0128/Humanlike-awarebot/internal/database"
	"github.com/kalyan0128/Humanlike-awarebot/internal/handlers"
	"github.com/kalyan0128/Humanlike-awarebot/internal/middleware"
	"github.com/kalyan0128/Humanlike-awarebot/internal/routes"
	"github.com/kalyan0128/Humanlike-awarebot/internal/seeds"
	"github.com/kalyan0128/Humanlike-awarebot/internal/storage"
	"github.com/kalyan0128/Humanlike-awarebot/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting HumanLike-AwareBot Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.Connect()
	database.InitRedis()

	store := storage.New(db)

	logger.Info().Msg("🔄 Running Database Migrations...")
	if err := store.Migrate(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}

	if err := seeds.Run(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed content")
	}

	h := handlers.New(store)
	auth := middleware.AuthMiddleware(store)

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(authGroup, h, auth)

		routes.RegisterUserRoutes(api, h, auth)
		routes.RegisterTrainingRoutes(api, h, auth)
		routes.RegisterContentRoutes(api, h, auth)
		routes.RegisterChatRoutes(api, h, auth)
	}

	// Health check with DB and Redis status
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := store.DB().DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status": status,
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("🛑 Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("✅ Server exited gracefully")
}
