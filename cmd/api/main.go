// @title           Task Board API
// @version         1.0
// @description     Token-authenticated REST API for collaborative task boards

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description Type "Token" followed by a space and the API token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"task-board-api/internal/config"
	"task-board-api/internal/database"
	"task-board-api/internal/job"
	"task-board-api/internal/metrics"
	"task-board-api/internal/repository"
	"task-board-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Task Board API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Initialize database; a failed first attempt retries in the
	// background so the pod keeps serving health checks
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	// Initialize Redis token cache (optional)
	if err := database.InitRedis(cfg.Redis, logger); err != nil {
		logger.Warn("Failed to connect to Redis, token cache disabled", zap.Error(err))
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// startWorkers wires everything that needs a live connection:
	// GORM metrics callbacks, the pool-stats and business collectors,
	// and the hourly cleanup of expired tokens. It runs immediately
	// when the database is up at boot, or from the async-connect
	// success path otherwise.
	startWorkers := func(db *gorm.DB) func() {
		database.RegisterMetricsCallbacks(db, m)
		statsDone := database.StartDBStatsCollector(db, m)

		userRepo := repository.NewUserRepository(db)
		boardRepo := repository.NewBoardRepository(db)
		taskRepo := repository.NewTaskRepository(db)

		collector := metrics.NewBusinessMetricsCollector(userRepo, boardRepo, taskRepo, m, logger)
		collector.Start()

		scheduler := cron.New()
		cleanupJob := job.NewTokenCleanupJob(userRepo, m, logger)
		if _, err := scheduler.AddJob("0 * * * *", cleanupJob); err != nil {
			logger.Warn("Failed to schedule token cleanup", zap.Error(err))
		} else {
			scheduler.Start()
		}

		return func() {
			close(statsDone)
			collector.Stop()
			scheduler.Stop()
		}
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second, logger, func(db *gorm.DB) {
			startWorkers(db)
		})
	} else {
		database.SetDB(db)
		logger.Info("Database connected successfully")

		if err := database.AutoMigrate(db); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}

		stopWorkers := startWorkers(db)
		defer stopWorkers()
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             database.GetDB(),
		Redis:          database.GetRedis(),
		Logger:         logger,
		Metrics:        m,
		TokenSecret:    cfg.Auth.TokenSecret,
		TokenTTL:       cfg.Auth.TokenTTL,
		BasePath:       cfg.Server.BasePath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Task Board API started successfully",
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if db := database.GetDB(); db != nil {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
