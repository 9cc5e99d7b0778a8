package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	// swaggerFiles "github.com/swaggo/files"
	// ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-board-api/internal/database"
	"task-board-api/internal/handler"
	"task-board-api/internal/metrics"
	"task-board-api/internal/middleware"
	"task-board-api/internal/repository"
	"task-board-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	TokenSecret    string
	TokenTTL       time.Duration
	BasePath       string
	AllowedOrigins []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "task-board-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if !database.IsConnected(cfg.DB) {
			c.JSON(503, gin.H{"status": "not ready", "service": "task-board-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "task-board-api"})
	})

	// Swagger documentation (disabled for faster builds)
	// r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.Redis, cfg.TokenSecret, cfg.TokenTTL, cfg.Metrics, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, userRepo, commentRepo, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, boardRepo, commentRepo, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, taskRepo, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	boardHandler := handler.NewBoardHandler(boardService)
	taskHandler := handler.NewTaskHandler(taskService)
	commentHandler := handler.NewCommentHandler(commentService)

	authMiddleware := middleware.Auth(authService)

	// API routes group
	api := r.Group(cfg.BasePath)

	// ============================================================
	// Auth routes (registration and login are public)
	// ============================================================
	api.POST("/registration/", authHandler.Register)
	api.POST("/login/", authHandler.Login)
	api.GET("/email-check/", authMiddleware, authHandler.EmailCheck)

	// ============================================================
	// Board routes
	// ============================================================
	boards := api.Group("/boards", authMiddleware)
	{
		boards.GET("/", boardHandler.ListBoards)
		boards.POST("/", boardHandler.CreateBoard)
		boards.GET("/:boardId/", boardHandler.GetBoard)
		boards.PATCH("/:boardId/", boardHandler.UpdateBoard)
		boards.DELETE("/:boardId/", boardHandler.DeleteBoard)
	}

	// ============================================================
	// Task routes
	// ============================================================
	tasks := api.Group("/tasks", authMiddleware)
	{
		tasks.POST("/", taskHandler.CreateTask)
		tasks.GET("/assigned-to-me/", taskHandler.AssignedToMe)
		tasks.GET("/reviewing/", taskHandler.Reviewing)
		tasks.GET("/:taskId/", taskHandler.GetTask)
		tasks.PATCH("/:taskId/", taskHandler.UpdateTask)
		tasks.PUT("/:taskId/", taskHandler.UpdateTask)
		tasks.DELETE("/:taskId/", taskHandler.DeleteTask)

		tasks.GET("/:taskId/comments/", commentHandler.ListComments)
		tasks.POST("/:taskId/comments/", commentHandler.CreateComment)
		tasks.DELETE("/:taskId/comments/:commentId/", commentHandler.DeleteComment)
	}

	return r
}
