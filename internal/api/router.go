package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskboard/task-management-api/docs"
	"github.com/taskboard/task-management-api/internal/api/handler"
	"github.com/taskboard/task-management-api/internal/api/middleware"
	"github.com/taskboard/task-management-api/internal/core/domain"
	"github.com/taskboard/task-management-api/internal/core/service"
	mongodb "github.com/taskboard/task-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/taskboard/task-management-api/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the router needs beyond its storage
// handles.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes
// registered. The middleware chain implements the per-operation policy
// table: Authenticate runs globally and never rejects; the route-level
// requirements (RequireAuth, RequireRole, RequireTaskAccess) decide.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authorizer := service.NewAuthorizer(taskRepo, userRepo)
	authService := service.NewAuthService(userRepo, tokenService, log)
	taskService := service.NewTaskService(taskRepo, commentRepo, userRepo, log)
	commentService := service.NewCommentService(commentRepo, taskRepo, userRepo, authorizer, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	commentHandler := handler.NewCommentHandler(commentService)

	loginLimiter := redisdb.NewLoginLimiter(rdb)

	e.Use(middleware.Authenticate(tokenService))

	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	taskAccess := middleware.RequireTaskAccess(authorizer, "id")

	// --- Auth routes (public) ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login, middleware.RateLimit(loginLimiter, log))

	// --- Task routes ---
	tasks := e.Group("/api/tasks")
	tasks.POST("", taskHandler.Create, adminOnly)
	tasks.PUT("/:id", taskHandler.Update, adminOnly)
	tasks.PUT("/:id/status", taskHandler.UpdateStatus, taskAccess)
	tasks.DELETE("/:id", taskHandler.Delete, adminOnly)
	tasks.GET("/:id", taskHandler.Get, taskAccess)
	tasks.GET("/by-author", taskHandler.ListByAuthor, adminOnly)
	tasks.GET("/by-executor", taskHandler.ListByExecutor, adminOnly)

	// --- Comment routes ---
	comments := e.Group("/api/comments", middleware.RequireAuth())
	comments.POST("", commentHandler.Create)
	comments.GET("/by-task/:taskId", commentHandler.ListByTask)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
