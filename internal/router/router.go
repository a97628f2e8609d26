package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board-api/internal/config"
	"github.com/yukikurage/project-board-api/internal/constants"
	apierrors "github.com/yukikurage/project-board-api/internal/errors"
	"github.com/yukikurage/project-board-api/internal/handlers"
	"github.com/yukikurage/project-board-api/internal/middleware"
	"github.com/yukikurage/project-board-api/internal/repository"
	"github.com/yukikurage/project-board-api/internal/services"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a gin engine
func NewRouter(cfg *config.Config, db *gorm.DB, logger *slog.Logger) (*gin.Engine, error) {
	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RecoveryWithLog(logger))

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", constants.HeaderCurrentUserID, constants.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", constants.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(middleware.CurrentUser())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	postRepo := repository.NewPostRepository(db)
	readRepo := repository.NewReadStatusRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Initialize AI service
	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey, projectRepo)
	}

	// Initialize handlers
	dataHandler := handlers.NewDataHandler(services.NewSnapshotService(snapshotRepo))
	userHandler := handlers.NewUserHandler(services.NewUserService(userRepo))
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(projectRepo))
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(taskRepo), aiService)
	commentHandler := handlers.NewCommentHandler(services.NewCommentService(commentRepo))
	postHandler := handlers.NewPostHandler(services.NewPostService(postRepo), services.NewReadTrackingService(readRepo))
	sessionHandler := handlers.NewSessionHandler()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Project board API is running",
		})
	})

	withID := middleware.RequireIDParam()

	api := r.Group("/api")
	{
		api.GET("/data", dataHandler.GetData)

		api.POST("/user", userHandler.AddUser)
		api.PUT("/user/:id", withID, userHandler.UpdateUser)
		api.DELETE("/user/:id", withID, userHandler.DeleteUser)

		api.POST("/project", projectHandler.AddProject)
		api.PUT("/project/:id", withID, projectHandler.UpdateProject)
		api.DELETE("/project/:id", withID, projectHandler.DeleteProject)
		api.PUT("/project/:id/status", withID, projectHandler.UpdateProjectStatus)
		api.POST("/project/:id/task", withID, taskHandler.AddTask)
		api.POST("/project/:id/task/suggest", withID, taskHandler.SuggestTasks)
		api.POST("/project/:id/comment", withID, commentHandler.AddComment)

		api.PUT("/task/:id", withID, taskHandler.UpdateTask)
		api.DELETE("/task/:id", withID, taskHandler.DeleteTask)

		api.PUT("/comment/:id", withID, commentHandler.UpdateComment)
		api.DELETE("/comment/:id", withID, commentHandler.DeleteComment)

		api.POST("/post", postHandler.AddPost)
		api.PUT("/post/:id", withID, postHandler.UpdatePost)
		api.DELETE("/post/:id", withID, postHandler.DeletePost)
		api.POST("/posts/mark-as-read", postHandler.MarkAllAsRead)

		session := api.Group("/session")
		{
			session.GET("/user", sessionHandler.GetCurrentUser)
			session.PUT("/user", sessionHandler.SetCurrentUser)
			session.DELETE("/user", sessionHandler.ClearCurrentUser)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "Route not found")
	})

	return r, nil
}

// newSessionStore picks the cookie or redis session backend
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store

	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		redis, err := redisStore.NewStore(
			10,              // Redis pool size
			"tcp",           // network type
			cfg.RedisAddr(), // Redis address from config
			"",              // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		store = redis
	case config.SessionStoreCookie:
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	return store, nil
}
