// Package router assembles the gin engines of both services.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/project-manager-api/internal/handlers"
	"github.com/yukikurage/project-manager-api/internal/middleware"
	"github.com/yukikurage/project-manager-api/internal/repository"
	"github.com/yukikurage/project-manager-api/internal/services"
	"github.com/yukikurage/project-manager-api/internal/taskstore"
	"gorm.io/gorm"
)

// Options configures the project manager engine.
type Options struct {
	DB             *gorm.DB
	Tokens         *services.TokenService
	AuthLimiter    *middleware.ClientRateLimiter
	AllowedOrigins []string
	Logger         zerolog.Logger

	// TaskManagerBaseURL is where /api/projects/:id/tasks-ui redirects.
	TaskManagerBaseURL string
}

// New builds the project manager API.
func New(opts Options) *gin.Engine {
	userRepo := repository.NewUserRepository(opts.DB)
	projectRepo := repository.NewProjectRepository(opts.DB)
	taskRepo := repository.NewTaskRepository(opts.DB)

	authService := services.NewAuthService(userRepo, opts.Tokens)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)

	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService, opts.TaskManagerBaseURL)
	taskHandler := handlers.NewTaskHandler(taskService)
	scheduleHandler := handlers.NewScheduleHandler(projectService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(opts.Logger), corsMiddleware(opts.AllowedOrigins))

	r.GET("/", handlers.Index)
	r.GET("/health", handlers.Health)

	requireAuth := middleware.RequireAuth(authService)

	api := r.Group("/api")
	{
		// Credential routes (public, rate limited)
		auth := api.Group("/auth")
		{
			credentials := auth.Group("")
			if opts.AuthLimiter != nil {
				credentials.Use(middleware.RateLimit(opts.AuthLimiter))
			}
			credentials.POST("/register", authHandler.Register)
			credentials.POST("/login", authHandler.Login)

			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", middleware.RequireIDParams("id"), projectHandler.GetProject)
			projects.DELETE("/:id", middleware.RequireIDParams("id"), projectHandler.DeleteProject)
			projects.GET("/:id/tasks-ui", middleware.RequireIDParams("id"), projectHandler.TasksUI)

			projects.GET("/:id/tasks", middleware.RequireIDParams("id"), taskHandler.ListTasks)
			projects.POST("/:id/tasks", middleware.RequireIDParams("id"), taskHandler.CreateTask)
			projects.PUT("/:id/tasks/:taskId", middleware.RequireIDParams("id", "taskId"), taskHandler.UpdateTask)
			projects.DELETE("/:id/tasks/:taskId", middleware.RequireIDParams("id", "taskId"), taskHandler.DeleteTask)
		}

		api.POST("/v1/projects/:id/schedule", requireAuth, middleware.RequireIDParams("id"), scheduleHandler.Generate)
	}

	return r
}

// NewTracker builds the tracker API over store.
func NewTracker(store *taskstore.Store, logger zerolog.Logger) *gin.Engine {
	tracker := handlers.NewTrackerHandler(store)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	r.GET("/", tracker.Index)
	r.GET("/health", handlers.Health)

	tasks := r.Group("/api/projects/:projectId/tasks")
	{
		tasks.GET("", tracker.ListTasks)
		tasks.POST("", tracker.CreateTask)
		tasks.PUT("/:id", tracker.UpdateTask)
		tasks.DELETE("/:id", tracker.DeleteTask)
	}

	return r
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Location"},
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}
