package server

import (
	"todo-manager/backend/internal/config"
	"todo-manager/backend/internal/handlers"
	"todo-manager/backend/internal/middleware"
	"todo-manager/backend/internal/monitoring"
	"todo-manager/backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server assembles middleware and routes around the injected store
// handle and todo service.
type Server struct {
	engine *gin.Engine
}

func New(cfg *config.Config, db *gorm.DB, todoService services.TodoService, monitor *monitoring.Monitor) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryWithLog())
	router.Use(middleware.RequestID())
	if monitor != nil {
		router.Use(monitor.Middleware())
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.BurstSize, cfg.RateLimit.CleanupInterval)
		router.Use(limiter.Middleware())
	}

	todoHandler := handlers.NewTodoHandler(db, todoService)

	router.GET("/", handlers.Health)
	router.GET("/api", handlers.Health)

	// The API lives under /api; the bare /todos paths are kept for
	// clients of the direct-store deployment.
	registerTodoRoutes(router.Group("/todos"), todoHandler)

	api := router.Group("/api")
	{
		if monitor != nil {
			api.GET("/health", monitor.HealthHandler())
			api.GET("/metrics", monitor.MetricsHandler())
		}

		registerTodoRoutes(api.Group("/todos"), todoHandler)
	}

	router.NoRoute(handlers.NotFound)

	return &Server{engine: router}
}

func registerTodoRoutes(todos *gin.RouterGroup, todoHandler *handlers.TodoHandler) {
	todos.GET("", todoHandler.ListTodos)
	todos.POST("", todoHandler.CreateTodo)
	todos.GET("/stats/summary", todoHandler.GetStats)
	todos.POST("/batch-delete", todoHandler.BatchDeleteTodos)
	todos.GET("/:id", todoHandler.GetTodoByID)
	todos.PUT("/:id", todoHandler.UpdateTodo)
	todos.DELETE("/:id", todoHandler.DeleteTodo)
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
