package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo-manager/backend/internal/cache"
	"todo-manager/backend/internal/config"
	"todo-manager/backend/internal/database"
	"todo-manager/backend/internal/monitoring"
	"todo-manager/backend/internal/server"
	"todo-manager/backend/internal/services"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel := logger.Info
	if cfg.IsProduction() {
		logLevel = logger.Warn
	}

	pool, err := database.NewDatabasePool(&database.PoolConfig{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.GetDatabaseDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        logLevel,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	monitor := monitoring.NewMonitor()
	monitor.RegisterHealthCheck("database", func(ctx context.Context) error {
		return pool.Health()
	})

	var todoService services.TodoService = services.NewTodoService()

	if cfg.Cache.Enabled {
		redisCache := cache.NewRedisCache(&cache.RedisCacheConfig{
			Addr:         cfg.GetRedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})

		multiCache := cache.NewMultiLevelCache(redisCache)
		if err := redisCache.Health(); err != nil {
			log.Printf("Redis unavailable, caching in memory only: %v", err)
			redisCache.Close()
			multiCache = cache.NewMultiLevelCache(nil)
		} else {
			monitor.RegisterHealthCheck("redis", func(ctx context.Context) error {
				return redisCache.Health()
			})
			defer multiCache.Close()
		}

		todoService = services.NewCachedTodoService(todoService, multiCache, cfg.Cache.TodoTTL, cfg.Cache.ListTTL)
	}

	srv := server.New(cfg, pool.DB, todoService, monitor)

	httpServer := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      srv.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Server listening on %s (%s store)", httpServer.Addr, cfg.Database.Driver)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped unexpectedly: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Failed to shut down cleanly: %v", err)
	}

	log.Println("Server stopped")
}
