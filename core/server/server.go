package server

import (
	"fmt"

	"engagement-scheduler/core/cache"
	"engagement-scheduler/core/config"
	"engagement-scheduler/core/database"
	"engagement-scheduler/core/logger"
	"engagement-scheduler/modules/engagement"
	"engagement-scheduler/modules/review"
	"engagement-scheduler/modules/schedule"
	"engagement-scheduler/modules/storedev"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Run loads configuration, wires every module and starts the HTTP server.
// It blocks until the listener fails.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Log.Level)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Error("Server:Request:Error",
					"method", v.Method, "uri", v.URI, "status", v.Status, "error", v.Error)
				return nil
			}
			logger.Info("Server:Request",
				"method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))

	c := buildCache(cfg)

	v1 := e.Group("/api/v1")
	schedule.Init(v1, c)
	engagement.Init(v1, c)
	review.Init(v1)

	if cfg.StoreDev.Enabled {
		db, err := database.InitDB(cfg.Database)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		if err := storedev.Init(e, db); err != nil {
			return fmt.Errorf("init storedev: %w", err)
		}
		logger.Info("Server:StoreDev:Enabled", "path", "/collection")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server:Start", "addr", addr)
	return e.Start(addr)
}

func buildCache(cfg *config.Config) cache.Cache {
	if cfg.Redis.Addr == "" {
		logger.Warn("Server:Cache:Memory", "reason", "REDIS_ADDR not set")
		return cache.NewMemoryCache()
	}

	c, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		logger.Warn("Server:Cache:Memory", "reason", "redis unavailable", "error", err)
		return cache.NewMemoryCache()
	}
	return c
}
