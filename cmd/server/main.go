package main

// @title           Bookshelf API
// @version         1.0
// @description     API for managing books on a personal bookshelf.

// @contact.name   Sina Niyavarzi
// @contact.email  sinaniya@gmail.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:9000
// @BasePath  /

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/config"
	docs "github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/docs"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/middleware"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("invalid TZ", "tz", cfg.TZ, "error", err)
		os.Exit(1)
	}
	time.Local = loc

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open book store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close book store", "error", err)
		}
	}()

	e := newRouter(ctx, cfg, store, startTime)

	if err := serve(ctx, e, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newRouter(ctx context.Context, cfg *config.Config, store repository.BookRepository, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	e := gin.New()
	e.Use(middleware.RequestID(), middleware.Logger(os.Stdout), gin.Recovery())

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.Cleanup(ctx, time.Minute)
		e.Use(limiter.Middleware())
	}

	docs.SwaggerInfo.Host = cfg.Addr()
	docs.SwaggerInfo.BasePath = "/"

	healthHandler := handler.NewHealthHandler(store, cfg.StoreDriver, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	bookHandler := handler.NewBookHandler(store)
	bookHandler.RegisterRoutes(e.Group(""))

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
