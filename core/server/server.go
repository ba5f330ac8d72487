package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"guestdesk/core/cache"
	"guestdesk/core/config"
	"guestdesk/core/constants"
	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/core/middleware"
	"guestdesk/core/storage"
	"guestdesk/core/tasks"
	"guestdesk/modules/analytics"
	"guestdesk/modules/auth"
	"guestdesk/modules/event"
	"guestdesk/modules/guest"
	"guestdesk/modules/invite"
	"guestdesk/modules/notification"
	"guestdesk/modules/rsvp"
	"guestdesk/modules/subevent"
	"guestdesk/modules/template"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires the full application and blocks until shutdown.
func Run() error {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogPretty)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Host,
		Port:     cfg.DBPort,
		User:     cfg.User,
		Password: cfg.Password,
		DBName:   cfg.DBName,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	redisCache, err := cache.InitCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	uploader, err := storage.NewUploader(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	tasks.InitClient(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())

	mw := middleware.NewMiddleware(redisCache)
	api := e.Group("/api/v1")

	auth.Init(api, db, mw, redisCache)
	notifSvc := notification.Init(api, db, mw)
	eventSvc := event.Init(api, db, mw)
	guest.Init(api, db, mw, redisCache, eventSvc, notifSvc)
	subevent.Init(api, db, mw, eventSvc)
	rsvp.Init(api, db, mw, eventSvc)
	analyticsSvc := analytics.Init(api, db, mw, redisCache, eventSvc)
	templateSvc := template.Init(api, db, mw, eventSvc, nil)
	invite.Init(api, db, mw, eventSvc, uploader)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go analyticsSvc.StartPoller(ctx)

	worker := tasks.NewServer(cfg)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeInviteDispatch, templateSvc.HandleInviteDispatch)
	mux.HandleFunc(tasks.TypeTemplateUsageIncrement, templateSvc.HandleTemplateUsage)
	if err := worker.Start(mux); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", "error", err)
		}
	}()
	logger.Info("server started", "port", cfg.Port)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()

	worker.Shutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
