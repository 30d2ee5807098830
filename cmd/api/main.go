package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customer_portal_backend/internal/auth"
	authstore "customer_portal_backend/internal/auth/store"
	"customer_portal_backend/internal/bookings"
	"customer_portal_backend/internal/events"
	apphttp "customer_portal_backend/internal/http"
	"customer_portal_backend/internal/http/router"
	"customer_portal_backend/internal/messages"
	"customer_portal_backend/internal/notification"
	"customer_portal_backend/platform/config"
	"customer_portal_backend/platform/logger"
	"customer_portal_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.New(log)
	notificationModule.RegisterHandlers(eventBus)

	// Credential store: static reference data, created at process start
	credentials := authstore.NewSeeded()

	// Domain modules (composition root)
	authModule := auth.NewModule(credentials, cfg, eventBus, log, val)
	bookingsModule := bookings.NewModule(cfg, log)
	messagesModule := messages.NewModule(cfg, eventBus, log, val)

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			authModule,
			bookingsModule,
			messagesModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
