package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/amendezc/audiophile-backend/api/routes"
	"github.com/amendezc/audiophile-backend/internal/cart"
	"github.com/amendezc/audiophile-backend/internal/catalog"
	"github.com/amendezc/audiophile-backend/internal/notifications"
	"github.com/amendezc/audiophile-backend/internal/orders"
	"github.com/amendezc/audiophile-backend/pkg/config"
	"github.com/amendezc/audiophile-backend/pkg/db"
	"github.com/amendezc/audiophile-backend/pkg/logger"
	"github.com/amendezc/audiophile-backend/pkg/mailer"
	"github.com/amendezc/audiophile-backend/pkg/metrics"
	"github.com/amendezc/audiophile-backend/pkg/migrate"
	"github.com/amendezc/audiophile-backend/pkg/redis"
)

const shutdownGrace = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	closers := func() error {
		return multierr.Combine(
			redisClient.Close(),
			dbClient.Close(),
		)
	}

	catalogSvc, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		fatal(logg, "failed to create catalog service", err, closers)
	}

	cartSessions, err := cart.NewSessions(cfg.Cart)
	if err != nil {
		fatal(logg, "failed to create cart sessions", err, closers)
	}
	cartStore, err := cart.NewStore(redisClient, cfg.Cart.TTL)
	if err != nil {
		fatal(logg, "failed to create cart store", err, closers)
	}

	ordersSvc, err := orders.NewService(orders.NewRepository(dbClient.DB()), dbClient, catalogSvc, logg)
	if err != nil {
		fatal(logg, "failed to create orders service", err, closers)
	}

	var notificationsSvc notifications.Service
	if cfg.Mailer.APIKey != "" {
		sender, err := mailer.NewResendMailer(cfg.Mailer)
		if err != nil {
			fatal(logg, "failed to create mailer", err, closers)
		}
		notificationsSvc, err = notifications.NewService(ordersSvc, sender, logg)
		if err != nil {
			fatal(logg, "failed to create notifications service", err, closers)
		}
	} else {
		logg.Warn(context.Background(), "mailer api key not set, confirmation emails disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:        cfg,
			Logger:        logg,
			DBPinger:      dbClient,
			RedisPinger:   redisClient,
			CartStore:     cartStore,
			CartSessions:  cartSessions,
			Catalog:       catalogSvc,
			Orders:        ordersSvc,
			Notifications: notificationsSvc,
			Metrics:       httpMetrics,
			Registry:      registry,
		}),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			_ = closers()
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	if err := closers(); err != nil {
		logg.Error(ctx, "error closing dependencies", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}

func fatal(logg *logger.Logger, msg string, err error, closers func() error) {
	logg.Error(context.Background(), msg, err)
	_ = closers()
	os.Exit(1)
}
