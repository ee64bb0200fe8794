package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/vendorpayments-backend/api/routes"
	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	"github.com/angelmondragon/vendorpayments-backend/internal/hooks"
	"github.com/angelmondragon/vendorpayments-backend/internal/orders"
	"github.com/angelmondragon/vendorpayments-backend/internal/paymentstatus"
	"github.com/angelmondragon/vendorpayments-backend/internal/productmeta"
	"github.com/angelmondragon/vendorpayments-backend/internal/vendorpayments"
	"github.com/angelmondragon/vendorpayments-backend/pkg/config"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
	"github.com/angelmondragon/vendorpayments-backend/pkg/metrics"
	"github.com/angelmondragon/vendorpayments-backend/pkg/migrate"
	"github.com/angelmondragon/vendorpayments-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       cfg.App.LogLevel,
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	requireResource(ctx, logg, "dev migrations", migrate.MaybeRunDev(ctx, cfg, logg, dbClient))

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	requireResource(ctx, logg, "redis", err)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(ctx, "error closing redis", err)
		}
	}()

	reg := metrics.NewRegistry()
	registry := hooks.NewRegistry(logg, metrics.NewHookMetrics(reg))
	editorMetrics := metrics.NewEditorMetrics(reg)

	attrs := attributes.NewRepository(dbClient.DB())
	lookup := orders.NewRepository(dbClient.DB())

	ledger, err := vendorpayments.NewService(vendorpayments.ServiceParams{
		Repo:       vendorpayments.NewRepository(dbClient.DB()),
		Orders:     lookup,
		Attributes: attrs,
		Metrics:    metrics.NewLedgerMetrics(reg),
		Logger:     logg,
	})
	requireResource(ctx, logg, "vendor payments service", err)
	requireResource(ctx, logg, "vendor payments hooks", vendorpayments.RegisterHooks(registry, ledger, logg))

	productMeta, err := productmeta.NewService(attrs, editorMetrics, logg)
	requireResource(ctx, logg, "product meta service", err)
	requireResource(ctx, logg, "product meta hooks", productmeta.RegisterHooks(registry, productMeta))

	paymentStatus, err := paymentstatus.NewService(lookup, attrs, editorMetrics, logg)
	requireResource(ctx, logg, "payment status service", err)
	requireResource(ctx, logg, "payment status hooks", paymentstatus.RegisterHooks(registry, paymentStatus))
	logg.Info(logg.WithFields(ctx, map[string]any{
		enums.HookProductSaved.String():   registry.Handlers(enums.HookProductSaved),
		enums.HookOrderThankYou.String():  registry.Handlers(enums.HookOrderThankYou),
		enums.HookOrderMetaSaved.String(): registry.Handlers(enums.HookOrderMetaSaved),
	}), "hook handlers registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	runCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, routes.Deps{
			DB:            dbClient,
			Redis:         redisClient,
			Metrics:       reg,
			Hooks:         registry,
			ProductMeta:   productMeta,
			PaymentStatus: paymentStatus,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(runCtx, "api server shutdown failed", err)
		}
	}()

	logg.Info(runCtx, "starting api server")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error(runCtx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(runCtx, "api server stopped")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
