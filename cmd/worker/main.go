package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/vendorpayments-backend/internal/attributes"
	ordersconsumer "github.com/angelmondragon/vendorpayments-backend/internal/consumers/orders"
	"github.com/angelmondragon/vendorpayments-backend/internal/hooks"
	"github.com/angelmondragon/vendorpayments-backend/internal/orders"
	"github.com/angelmondragon/vendorpayments-backend/internal/vendorpayments"
	"github.com/angelmondragon/vendorpayments-backend/pkg/config"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
	"github.com/angelmondragon/vendorpayments-backend/pkg/eventing"
	"github.com/angelmondragon/vendorpayments-backend/pkg/logger"
	"github.com/angelmondragon/vendorpayments-backend/pkg/metrics"
	"github.com/angelmondragon/vendorpayments-backend/pkg/pubsub"
	"github.com/angelmondragon/vendorpayments-backend/pkg/redis"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "worker"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)
	cfg.Service.Kind = "worker"

	logg = logger.New(logger.Options{
		ServiceName: "worker",
		Level:       cfg.App.LogLevel,
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "failed to close database", err)
		}
	}()

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	requireResource(ctx, logg, "redis", err)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(ctx, "failed to close redis client", err)
		}
	}()

	pubsubClient, err := pubsub.NewClient(ctx, cfg.GCP, cfg.PubSub, logg)
	requireResource(ctx, logg, "pubsub", err)
	defer func() {
		if err := pubsubClient.Close(); err != nil {
			logg.Error(ctx, "failed to close pubsub client", err)
		}
	}()

	subscription := pubsubClient.OrdersSubscription()
	if subscription == nil {
		requireResource(ctx, logg, "orders subscription", errors.New("subscription not configured"))
	}

	reg := metrics.NewRegistry()
	registry := hooks.NewRegistry(logg, metrics.NewHookMetrics(reg))

	ledger, err := vendorpayments.NewService(vendorpayments.ServiceParams{
		Repo:       vendorpayments.NewRepository(dbClient.DB()),
		Orders:     orders.NewRepository(dbClient.DB()),
		Attributes: attributes.NewRepository(dbClient.DB()),
		Metrics:    metrics.NewLedgerMetrics(reg),
		Logger:     logg,
	})
	requireResource(ctx, logg, "vendor payments service", err)
	requireResource(ctx, logg, "vendor payments hooks", vendorpayments.RegisterHooks(registry, ledger, logg))
	if registry.Handlers(enums.HookOrderThankYou) == 0 {
		requireResource(ctx, logg, "order thank-you handlers", errors.New("no handler subscribed"))
	}

	guard, err := eventing.NewDeliveryGuard(redisClient, ordersconsumer.Name, cfg.Eventing.ConsumerIdempotencyTTL)
	requireResource(ctx, logg, "delivery guard", err)

	consumer, err := ordersconsumer.NewConsumer(subscription, registry, guard, metrics.NewConsumerMetrics(reg), logg)
	requireResource(ctx, logg, "orders consumer", err)

	service, err := NewService(ServiceParams{
		Logger:   logg,
		Consumer: consumer,
		Dependencies: []Dependency{
			{Name: "database", Pinger: dbClient},
			{Name: "redis", Pinger: redisClient},
			{Name: "pubsub", Pinger: pubsubClient},
		},
		MetricsAddr:    ":" + cfg.App.Port,
		MetricsHandler: metrics.Handler(reg),
	})
	requireResource(ctx, logg, "worker service", err)

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx = logg.WithFields(runCtx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})
	logg.Info(runCtx, "worker ready")

	if err := service.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(runCtx, "worker failed", err)
		os.Exit(1)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
