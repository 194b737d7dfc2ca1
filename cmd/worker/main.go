package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/porcelarte/pkg/app"
	"github.com/ghuser/porcelarte/pkg/cache"
	"github.com/ghuser/porcelarte/pkg/config"
	"github.com/ghuser/porcelarte/pkg/database"
	"github.com/ghuser/porcelarte/pkg/events"
	"github.com/ghuser/porcelarte/pkg/logger"
	"github.com/ghuser/porcelarte/pkg/telemetry"
	"github.com/ghuser/porcelarte/pkg/workflows"
	catalogservices "github.com/ghuser/porcelarte/services/catalog/application/services"
	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	inventoryservices "github.com/ghuser/porcelarte/services/inventory/application/services"
	inventoryEvents "github.com/ghuser/porcelarte/services/inventory/domain/events"
	quoteservices "github.com/ghuser/porcelarte/services/quote/application/services"
	quoteworkflows "github.com/ghuser/porcelarte/services/quote/application/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DefinitionDatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log, events.Options{})
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled {
		temporalClient, err = workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
	}

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	catalog := catalogservices.New(appConfig)

	if err := registerSubscribers(ctx, appConfig, catalog); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	var approvals worker.Worker
	if temporalClient != nil {
		approvals, err = startApprovalWorker(appConfig, catalog)
		if err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
	}

	scanCtx, cancelScan := context.WithCancel(ctx)
	go runReplenishmentScan(scanCtx, appConfig, catalog, cache.NewLocker(redisClient))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelScan()
	if approvals != nil {
		approvals.Stop()
	}

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
func registerSubscribers(ctx context.Context, a *app.Application, catalog *catalogservices.Services) error {
	topic := inventoryEvents.TopicStockMovementRecorded
	errCh, err := a.EventBus.Subscribe(ctx, topic, handleStockMovementRecorded(a, catalog))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			telemetry.ReportError(ctx, err)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{topic})
	return nil
}

// handleStockMovementRecorded evicts the product's cached read model and
// flags levels at or below the minimum. It is idempotent; EventBus retries
// up to 3x on failure.
func handleStockMovementRecorded(a *app.Application, catalog *catalogservices.Services) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		if v := events.EventVersion(msg); v > inventoryEvents.StockMovementRecordedVersion {
			a.Logger.WarnContext(ctx, "skipping movement event with newer schema", "version", v)
			return nil
		}
		var evt inventoryEvents.StockMovementRecordedEvent
		if err := events.DecodeJSON(msg, &evt); err != nil {
			return err
		}

		kind, err := catalogmodels.ParseProductKind(evt.ProductKind)
		if err != nil {
			// Unknown kinds would never succeed on retry.
			a.Logger.WarnContext(ctx, "dropping movement event with unknown product kind",
				"event_id", evt.EventID, "product_kind", evt.ProductKind)
			return nil
		}

		// Eviction is best-effort; the cache TTL bounds staleness.
		if err := catalog.Catalog.InvalidateProduct(ctx, catalogmodels.ProductRef{Kind: kind, ID: evt.ProductID}); err != nil {
			a.Logger.WarnContext(ctx, "cache eviction failed for movement",
				"movement_id", evt.MovementID, "product_id", evt.ProductID, "error", err)
		}

		if evt.BelowMinimum() {
			a.Logger.WarnContext(ctx, "stock at or below minimum",
				"product_kind", evt.ProductKind,
				"product_id", evt.ProductID,
				"product_name", evt.ProductName,
				"new_stock", evt.NewStock,
				"min_stock", evt.MinStock,
			)
		}
		return nil
	}
}

// startApprovalWorker registers the quote approval workflow on the configured
// task queue and starts polling.
func startApprovalWorker(a *app.Application, catalog *catalogservices.Services) (worker.Worker, error) {
	quotes := quoteservices.New(a, catalog, inventoryservices.New(a))

	w := a.TemporalClient.NewWorker(workflows.DefaultWorkerOptions(a.Config.TemporalTaskQueue))
	quoteworkflows.Register(w, &quoteworkflows.Activities{Quotes: quotes.Quotes})

	if err := w.Start(); err != nil {
		return nil, fmt.Errorf("start approval worker: %w", err)
	}
	a.Logger.Info("temporal worker started", "task_queue", a.Config.TemporalTaskQueue)
	return w, nil
}

// runReplenishmentScan logs every active product at or below its minimum on
// a fixed interval. Only the instance that claims the tick's lease scans.
// Runs until ctx is cancelled.
func runReplenishmentScan(ctx context.Context, a *app.Application, catalog *catalogservices.Services, locker *cache.Locker) {
	interval := a.Config.ReplenishmentScanInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("replenishment scan shutting down")
			return
		case <-ticker.C:
			claimed, err := locker.Claim(ctx, "replenishment-scan", interval*9/10)
			if err != nil {
				a.Logger.WarnContext(ctx, "replenishment scan lock failed", "error", err)
				continue
			}
			if !claimed {
				continue
			}
			suggestions, err := catalog.Catalog.ListProductsNeedingReplenishment(ctx)
			if err != nil {
				a.Logger.ErrorContext(ctx, "replenishment scan failed", "error", err)
				telemetry.ReportError(ctx, err)
				continue
			}
			for _, s := range suggestions {
				a.Logger.InfoContext(ctx, "replenishment suggested",
					"product_kind", s.Product.Kind,
					"sku", s.Product.SKU(),
					"current_stock", s.CurrentStock,
					"min_stock", s.MinStock,
					"suggested_purchase", s.SuggestedPurchase,
				)
			}
		}
	}
}
