package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/movemint/launchpad-sync/internal/actions"
	"github.com/movemint/launchpad-sync/internal/adapter"
	"github.com/movemint/launchpad-sync/internal/api/server"
	"github.com/movemint/launchpad-sync/internal/chain"
	"github.com/movemint/launchpad-sync/internal/config"
	"github.com/movemint/launchpad-sync/internal/indexer"
	"github.com/movemint/launchpad-sync/internal/logger"
	"github.com/movemint/launchpad-sync/internal/messaging"
	"github.com/movemint/launchpad-sync/internal/providers/jetstream"
	"github.com/movemint/launchpad-sync/internal/reveal"
	"github.com/movemint/launchpad-sync/internal/store"
	syncer "github.com/movemint/launchpad-sync/internal/sync"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadSyncdConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "launchpad-syncd",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting launchpad sync daemon")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.AutoMigrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	clock := adapter.NewClock()
	dataStore := store.NewPGStore(db, clock)

	// Chain gateway with the service signing account
	gateway, err := chain.NewClient(chain.Config{
		RPCURL:        cfg.Chain.RPCURL,
		ModuleAddress: cfg.Chain.ModuleAddress,
		PrivateKey:    cfg.Chain.PrivateKey,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to chain",
		zap.String("rpc_url", cfg.Chain.RPCURL),
		zap.String("signer", gateway.SignerAddress()),
	)

	// Indexer GraphQL client
	idx := indexer.NewClient(indexer.Config{
		GraphQLURL:          cfg.Indexer.GraphQLURL,
		Timeout:             cfg.Indexer.Timeout,
		CatchupMaxWait:      cfg.Indexer.CatchupMaxWait,
		CatchupPollInterval: cfg.Indexer.CatchupPollInterval,
	}, clock)

	// Event publisher; optional, the daemon runs without NATS
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, state-transition events disabled")
	}

	// Reconciliation engine and its two loops
	reconciler := syncer.NewReconciler(dataStore, gateway, idx, publisher, clock, syncer.Config{
		Parallelism: cfg.Sync.Parallelism,
	})
	scheduler := syncer.NewScheduler(reconciler, clock, syncer.SchedulerConfig{
		SupplyInterval: cfg.Sync.SupplyInterval,
		FullInterval:   cfg.Sync.FullInterval,
	})

	// Reveal serializer: one worker, strictly ordered transactions
	revealer := reveal.NewSerializer(dataStore, gateway, idx, publisher, clock, reveal.Config{
		MaxAttempts:      cfg.Reveal.MaxAttempts,
		InitialBackoff:   cfg.Reveal.InitialBackoff,
		QueueSize:        cfg.Reveal.QueueSize,
		WaitMax:          cfg.Reveal.WaitMax,
		WaitPollInterval: cfg.Reveal.WaitPollInterval,
	})
	defer revealer.Close()

	acts := actions.NewActions(dataStore, gateway, idx, reconciler, revealer, clock, actions.Config{
		UploadBatchSize: cfg.Reveal.UploadBatchSize,
	})

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		APIKeys:      cfg.Server.APIKeys,
	}, acts)

	errCh := make(chan error, 2)
	go func() {
		if err := scheduler.Start(ctx); err != nil {
			errCh <- fmt.Errorf("scheduler failed: %w", err)
		}
	}()
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- fmt.Errorf("server failed: %w", err)
		}
	}()

	// Wait for interrupt signal or a fatal component error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	cancel()

	logger.InfoCtx(context.Background(), "Launchpad sync daemon stopped")
}
