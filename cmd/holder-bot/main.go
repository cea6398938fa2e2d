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
	"go.uber.org/zap/zapcore"

	"github.com/buxdao/holder-bot/internal/adapter"
	"github.com/buxdao/holder-bot/internal/api/middleware"
	"github.com/buxdao/holder-bot/internal/api/server"
	"github.com/buxdao/holder-bot/internal/config"
	"github.com/buxdao/holder-bot/internal/domain"
	"github.com/buxdao/holder-bot/internal/holdings"
	"github.com/buxdao/holder-bot/internal/logger"
	"github.com/buxdao/holder-bot/internal/profile"
	"github.com/buxdao/holder-bot/internal/providers/discord"
	"github.com/buxdao/holder-bot/internal/providers/solana"
	"github.com/buxdao/holder-bot/internal/registry"
	"github.com/buxdao/holder-bot/internal/retry"
	"github.com/buxdao/holder-bot/internal/rewards"
	"github.com/buxdao/holder-bot/internal/roles"
	"github.com/buxdao/holder-bot/internal/store"
	"github.com/buxdao/holder-bot/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadHolderBotConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "holder-bot",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting BUXDAO holder bot")

	// Connect to database
	db, err := store.OpenPostgres(cfg.Database.DSN(), cfg.Debug,
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	logger.InfoCtx(ctx, "Connected to database", zap.String("host", cfg.Database.Host))

	// Connect to Redis
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error(err, zap.String("component", "redis"))
		}
	}()
	if err := redisClient.Ping(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Redis", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
	}
	logger.InfoCtx(ctx, "Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// Discord REST session
	session, err := adapter.NewDiscordSession(cfg.Discord.BotToken)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Discord session", zap.Error(err))
	}

	// Adapters
	clock := adapter.NewClock()
	fs := adapter.NewFileSystem()
	httpClient := adapter.NewHTTPClient(cfg.Solana.RequestTimeout)

	// Stores
	wallets := store.NewRedisWalletRegistry(redisClient, cfg.Redis.KeyPrefix)
	ledger := store.NewPGAccrualLedger(db)

	// Hashlists
	hashlists := registry.NewHashlistRegistry(registry.NewHashlistLoader(fs, cfg.Hashlists.Dir))
	for _, key := range domain.AllCollections {
		if hashlists.Current().Size(key) == 0 {
			logger.WarnCtx(ctx, "Hashlist is empty", zap.String("collection", string(key)), zap.String("dir", cfg.Hashlists.Dir))
		}
	}

	// Role policy
	policy, err := roles.NewPolicy(cfg.Roles, cfg.Solana.BuxDecimals)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid role configuration", zap.Error(err))
	}

	// Services
	chainReader := solana.NewClient(solana.Config{
		RPCURL:            cfg.Solana.RPCURL,
		RequestsPerSecond: cfg.Solana.RequestsPerSecond,
		Burst:             cfg.Solana.Burst,
	}, httpClient)

	retryPolicy := retry.DefaultPolicy()
	retryPolicy.MaxRetries = cfg.Aggregation.MaxRetries
	retryPolicy.BaseDelay = cfg.Aggregation.BaseDelay
	retryPolicy.MaxDelay = cfg.Aggregation.MaxDelay
	retryPolicy.Clock = clock

	aggregator := holdings.NewAggregator(holdings.Config{
		BuxMint:     cfg.Solana.BuxMint,
		Retry:       retryPolicy,
		WalletDelay: cfg.Aggregation.WalletDelay,
	}, wallets, chainReader, hashlists, clock)

	accruer := rewards.NewAccruer(ledger, clock)
	reconciler := roles.NewReconciler(policy, discord.NewIdentityService(session, cfg.Discord.GuildID))
	profiles := profile.NewService(wallets, aggregator, accruer, reconciler, clock)

	// API server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, profiles, hashlists)

	errCh := make(chan error, 2)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Optional periodic role sync
	var roleSync sweeper.Sweeper
	if cfg.Sweeper.Enabled {
		roleSync = sweeper.NewRoleSyncSweeper(sweeper.RoleSyncSweeperConfig{Interval: cfg.Sweeper.Interval}, wallets, profiles, clock)
		go func() {
			if err := roleSync.Start(ctx); err != nil {
				errCh <- err
			}
		}()
		logger.InfoCtx(ctx, "Role sync sweeper enabled", zap.Duration("interval", cfg.Sweeper.Interval))
	}

	// Wait for interrupt signal to gracefully shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}

	// Shutdown context with timeout (the root ctx is canceled below)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}
	if roleSync != nil {
		if err := roleSync.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("component", roleSync.Name()))
		}
	}
	cancel()

	logger.Info("Holder bot stopped")
}
