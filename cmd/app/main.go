package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/bootstrap"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/catalog"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/character"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/concurrency"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/config"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/economy"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/server"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/user"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := bootstrap.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	// Character deletion and economy transactions serialize on the same locks.
	locks := concurrency.NewLockManager()
	txOpts := repository.TxOptions{
		MaxTxRetries: cfg.MaxTxRetries,
		LockTimeout:  cfg.LockTimeout,
	}

	economyService := economy.NewService(repos.Economy, locks, txOpts)

	catalogService := catalog.NewService(repos.Catalog, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	if err := bootstrap.SyncCatalog(ctx, cfg.CatalogSeedFile, catalogService); err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Addr:           cfg.Addr(),
		APIKey:         cfg.APIKey,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Services{
		DB:         dbPool,
		Users:      user.NewService(repos.User),
		Characters: character.NewService(repos.Character, locks, cfg.StartingMoney, txOpts),
		Economy:    economyService,
		Catalog:    catalogService,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server: srv,
			Services: map[string]bootstrap.Shutdowner{
				bootstrap.ServiceNameEconomy: economyService,
			},
			ClosePool: dbPool.Close,
		})
	})

	return g.Wait()
}
