package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/config"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/database"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/database/postgres"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User      repository.User
	Character repository.Character
	Economy   repository.Economy
	Catalog   repository.Catalog
}

// InitializeRepositories creates all repository implementations over one pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      postgres.NewUserRepository(dbPool),
		Character: postgres.NewCharacterRepository(dbPool),
		Economy:   postgres.NewEconomyRepository(dbPool),
		Catalog:   postgres.NewCatalogRepository(dbPool),
	}
}

// OpenDatabase connects the pool and, when enabled, applies pending migrations.
// The caller owns the returned pool.
func OpenDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	slog.Info(LogMsgConnectingDatabase, "host", cfg.DBHost, "name", cfg.DBName)

	connString := cfg.GetDBConnString()
	if cfg.MigrateOnStart {
		if _, err := database.Migrate(ctx, connString); err != nil {
			return nil, fmt.Errorf(ErrMsgMigrateDatabase, err)
		}
	}

	pool, err := database.NewPool(ctx, connString, cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgConnectDatabase, err)
	}
	return pool, nil
}
