package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/catalog"
)

// SyncCatalog applies the catalog seed file at path through svc. A missing
// file or an empty path is not an error.
func SyncCatalog(ctx context.Context, path string, svc catalog.Service) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Info(LogMsgCatalogSeedMissing, "path", path)
		return nil
	}

	slog.Info(LogMsgSyncingCatalog, "path", path)
	seeder := catalog.NewSeeder()
	file, err := seeder.Load(path)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedLoadCatalog, err)
	}
	if _, err := seeder.Sync(ctx, svc, file); err != nil {
		return fmt.Errorf(ErrMsgFailedSyncCatalog, err)
	}
	return nil
}
