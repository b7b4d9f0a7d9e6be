package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// SeedFile is the on-disk catalog definition loaded at startup.
type SeedFile struct {
	Version     string     `json:"version"`
	Description string     `json:"description,omitempty"`
	Items       []SeedItem `json:"items"`
}

// SeedItem is one catalog entry in a seed file.
type SeedItem struct {
	Code  int            `json:"item_code"`
	Name  string         `json:"item_name"`
	Stats map[string]int `json:"item_stat,omitempty"`
	Price int            `json:"item_price"`
}

// SyncResult counts what a seed sync did.
type SyncResult struct {
	Inserted int
	Updated  int
	Skipped  int
}

// Seeder loads seed files and applies them through a catalog Service.
type Seeder struct {
	schemas validation.SchemaValidator
}

// NewSeeder creates a Seeder validating against the bundled schema.
func NewSeeder() *Seeder {
	return &Seeder{schemas: validation.NewSchemaValidator(schemaFS)}
}

// Load reads path, checks it against the schema and decodes it.
func (s *Seeder) Load(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFailed, err)
	}
	return s.Parse(path, data)
}

// Parse validates and decodes seed data. name is used in error messages.
func (s *Seeder) Parse(name string, data []byte) (*SeedFile, error) {
	if err := s.schemas.ValidateBytes(data, SeedSchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSeedSchemaFailed, name, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
	}

	var file SeedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, err)
	}
	if err := validateSeed(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// validateSeed covers what the schema cannot express
func validateSeed(file *SeedFile) error {
	seen := make(map[int]bool, len(file.Items))
	for _, it := range file.Items {
		if seen[it.Code] {
			return fmt.Errorf(ErrMsgSeedDuplicateCode, it.Code, domain.ErrInvalidInput)
		}
		seen[it.Code] = true
		if _, err := domain.StatsFromMap(it.Stats); err != nil {
			return fmt.Errorf(ErrMsgSeedInvalidStats, it.Code, err)
		}
	}
	return nil
}

// Sync inserts missing items and brings names and stats of existing ones in
// line with the file. Stored prices are never changed; a differing seed
// price is logged and ignored.
func (s *Seeder) Sync(ctx context.Context, svc Service, file *SeedFile) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	result := &SyncResult{}

	for _, it := range file.Items {
		stats, err := domain.StatsFromMap(it.Stats)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgSeedInvalidStats, it.Code, err)
		}

		existing, err := svc.GetItem(ctx, it.Code)
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			_, err = svc.CreateItem(ctx, domain.Item{Code: it.Code, Name: it.Name, Stats: stats, Price: it.Price})
			if errors.Is(err, domain.ErrDuplicateItemCode) {
				// another instance seeded it first
				result.Skipped++
				continue
			}
			if err != nil {
				return nil, fmt.Errorf(ErrMsgSeedSyncItemFailed, it.Code, err)
			}
			result.Inserted++
			log.Debug(LogMsgSeedItemInserted, "item_code", it.Code)
			continue
		case err != nil:
			return nil, fmt.Errorf(ErrMsgSeedSyncItemFailed, it.Code, err)
		}

		if existing.Price != it.Price {
			log.Warn(LogMsgSeedPriceMismatch, "item_code", it.Code, "stored", existing.Price, "seed", it.Price)
		}
		if existing.Name == it.Name && existing.Stats == stats {
			result.Skipped++
			continue
		}

		name := it.Name
		if _, err := svc.UpdateItem(ctx, it.Code, domain.ItemUpdate{Name: &name, Stats: &stats}); err != nil {
			return nil, fmt.Errorf(ErrMsgSeedSyncItemFailed, it.Code, err)
		}
		result.Updated++
		log.Debug(LogMsgSeedItemUpdated, "item_code", it.Code)
	}

	log.Info(LogMsgSeedSynced,
		"version", file.Version,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return result, nil
}
