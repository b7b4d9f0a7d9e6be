package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

const (
	queryGetItem = `
		SELECT item_code, item_name, item_stat, item_price
		FROM items
		WHERE item_code = $1`

	queryListItems = `
		SELECT item_code, item_name, item_price
		FROM items
		ORDER BY item_code`

	queryInsertItem = `
		INSERT INTO items (item_code, item_name, item_stat, item_price)
		VALUES ($1, $2, $3, $4)`

	queryUpdateItem = `
		UPDATE items
		SET item_name = COALESCE($2, item_name),
		    item_stat = COALESCE($3, item_stat),
		    updated_at = NOW()
		WHERE item_code = $1
		RETURNING item_code, item_name, item_stat, item_price`
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetItem retrieves an item by code
func (r *CatalogRepository) GetItem(ctx context.Context, code int) (*domain.Item, error) {
	return getItem(ctx, r.db, code)
}

// ListItems returns every catalog entry ordered by code
func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	rows, err := r.db.Query(ctx, queryListItems)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListItems, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ItemSummary, error) {
		var it domain.ItemSummary
		err := row.Scan(&it.Code, &it.Name, &it.Price)
		return it, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// CreateItem inserts a new catalog entry
func (r *CatalogRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	stats, err := json.Marshal(item.Stats)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalStats, err)
	}
	_, err = r.db.Exec(ctx, queryInsertItem, item.Code, item.Name, stats, item.Price)
	if err != nil {
		if isUniqueViolation(err, ConstraintItemsPkey) {
			return domain.ErrDuplicateItemCode
		}
		return wrapErr(ErrMsgFailedToInsertItem, err)
	}
	return nil
}

// UpdateItem changes the name and/or stats of an item
func (r *CatalogRepository) UpdateItem(ctx context.Context, code int, name *string, stats *domain.Stats) (*domain.Item, error) {
	var statsJSON []byte
	if stats != nil {
		b, err := json.Marshal(stats)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalStats, err)
		}
		statsJSON = b
	}

	item, err := scanItem(r.db.QueryRow(ctx, queryUpdateItem, code, name, statsJSON))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, wrapErr(ErrMsgFailedToUpdateItem, err)
	}
	return item, nil
}

func getItem(ctx context.Context, q DBTX, code int) (*domain.Item, error) {
	// item_code is int4; a wider code cannot name a stored item
	if !domain.ValidItemCode(code) {
		return nil, domain.ErrItemNotFound
	}
	item, err := scanItem(q.QueryRow(ctx, queryGetItem, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		item  domain.Item
		stats []byte
	)
	if err := row.Scan(&item.Code, &item.Name, &stats, &item.Price); err != nil {
		return nil, err
	}
	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &item.Stats); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalStats, err)
		}
	}
	return &item, nil
}
