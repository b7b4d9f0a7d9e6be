package catalog

// Cache defaults used when the caller passes non-positive values
const (
	DefaultCacheSize = 512
)

// Log messages
const (
	LogMsgItemCreated       = "Catalog item created"
	LogMsgItemUpdated       = "Catalog item updated"
	LogMsgPriceChangeDenied = "Rejected attempt to change item price"
)

// Error message formats
const (
	ErrMsgGetItemFailed    = "failed to get item: %w"
	ErrMsgListItemsFailed  = "failed to list items: %w"
	ErrMsgCreateItemFailed = "failed to create item: %w"
	ErrMsgUpdateItemFailed = "failed to update item: %w"
	ErrMsgInvalidNameFmt   = "item name must be 1-%d characters: %w"
	ErrMsgPriceRangeFmt    = "%w (got %d)"
)

// Seed file handling
const (
	SeedSchemaName = "schemas/catalog.schema.json"

	LogMsgSeedSynced        = "Catalog seed synced"
	LogMsgSeedItemInserted  = "Seeded catalog item"
	LogMsgSeedItemUpdated   = "Updated catalog item from seed"
	LogMsgSeedPriceMismatch = "Seed price differs from stored price; keeping stored price"

	ErrMsgReadSeedFailed     = "failed to read catalog seed: %w"
	ErrMsgSeedSchemaFailed   = "catalog seed %s: %w"
	ErrMsgParseSeedFailed    = "failed to parse catalog seed: %w"
	ErrMsgSeedDuplicateCode  = "catalog seed lists item code %d twice: %w"
	ErrMsgSeedInvalidStats   = "catalog seed item %d: %w"
	ErrMsgSeedSyncItemFailed = "failed to sync seed item %d: %w"
)
