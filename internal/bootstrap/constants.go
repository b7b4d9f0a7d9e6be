package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApplication = "Starting item simulator"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Database
// =============================================================================

const (
	LogMsgConnectingDatabase = "Connecting to database"
	ErrMsgConnectDatabase    = "failed to connect to database: %w"
	ErrMsgMigrateDatabase    = "failed to migrate database: %w"
)

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	LogMsgSyncingCatalog     = "Syncing catalog from seed file..."
	LogMsgCatalogSeedMissing = "Catalog seed file not found, sync skipped"
	ErrMsgFailedLoadCatalog  = "failed to load catalog seed: %w"
	ErrMsgFailedSyncCatalog  = "failed to sync catalog seed: %w"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"

	// Service names for shutdown logging
	ServiceNameEconomy = "economy"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
