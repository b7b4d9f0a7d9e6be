package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised when a CHECK constraint fails
	PgErrorCodeCheckViolation       = "23514"
	PgErrorCodeNumericOutOfRange    = "22003"
	PgErrorCodeSerializationFailure = "40001"
	PgErrorCodeDeadlockDetected     = "40P01"
	PgErrorCodeLockNotAvailable     = "55P03"
	PgErrorCodeAdminShutdown        = "57P01"
	// PgErrorClassConnection prefixes every connection exception code
	PgErrorClassConnection = "08"
)

// Constraint names referenced when translating errors
const (
	ConstraintCharactersNameKey = "characters_name_key_key"
	ConstraintEquippedItemsPkey = "equipped_items_pkey"
	ConstraintItemsPkey         = "items_pkey"
	ConstraintUsersUsernameKey  = "users_username_key"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToSetLockTimeout    = "failed to set lock timeout"
)

// Error Messages - User Operations
const (
	ErrMsgInvalidUserID      = "invalid user id"
	ErrMsgFailedToInsertUser = "failed to insert user"
	ErrMsgFailedToGetUser    = "failed to get user"
)

// Error Messages - Character Operations
const (
	ErrMsgFailedToInsertCharacter      = "failed to insert character"
	ErrMsgFailedToGetCharacter         = "failed to get character"
	ErrMsgFailedToLockCharacter        = "failed to lock character"
	ErrMsgFailedToDeleteCharacter      = "failed to delete character"
	ErrMsgFailedToUpdateCharacterMoney = "failed to update character money"
	ErrMsgFailedToUpdateCharacterStats = "failed to update character stats"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetInventory    = "failed to get inventory"
	ErrMsgFailedToAddInventory    = "failed to add inventory"
	ErrMsgFailedToRemoveInventory = "failed to remove inventory"
	ErrMsgFailedToGetEquipped     = "failed to get equipped items"
	ErrMsgFailedToEquip           = "failed to insert equipped item"
	ErrMsgFailedToUnequip         = "failed to delete equipped item"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetItem        = "failed to get item"
	ErrMsgFailedToListItems      = "failed to list items"
	ErrMsgFailedToInsertItem     = "failed to insert item"
	ErrMsgFailedToUpdateItem     = "failed to update item"
	ErrMsgFailedToMarshalStats   = "failed to marshal item stats"
	ErrMsgFailedToUnmarshalStats = "failed to unmarshal item stats"
)
