package character

// Log messages
const (
	LogMsgCreateCharacterCalled = "CreateCharacter called"
	LogMsgCharacterCreated      = "Character created"
	LogMsgDeleteCharacterCalled = "DeleteCharacter called"
	LogMsgCharacterDeleted      = "Character deleted"
	LogMsgDeleteRetry           = "Retrying character delete after lock conflict"
	LogErrFailedToCreate        = "Failed to create character"
	LogErrFailedToDelete        = "Failed to delete character"
)

// Error messages
const (
	ErrMsgNameRequired            = "character name is required"
	ErrMsgNameTooLong             = "character name must be at most %d characters"
	ErrMsgIdentityRequired        = "user identity is required"
	ErrMsgInvalidCharacterID      = "character id must be a positive integer"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire character lock"
)
