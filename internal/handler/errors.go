package handler

// Generic HTTP error messages for client responses.
// Store and internal failures never expose their cause.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."

	// Identity and path errors
	ErrMsgMissingIdentity     = "Missing user identity"
	ErrMsgInvalidIdentity     = "User identity must be a UUID"
	ErrMsgInvalidCharacterID  = "Character id must be a positive integer"
	ErrMsgInvalidItemCode     = "Item code must be an integer from 1 to 2147483647"
	ErrMsgTooManyLines        = "Too many item lines"
	ErrMsgDatabaseUnavailable = "database connection failed"
)

// Success messages for API responses
const (
	MsgCharacterCreated = "Character created"
	MsgCharacterDeleted = "Character deleted"
	MsgItemsPurchased   = "Items purchased"
	MsgItemsSold        = "Items sold"
	MsgItemEquipped     = "Item equipped"
	MsgItemUnequipped   = "Item unequipped"
	MsgMoneyEarned      = "Money earned"
	MsgItemCreated      = "Item created"
)

// Request constants
const (
	HeaderUserID       = "X-User-ID"
	HeaderRetryAfter   = "Retry-After"
	RetryAfterSeconds  = "1"
	ParamCharacterID   = "characterID"
	ParamItemCode      = "itemCode"
	MaxLinesPerRequest = 100
)
