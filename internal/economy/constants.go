package economy

import "github.com/LeeSanghyun1212/Item-Simulator/internal/repository"

// Operation names used in logs and metric labels
const (
	OpPurchase   = "purchase"
	OpSell       = "sell"
	OpEquip      = "equip"
	OpUnequip    = "unequip"
	OpEarnIncome = "earn_income"
)

// Defaults applied when Options leaves a field zero
const (
	DefaultMaxTxRetries = repository.DefaultMaxTxRetries
	DefaultLockTimeout  = repository.DefaultLockTimeout
	DefaultRetryBackoff = repository.DefaultRetryBackoff
)

// ==================== Error Messages ====================

// Formatted error messages for items
const (
	ErrMsgItemNotFoundFmt       = "%w: %d"
	ErrMsgItemNotInInventoryFmt = "%w: item %d"
	ErrMsgInsufficientItemsFmt  = "%w: item %d (owned %d, requested %d)"
	ErrMsgInsufficientFundsFmt  = "%w: need %d, balance %d"
	ErrMsgAlreadyEquippedFmt    = "%w: item %d"
	ErrMsgNotEquippedFmt        = "%w: item %d"
)

// Formatted error messages for balances
const (
	ErrMsgBalanceOverflowFmt = "%w: balance %d cannot absorb the credit"
	ErrMsgSaleValueOverflow  = "sale value overflow: %w"
)

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire character lock"
)

// Shutdown error messages
const (
	ErrMsgShutdownTimedOut = "shutdown timed out: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgPurchaseCalled    = "Purchase called"
	LogMsgItemsPurchased    = "Items purchased"
	LogMsgSellCalled        = "Sell called"
	LogMsgItemsSold         = "Items sold"
	LogMsgEquipCalled       = "Equip called"
	LogMsgItemEquipped      = "Item equipped"
	LogMsgUnequipCalled     = "Unequip called"
	LogMsgItemUnequipped    = "Item unequipped"
	LogMsgIncomeEarned      = "Passive income credited"
	LogMsgTxRetry           = "Retrying economy transaction after lock conflict"
	LogMsgOperationFailed   = "Economy operation failed"
	LogMsgOperationCanceled = "Economy operation canceled by caller"
	LogMsgForbiddenAttempt  = "Rejected operation on character owned by another user"
)

// Shutdown log messages
const (
	LogMsgEconomyShuttingDown = "Economy service shutting down, waiting for in-flight transactions..."
	LogMsgEconomyShutdownDone = "Economy service shutdown complete"
)
