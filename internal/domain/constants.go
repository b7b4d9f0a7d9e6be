package domain

import "math"

// Character defaults
const (
	BaseHealth           = 500
	BasePower            = 100
	DefaultStartingMoney = 10000
	MaxCharacterName     = 30
)

// Economy constants
const (
	PassiveIncomeAmount = 100
	// MaxTransactionQuantity caps the count of a single purchase or sale line.
	MaxTransactionQuantity = 1_000_000
	// SellRatio is the fraction of the catalog price paid back on sale.
	SellRatio = "0.6"
)

// Catalog constants
const (
	MaxItemName = 100
	MaxUsername = 50
	// Item codes, prices and stat modifiers are stored as 32-bit integers.
	MaxItemCode     = math.MaxInt32
	MaxItemPrice    = math.MaxInt32
	MaxStatModifier = math.MaxInt32
)
