package repository

import (
	"context"
	"time"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

// Economy defines the interface for economy persistence
type Economy interface {
	GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error)
	// ListInventory returns the character's stacks ordered by item code.
	ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryEntry, error)
	// ListEquipped returns the character's equipped items ordered by item code.
	ListEquipped(ctx context.Context, characterID int64) ([]domain.EquippedItem, error)
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx defines the interface for economy transactions.
// GetCharacterForUpdate must be the first read: it takes the per-character
// row lock that serializes every mutating operation on that character.
type EconomyTx interface {
	Tx
	SetLockTimeout(ctx context.Context, d time.Duration) error
	GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error)
	GetItem(ctx context.Context, code int) (*domain.Item, error)
	// GetInventoryQuantity returns 0 when the character owns no unequipped unit.
	GetInventoryQuantity(ctx context.Context, characterID int64, code int) (int, error)
	AddInventory(ctx context.Context, characterID int64, code int, quantity int) error
	// RemoveInventory deletes the stack when it reaches zero and returns
	// domain.ErrInsufficientItems when fewer than quantity units are owned.
	RemoveInventory(ctx context.Context, characterID int64, code int, quantity int) error
	IsEquipped(ctx context.Context, characterID int64, code int) (bool, error)
	// InsertEquipped returns domain.ErrAlreadyEquipped on a duplicate.
	InsertEquipped(ctx context.Context, characterID int64, code int) error
	// DeleteEquipped returns domain.ErrNotEquipped when nothing was removed.
	DeleteEquipped(ctx context.Context, characterID int64, code int) error
	UpdateCharacterMoney(ctx context.Context, characterID int64, money int) error
	UpdateCharacterStats(ctx context.Context, characterID int64, stats domain.Stats) error
}
