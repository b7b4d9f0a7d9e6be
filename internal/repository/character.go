package repository

import (
	"context"
	"time"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

// Character defines the interface for character persistence
type Character interface {
	// CreateCharacter inserts c and fills in its ID and CreatedAt.
	// nameKey is the case-folded name; a taken key yields domain.ErrDuplicateName.
	CreateCharacter(ctx context.Context, c *domain.Character, nameKey string) error
	GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error)
	BeginTx(ctx context.Context) (CharacterTx, error)
}

// CharacterTx defines the interface for character lifecycle transactions
type CharacterTx interface {
	Tx
	SetLockTimeout(ctx context.Context, d time.Duration) error
	GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error)
	// DeleteCharacter removes the character with its inventory and equipped items.
	DeleteCharacter(ctx context.Context, characterID int64) error
}
