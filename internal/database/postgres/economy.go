package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

const (
	querySetLockTimeout = `SELECT set_config('lock_timeout', $1, true)`

	queryListInventory = `
		SELECT i.item_code, it.item_name, i.quantity
		FROM inventory i
		JOIN items it ON it.item_code = i.item_code
		WHERE i.character_id = $1
		ORDER BY i.item_code`

	queryListEquipped = `
		SELECT e.item_code, it.item_name
		FROM equipped_items e
		JOIN items it ON it.item_code = e.item_code
		WHERE e.character_id = $1
		ORDER BY e.item_code`

	queryGetInventoryQuantity = `
		SELECT quantity
		FROM inventory
		WHERE character_id = $1 AND item_code = $2`

	queryUpsertInventory = `
		INSERT INTO inventory (character_id, item_code, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, item_code)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity`

	queryDecrementInventory = `
		UPDATE inventory
		SET quantity = quantity - $3
		WHERE character_id = $1 AND item_code = $2 AND quantity > $3`

	queryDeleteInventoryExact = `
		DELETE FROM inventory
		WHERE character_id = $1 AND item_code = $2 AND quantity = $3`

	queryIsEquipped = `
		SELECT EXISTS (
			SELECT 1 FROM equipped_items
			WHERE character_id = $1 AND item_code = $2
		)`

	queryInsertEquipped = `
		INSERT INTO equipped_items (character_id, item_code)
		VALUES ($1, $2)`

	queryDeleteEquipped = `
		DELETE FROM equipped_items
		WHERE character_id = $1 AND item_code = $2`

	queryUpdateMoney = `
		UPDATE characters
		SET money = $2
		WHERE character_id = $1`

	queryUpdateStats = `
		UPDATE characters
		SET health = $2, power = $3
		WHERE character_id = $1`
)

// EconomyRepository implements repository.Economy for PostgreSQL
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// EconomyTx implements repository.EconomyTx
type EconomyTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	return &EconomyTx{tx: tx}, nil
}

// GetCharacter reads a character without locking it
func (r *EconomyRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	return getCharacter(ctx, r.db, queryGetCharacter, characterID, ErrMsgFailedToGetCharacter)
}

// ListInventory returns the character's stacks ordered by item code
func (r *EconomyRepository) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx, queryListInventory, characterID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetInventory, err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InventoryEntry, error) {
		var e domain.InventoryEntry
		err := row.Scan(&e.ItemCode, &e.Name, &e.Quantity)
		return e, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetInventory, err)
	}
	return entries, nil
}

// ListEquipped returns the character's equipped items ordered by item code
func (r *EconomyRepository) ListEquipped(ctx context.Context, characterID int64) ([]domain.EquippedItem, error) {
	rows, err := r.db.Query(ctx, queryListEquipped, characterID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetEquipped, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EquippedItem, error) {
		var e domain.EquippedItem
		err := row.Scan(&e.ItemCode, &e.Name)
		return e, err
	})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetEquipped, err)
	}
	return items, nil
}

// Commit commits the transaction
func (t *EconomyTx) Commit(ctx context.Context) error {
	return wrapErr(ErrMsgFailedToCommitTransaction, t.tx.Commit(ctx))
}

// Rollback rolls back the transaction
func (t *EconomyTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// SetLockTimeout bounds how long statements in this transaction wait for row locks
func (t *EconomyTx) SetLockTimeout(ctx context.Context, d time.Duration) error {
	return setLockTimeout(ctx, t.tx, d)
}

// GetCharacterForUpdate reads and row-locks a character
func (t *EconomyTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	return getCharacter(ctx, t.tx, queryGetCharacterForUpdate, characterID, ErrMsgFailedToLockCharacter)
}

// GetItem retrieves an item by code within the transaction
func (t *EconomyTx) GetItem(ctx context.Context, code int) (*domain.Item, error) {
	return getItem(ctx, t.tx, code)
}

// GetInventoryQuantity returns how many unequipped units the character owns
func (t *EconomyTx) GetInventoryQuantity(ctx context.Context, characterID int64, code int) (int, error) {
	var qty int
	err := t.tx.QueryRow(ctx, queryGetInventoryQuantity, characterID, code).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, wrapErr(ErrMsgFailedToGetInventory, err)
	}
	return qty, nil
}

// AddInventory creates or grows a stack
func (t *EconomyTx) AddInventory(ctx context.Context, characterID int64, code int, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidCount
	}
	if _, err := t.tx.Exec(ctx, queryUpsertInventory, characterID, code, quantity); err != nil {
		return wrapErr(ErrMsgFailedToAddInventory, err)
	}
	return nil
}

// RemoveInventory shrinks a stack, deleting it when it reaches zero
func (t *EconomyTx) RemoveInventory(ctx context.Context, characterID int64, code int, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidCount
	}
	tag, err := t.tx.Exec(ctx, queryDecrementInventory, characterID, code, quantity)
	if err != nil {
		return wrapErr(ErrMsgFailedToRemoveInventory, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	tag, err = t.tx.Exec(ctx, queryDeleteInventoryExact, characterID, code, quantity)
	if err != nil {
		return wrapErr(ErrMsgFailedToRemoveInventory, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientItems
	}
	return nil
}

// IsEquipped reports whether the character has the item equipped
func (t *EconomyTx) IsEquipped(ctx context.Context, characterID int64, code int) (bool, error) {
	var equipped bool
	if err := t.tx.QueryRow(ctx, queryIsEquipped, characterID, code).Scan(&equipped); err != nil {
		return false, wrapErr(ErrMsgFailedToGetEquipped, err)
	}
	return equipped, nil
}

// InsertEquipped records the item as equipped
func (t *EconomyTx) InsertEquipped(ctx context.Context, characterID int64, code int) error {
	if _, err := t.tx.Exec(ctx, queryInsertEquipped, characterID, code); err != nil {
		if isUniqueViolation(err, ConstraintEquippedItemsPkey) {
			return domain.ErrAlreadyEquipped
		}
		return wrapErr(ErrMsgFailedToEquip, err)
	}
	return nil
}

// DeleteEquipped removes the equipped record
func (t *EconomyTx) DeleteEquipped(ctx context.Context, characterID int64, code int) error {
	tag, err := t.tx.Exec(ctx, queryDeleteEquipped, characterID, code)
	if err != nil {
		return wrapErr(ErrMsgFailedToUnequip, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotEquipped
	}
	return nil
}

// UpdateCharacterMoney writes the character's balance
func (t *EconomyTx) UpdateCharacterMoney(ctx context.Context, characterID int64, money int) error {
	tag, err := t.tx.Exec(ctx, queryUpdateMoney, characterID, money)
	if err != nil {
		if pgCode(err) == PgErrorCodeCheckViolation {
			return domain.ErrInsufficientFunds
		}
		return wrapErr(ErrMsgFailedToUpdateCharacterMoney, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// UpdateCharacterStats writes the character's health and power
func (t *EconomyTx) UpdateCharacterStats(ctx context.Context, characterID int64, stats domain.Stats) error {
	tag, err := t.tx.Exec(ctx, queryUpdateStats, characterID, stats.Health, stats.Power)
	if err != nil {
		return wrapErr(ErrMsgFailedToUpdateCharacterStats, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}
