package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

const characterColumns = `character_id, user_id, name, health, power, money, created_at`

const (
	queryInsertCharacter = `
		INSERT INTO characters (user_id, name, name_key, health, power, money)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING character_id, created_at`

	queryGetCharacter = `
		SELECT ` + characterColumns + `
		FROM characters
		WHERE character_id = $1`

	queryGetCharacterForUpdate = queryGetCharacter + `
		FOR UPDATE`

	queryDeleteCharacter = `
		DELETE FROM characters
		WHERE character_id = $1`
)

// CharacterRepository implements repository.Character for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// CharacterTx implements repository.CharacterTx
type CharacterTx struct {
	tx pgx.Tx
}

// CreateCharacter inserts a new character owned by c.UserID
func (r *CharacterRepository) CreateCharacter(ctx context.Context, c *domain.Character, nameKey string) error {
	owner, err := parseUserUUID(c.UserID)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, queryInsertCharacter, owner, c.Name, nameKey, c.Health, c.Power, c.Money).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, ConstraintCharactersNameKey) {
			return domain.ErrDuplicateName
		}
		if pgCode(err) == PgErrorCodeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return wrapErr(ErrMsgFailedToInsertCharacter, err)
	}
	return nil
}

// GetCharacter reads a character without locking it
func (r *CharacterRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	return getCharacter(ctx, r.db, queryGetCharacter, characterID, ErrMsgFailedToGetCharacter)
}

// BeginTx starts a new transaction
func (r *CharacterRepository) BeginTx(ctx context.Context) (repository.CharacterTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	return &CharacterTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *CharacterTx) Commit(ctx context.Context) error {
	return wrapErr(ErrMsgFailedToCommitTransaction, t.tx.Commit(ctx))
}

// Rollback rolls back the transaction
func (t *CharacterTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// SetLockTimeout bounds how long statements in this transaction wait for row locks
func (t *CharacterTx) SetLockTimeout(ctx context.Context, d time.Duration) error {
	return setLockTimeout(ctx, t.tx, d)
}

// GetCharacterForUpdate reads and row-locks a character
func (t *CharacterTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	return getCharacter(ctx, t.tx, queryGetCharacterForUpdate, characterID, ErrMsgFailedToLockCharacter)
}

// DeleteCharacter deletes a character; inventory and equipped rows cascade
func (t *CharacterTx) DeleteCharacter(ctx context.Context, characterID int64) error {
	tag, err := t.tx.Exec(ctx, queryDeleteCharacter, characterID)
	if err != nil {
		return wrapErr(ErrMsgFailedToDeleteCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

func getCharacter(ctx context.Context, q DBTX, query string, characterID int64, msg string) (*domain.Character, error) {
	var (
		c     domain.Character
		owner uuid.UUID
	)
	err := q.QueryRow(ctx, query, characterID).
		Scan(&c.ID, &owner, &c.Name, &c.Health, &c.Power, &c.Money, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, wrapErr(msg, err)
	}
	c.UserID = owner.String()
	return &c, nil
}
