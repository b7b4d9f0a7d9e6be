package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

const (
	queryInsertUser = `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING user_id, username, created_at`

	queryGetUserByID = `
		SELECT user_id, username, created_at
		FROM users
		WHERE user_id = $1`
)

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser registers a new username
func (r *UserRepository) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, queryInsertUser, username))
	if err != nil {
		if isUniqueViolation(err, ConstraintUsersUsernameKey) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, wrapErr(ErrMsgFailedToInsertUser, err)
	}
	return user, nil
}

// GetUserByID retrieves a user by UUID
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	user, err := scanUser(r.db.QueryRow(ctx, queryGetUserByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, wrapErr(ErrMsgFailedToGetUser, err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		id   uuid.UUID
		user domain.User
	)
	if err := row.Scan(&id, &user.Username, &user.CreatedAt); err != nil {
		return nil, err
	}
	user.ID = id.String()
	return &user, nil
}
