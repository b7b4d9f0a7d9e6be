package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so query helpers run
// inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", ErrMsgInvalidUserID, domain.ErrInvalidInput)
	}
	return u, nil
}

// pgCode returns the SQLSTATE of err, or "" for non-postgres errors.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation reports whether err is a unique violation on constraint.
// An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// wrapErr classifies a driver error for callers: lock conflicts become
// domain.ErrTxConflict (retryable), connection loss becomes
// domain.ErrStoreUnavailable, and arithmetic past a column's range becomes
// domain.ErrCapacityExceeded. Anything else is wrapped with msg.
func wrapErr(msg string, err error) error {
	if err == nil {
		return nil
	}
	code := pgCode(err)
	switch {
	case code == PgErrorCodeSerializationFailure,
		code == PgErrorCodeDeadlockDetected,
		code == PgErrorCodeLockNotAvailable:
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrTxConflict, err)
	case strings.HasPrefix(code, PgErrorClassConnection),
		code == PgErrorCodeAdminShutdown,
		isConnectionError(err):
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrStoreUnavailable, err)
	case code == PgErrorCodeNumericOutOfRange:
		return fmt.Errorf("%s: %w: %w", msg, domain.ErrCapacityExceeded, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// isConnectionError detects failures to reach the server at all.
func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}

// setLockTimeout bounds how long later statements in tx wait for row locks.
// A non-positive d keeps the server default.
func setLockTimeout(ctx context.Context, tx pgx.Tx, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if _, err := tx.Exec(ctx, querySetLockTimeout, fmt.Sprintf("%dms", d.Milliseconds())); err != nil {
		return wrapErr(ErrMsgFailedToSetLockTimeout, err)
	}
	return nil
}
