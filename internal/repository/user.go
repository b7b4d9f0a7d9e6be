package repository

import (
	"context"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// CreateUser returns domain.ErrDuplicateUsername when the name is taken.
	CreateUser(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
