package user

import (
	"context"
	"fmt"
	"regexp"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9]+$`)

// Service defines the user registry. A registered user id is the identity
// the gateway forwards with every character request.
type Service interface {
	RegisterUser(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	repo repository.User
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

// RegisterUser registers a new username
func (s *service) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterUserCalled, "username", username)

	if err := validateUsername(username); err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(ctx, username)
	if err != nil {
		if domain.KindOf(err) != domain.KindConflict {
			log.Error(LogErrFailedToCreateUser, "error", err, "username", username)
		}
		return nil, err
	}

	log.Info(LogMsgUserRegistered, "user_id", user.ID, "username", user.Username)
	return user, nil
}

// GetUser retrieves a registered user
func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func validateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("%s: %w", ErrMsgUsernameRequired, domain.ErrInvalidInput)
	case len(username) > domain.MaxUsername:
		return fmt.Errorf(ErrMsgUsernameTooLong+": %w", domain.MaxUsername, domain.ErrInvalidInput)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("%s: %w", ErrMsgUsernameInvalid, domain.ErrInvalidInput)
	}
	return nil
}
