package character

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/concurrency"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

// Service manages the character lifecycle. Wallet, inventory and equipment
// changes belong to the economy service.
type Service interface {
	CreateCharacter(ctx context.Context, userID, name string) (*domain.Character, error)
	// GetCharacter includes money only when userID owns the character.
	GetCharacter(ctx context.Context, characterID int64, userID string) (*domain.CharacterView, error)
	DeleteCharacter(ctx context.Context, characterID int64, userID string) error
}

type service struct {
	repo          repository.Character
	locks         *concurrency.LockManager
	startingMoney int
	txOpts        repository.TxOptions
}

// NewService creates a new character service. locks and txOpts should match
// the economy service so a delete never interleaves with an in-flight trade
// and waits on row locks the same way.
func NewService(repo repository.Character, locks *concurrency.LockManager, startingMoney int, txOpts repository.TxOptions) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:          repo,
		locks:         locks,
		startingMoney: startingMoney,
		txOpts:        txOpts.WithDefaults(),
	}
}

// NameKey is the case-insensitive uniqueness key for a character name.
func NameKey(name string) string {
	return cases.Fold().String(name)
}

func (s *service) CreateCharacter(ctx context.Context, userID, name string) (*domain.Character, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateCharacterCalled, "name", name)

	if userID == "" {
		return nil, fmt.Errorf("%s: %w", ErrMsgIdentityRequired, domain.ErrInvalidInput)
	}
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	c := &domain.Character{
		UserID: userID,
		Name:   name,
		Health: domain.BaseHealth,
		Power:  domain.BasePower,
		Money:  s.startingMoney,
	}
	if err := s.repo.CreateCharacter(ctx, c, NameKey(name)); err != nil {
		switch domain.KindOf(err) {
		case domain.KindConflict, domain.KindNotFound, domain.KindValidation:
		default:
			log.Error(LogErrFailedToCreate, "error", err, "name", name)
		}
		return nil, err
	}

	log.Info(LogMsgCharacterCreated, "character_id", c.ID, "name", c.Name)
	return c, nil
}

func (s *service) GetCharacter(ctx context.Context, characterID int64, userID string) (*domain.CharacterView, error) {
	if characterID <= 0 {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidCharacterID, domain.ErrInvalidInput)
	}
	c, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	view := c.ViewFor(userID)
	return &view, nil
}

// DeleteCharacter removes an owned character together with its inventory
// and equipped items in one transaction.
func (s *service) DeleteCharacter(ctx context.Context, characterID int64, userID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDeleteCharacterCalled, "character_id", characterID)

	if characterID <= 0 {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCharacterID, domain.ErrInvalidInput)
	}

	unlock, err := s.locks.LockCharacter(ctx, characterID)
	if err != nil {
		return domain.Unavailable(ErrMsgAcquireLockFailed, err)
	}
	defer unlock()

	err = s.txOpts.RetryConflicts(ctx, func(ctx context.Context) error {
		return s.deleteOnce(ctx, characterID, userID)
	}, func(n int, err error) {
		log.Warn(LogMsgDeleteRetry, "character_id", characterID, "attempt", n, "error", err)
	})
	if err != nil {
		if kind := domain.KindOf(err); kind == domain.KindStoreUnavailable || kind == domain.KindUnknown {
			log.Error(LogErrFailedToDelete, "error", err, "character_id", characterID)
		}
		return err
	}

	log.Info(LogMsgCharacterDeleted, "character_id", characterID)
	return nil
}

func (s *service) deleteOnce(ctx context.Context, characterID int64, userID string) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.SetLockTimeout(ctx, s.txOpts.LockTimeout); err != nil {
		return err
	}
	c, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return err
	}
	if !c.OwnedBy(userID) {
		return domain.ErrNotOwner
	}
	if err := tx.DeleteCharacter(ctx, characterID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return fmt.Errorf("%s: %w", ErrMsgNameRequired, domain.ErrInvalidInput)
	}
	if n > domain.MaxCharacterName {
		return fmt.Errorf(ErrMsgNameTooLong+": %w", domain.MaxCharacterName, domain.ErrInvalidInput)
	}
	return nil
}
