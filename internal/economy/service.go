package economy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/concurrency"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/metrics"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

// ErrServiceClosed is returned for operations started after Shutdown.
var ErrServiceClosed = fmt.Errorf("economy service is shutting down: %w", domain.ErrStoreUnavailable)

// Service defines the interface for economy operations.
// Every mutating operation checks that userID owns the character and runs
// as one transaction holding the character's row lock.
type Service interface {
	Purchase(ctx context.Context, characterID int64, userID string, lines []domain.LineItem) (*domain.BalanceResult, error)
	Sell(ctx context.Context, characterID int64, userID string, lines []domain.LineItem) (*domain.BalanceResult, error)
	Equip(ctx context.Context, characterID int64, userID string, itemCode int) (*domain.StatsResult, error)
	Unequip(ctx context.Context, characterID int64, userID string, itemCode int) (*domain.StatsResult, error)
	EarnIncome(ctx context.Context, characterID int64, userID string) (*domain.BalanceResult, error)
	// ListInventory is owner-only.
	ListInventory(ctx context.Context, characterID int64, userID string) ([]domain.InventoryEntry, error)
	ListEquipped(ctx context.Context, characterID int64) ([]domain.EquippedItem, error)
	Shutdown(ctx context.Context) error
}

// Options tunes transaction behaviour. Zero fields take the repository defaults.
type Options = repository.TxOptions

type service struct {
	repo  repository.Economy
	locks *concurrency.LockManager
	opts  Options

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewService creates a new economy service
func NewService(repo repository.Economy, locks *concurrency.LockManager, opts Options) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:  repo,
		locks: locks,
		opts:  opts.WithDefaults(),
	}
}

// Shutdown stops accepting operations and waits for in-flight transactions.
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEconomyShuttingDown)

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgEconomyShutdownDone)
		return nil
	case <-ctx.Done():
		return fmt.Errorf(ErrMsgShutdownTimedOut, ctx.Err())
	}
}

func (s *service) enter() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

// txFunc performs one attempt of an operation inside tx. It must not keep
// state across attempts other than through the variables it assigns.
type txFunc func(ctx context.Context, tx repository.EconomyTx) error

// runTx serializes fn against other operations on the same character, runs it
// in a transaction and retries on lock conflicts.
func (s *service) runTx(ctx context.Context, op string, characterID int64, fn txFunc) (err error) {
	start := time.Now()
	defer func() {
		metrics.EconomyTxDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		result := metrics.ResultSuccess
		if err != nil {
			result = string(domain.KindOf(err))
		}
		metrics.EconomyOperations.WithLabelValues(op, result).Inc()
	}()

	if !s.enter() {
		return ErrServiceClosed
	}
	defer s.wg.Done()

	unlock, err := s.locks.LockCharacter(ctx, characterID)
	if err != nil {
		return domain.Unavailable(ErrMsgAcquireLockFailed, err)
	}
	defer unlock()

	log := logger.FromContext(ctx)
	err = s.opts.RetryConflicts(ctx, func(ctx context.Context) error {
		return s.attempt(ctx, fn)
	}, func(n int, err error) {
		metrics.EconomyTxRetries.WithLabelValues(op).Inc()
		log.Warn(LogMsgTxRetry, "operation", op, "character_id", characterID, "attempt", n, "error", err)
	})

	if err != nil {
		switch domain.KindOf(err) {
		case domain.KindStoreUnavailable, domain.KindUnknown:
			if errors.Is(err, context.Canceled) {
				log.Info(LogMsgOperationCanceled, "operation", op, "character_id", characterID)
				break
			}
			log.Error(LogMsgOperationFailed, "operation", op, "character_id", characterID, "error", err)
		case domain.KindForbidden:
			log.Warn(LogMsgForbiddenAttempt, "operation", op, "character_id", characterID)
		}
	}
	return err
}

func (s *service) attempt(ctx context.Context, fn txFunc) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.SetLockTimeout(ctx, s.opts.LockTimeout); err != nil {
		return err
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}

// lockOwnedCharacter row-locks the character and checks ownership.
func lockOwnedCharacter(ctx context.Context, tx repository.EconomyTx, characterID int64, userID string) (*domain.Character, error) {
	char, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if !char.OwnedBy(userID) {
		return nil, domain.ErrNotOwner
	}
	return char, nil
}
