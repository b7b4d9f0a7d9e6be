package repository

import (
	"context"
	"errors"
	"time"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

// Defaults applied when TxOptions leaves a field zero
const (
	DefaultMaxTxRetries = 3
	DefaultLockTimeout  = 2 * time.Second
	DefaultRetryBackoff = 20 * time.Millisecond
)

// ErrMsgRetryAborted prefixes a context error that ended a retry wait.
const ErrMsgRetryAborted = "transaction retry aborted"

// TxOptions tunes row-lock waits and conflict retries for a transaction.
type TxOptions struct {
	// MaxTxRetries is how many times a transaction is re-run after a
	// serialization failure, deadlock or lock timeout. Negative disables retries.
	MaxTxRetries int
	LockTimeout  time.Duration
	RetryBackoff time.Duration
}

// WithDefaults fills zero fields with the package defaults.
func (o TxOptions) WithDefaults() TxOptions {
	if o.MaxTxRetries == 0 {
		o.MaxTxRetries = DefaultMaxTxRetries
	}
	if o.MaxTxRetries < 0 {
		o.MaxTxRetries = 0
	}
	if o.LockTimeout == 0 {
		o.LockTimeout = DefaultLockTimeout
	}
	if o.RetryBackoff == 0 {
		o.RetryBackoff = DefaultRetryBackoff
	}
	return o
}

// RetryConflicts runs attempt until it succeeds, fails with something other
// than domain.ErrTxConflict, or MaxTxRetries re-runs are spent. The wait
// before re-run n is n*RetryBackoff. onRetry may be nil.
func (o TxOptions) RetryConflicts(ctx context.Context, attempt func(ctx context.Context) error, onRetry func(n int, err error)) error {
	for n := 1; ; n++ {
		err := attempt(ctx)
		if err == nil || !errors.Is(err, domain.ErrTxConflict) || n > o.MaxTxRetries {
			return err
		}
		if onRetry != nil {
			onRetry(n, err)
		}

		select {
		case <-ctx.Done():
			return domain.Unavailable(ErrMsgRetryAborted, ctx.Err())
		case <-time.After(o.RetryBackoff * time.Duration(n)):
		}
	}
}
