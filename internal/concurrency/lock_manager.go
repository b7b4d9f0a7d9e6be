package concurrency

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/semaphore"
)

type keyedLock struct {
	sem  *semaphore.Weighted
	refs int
}

// LockManager handles named locks. Entries are dropped once no caller
// holds or waits on them, so the key space can be unbounded.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyedLock)}
}

// Lock blocks until the lock for key is held or ctx is done.
// The returned func releases the lock and must be called exactly once.
func (lm *LockManager) Lock(ctx context.Context, key string) (func(), error) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyedLock{sem: semaphore.NewWeighted(1)}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	if err := l.sem.Acquire(ctx, 1); err != nil {
		lm.release(key, l)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.sem.Release(1)
			lm.release(key, l)
		})
	}, nil
}

// LockCharacter is Lock keyed by character ID.
func (lm *LockManager) LockCharacter(ctx context.Context, characterID int64) (func(), error) {
	return lm.Lock(ctx, "character:"+strconv.FormatInt(characterID, 10))
}

// Len returns the number of keys currently held or awaited.
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

func (lm *LockManager) release(key string, l *keyedLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}
