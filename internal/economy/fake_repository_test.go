package economy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

// FakeRepository is a stateful in-memory repository.Economy. A transaction
// takes the character's row lock in GetCharacterForUpdate, works on a private
// copy of that character's rows and publishes them on Commit, the way a
// SELECT ... FOR UPDATE transaction behaves.
type FakeRepository struct {
	mu       sync.Mutex
	items    map[int]domain.Item
	chars    map[int64]domain.Character
	inv      map[int64]map[int]int
	equipped map[int64]map[int]bool
	rowLocks map[int64]*sync.Mutex

	// conflicts makes the next N commits fail with a retryable conflict
	conflicts int
	commits   int
	beginErr  error

	// waiting counts transactions blocked on a row lock
	waiting atomic.Int32
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		items:    make(map[int]domain.Item),
		chars:    make(map[int64]domain.Character),
		inv:      make(map[int64]map[int]int),
		equipped: make(map[int64]map[int]bool),
		rowLocks: make(map[int64]*sync.Mutex),
	}
}

func (f *FakeRepository) AddItem(item domain.Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.Code] = item
}

func (f *FakeRepository) AddCharacter(c domain.Character) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chars[c.ID] = c
	f.inv[c.ID] = make(map[int]int)
	f.equipped[c.ID] = make(map[int]bool)
	f.rowLocks[c.ID] = &sync.Mutex{}
}

func (f *FakeRepository) SetInventory(characterID int64, code, qty int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if qty == 0 {
		delete(f.inv[characterID], code)
		return
	}
	f.inv[characterID][code] = qty
}

func (f *FakeRepository) Character(characterID int64) domain.Character {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chars[characterID]
}

func (f *FakeRepository) Quantity(characterID int64, code int) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.inv[characterID][code]
	return q, ok
}

func (f *FakeRepository) EquippedCount(characterID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.equipped[characterID])
}

// HoldRow takes the character's row lock as another session would.
func (f *FakeRepository) HoldRow(characterID int64) func() {
	f.mu.Lock()
	lock := f.rowLocks[characterID]
	f.mu.Unlock()
	lock.Lock()
	return lock.Unlock
}

func (f *FakeRepository) Commits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commits
}

func (f *FakeRepository) GetCharacter(_ context.Context, characterID int64) (*domain.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.chars[characterID]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return &c, nil
}

func (f *FakeRepository) ListInventory(_ context.Context, characterID int64) ([]domain.InventoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.InventoryEntry
	for code, q := range f.inv[characterID] {
		out = append(out, domain.InventoryEntry{ItemCode: code, Name: f.items[code].Name, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemCode < out[j].ItemCode })
	return out, nil
}

func (f *FakeRepository) ListEquipped(_ context.Context, characterID int64) ([]domain.EquippedItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.EquippedItem
	for code := range f.equipped[characterID] {
		out = append(out, domain.EquippedItem{ItemCode: code, Name: f.items[code].Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemCode < out[j].ItemCode })
	return out, nil
}

func (f *FakeRepository) BeginTx(_ context.Context) (repository.EconomyTx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return &fakeTx{repo: f}, nil
}

type fakeTx struct {
	repo   *FakeRepository
	lock   *sync.Mutex
	charID int64
	char   domain.Character
	inv    map[int]int
	eq     map[int]bool
	done   bool
}

var errNotLocked = errors.New("fake: character row accessed without FOR UPDATE")

func (t *fakeTx) finish() {
	t.done = true
	if t.lock != nil {
		t.lock.Unlock()
		t.lock = nil
	}
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	defer t.finish()

	f := t.repo
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflicts > 0 {
		f.conflicts--
		return fmt.Errorf("fake commit: %w", domain.ErrTxConflict)
	}
	if t.lock != nil {
		if t.char.Money < 0 {
			return fmt.Errorf("fake: money check violated")
		}
		f.chars[t.charID] = t.char
		f.inv[t.charID] = t.inv
		f.equipped[t.charID] = t.eq
	}
	f.commits++
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.finish()
	return nil
}

func (t *fakeTx) SetLockTimeout(_ context.Context, _ time.Duration) error { return nil }

func (t *fakeTx) GetCharacterForUpdate(_ context.Context, characterID int64) (*domain.Character, error) {
	f := t.repo
	f.mu.Lock()
	lock, ok := f.rowLocks[characterID]
	f.mu.Unlock()
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}

	f.waiting.Add(1)
	lock.Lock()
	f.waiting.Add(-1)
	t.lock = lock
	t.charID = characterID

	f.mu.Lock()
	defer f.mu.Unlock()
	t.char = f.chars[characterID]
	t.inv = make(map[int]int, len(f.inv[characterID]))
	for k, v := range f.inv[characterID] {
		t.inv[k] = v
	}
	t.eq = make(map[int]bool, len(f.equipped[characterID]))
	for k, v := range f.equipped[characterID] {
		t.eq[k] = v
	}
	c := t.char
	return &c, nil
}

func (t *fakeTx) owns(characterID int64) error {
	if t.lock == nil || t.charID != characterID {
		return errNotLocked
	}
	return nil
}

func (t *fakeTx) GetItem(_ context.Context, code int) (*domain.Item, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	it, ok := t.repo.items[code]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &it, nil
}

func (t *fakeTx) GetInventoryQuantity(_ context.Context, characterID int64, code int) (int, error) {
	if err := t.owns(characterID); err != nil {
		return 0, err
	}
	return t.inv[code], nil
}

func (t *fakeTx) AddInventory(_ context.Context, characterID int64, code int, quantity int) error {
	if err := t.owns(characterID); err != nil {
		return err
	}
	t.inv[code] += quantity
	return nil
}

func (t *fakeTx) RemoveInventory(_ context.Context, characterID int64, code int, quantity int) error {
	if err := t.owns(characterID); err != nil {
		return err
	}
	q := t.inv[code]
	switch {
	case q < quantity:
		return domain.ErrInsufficientItems
	case q == quantity:
		delete(t.inv, code)
	default:
		t.inv[code] = q - quantity
	}
	return nil
}

func (t *fakeTx) IsEquipped(_ context.Context, characterID int64, code int) (bool, error) {
	if err := t.owns(characterID); err != nil {
		return false, err
	}
	return t.eq[code], nil
}

func (t *fakeTx) InsertEquipped(_ context.Context, characterID int64, code int) error {
	if err := t.owns(characterID); err != nil {
		return err
	}
	if t.eq[code] {
		return domain.ErrAlreadyEquipped
	}
	t.eq[code] = true
	return nil
}

func (t *fakeTx) DeleteEquipped(_ context.Context, characterID int64, code int) error {
	if err := t.owns(characterID); err != nil {
		return err
	}
	if !t.eq[code] {
		return domain.ErrNotEquipped
	}
	delete(t.eq, code)
	return nil
}

func (t *fakeTx) UpdateCharacterMoney(_ context.Context, characterID int64, money int) error {
	if err := t.owns(characterID); err != nil {
		return err
	}
	if money < 0 {
		return domain.ErrInsufficientFunds
	}
	t.char.Money = money
	return nil
}

func (t *fakeTx) UpdateCharacterStats(_ context.Context, characterID int64, stats domain.Stats) error {
	if err := t.owns(characterID); err != nil {
		return err
	}
	t.char.Health = stats.Health
	t.char.Power = stats.Power
	return nil
}
