package economy

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

// MockRepository implements repository.Economy for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockRepository) ListEquipped(ctx context.Context, characterID int64) ([]domain.EquippedItem, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquippedItem), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}

// MockTx implements repository.EconomyTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) SetLockTimeout(ctx context.Context, d time.Duration) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockTx) GetCharacterForUpdate(ctx context.Context, characterID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockTx) GetItem(ctx context.Context, code int) (*domain.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockTx) GetInventoryQuantity(ctx context.Context, characterID int64, code int) (int, error) {
	args := m.Called(ctx, characterID, code)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) AddInventory(ctx context.Context, characterID int64, code int, quantity int) error {
	return m.Called(ctx, characterID, code, quantity).Error(0)
}

func (m *MockTx) RemoveInventory(ctx context.Context, characterID int64, code int, quantity int) error {
	return m.Called(ctx, characterID, code, quantity).Error(0)
}

func (m *MockTx) IsEquipped(ctx context.Context, characterID int64, code int) (bool, error) {
	args := m.Called(ctx, characterID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) InsertEquipped(ctx context.Context, characterID int64, code int) error {
	return m.Called(ctx, characterID, code).Error(0)
}

func (m *MockTx) DeleteEquipped(ctx context.Context, characterID int64, code int) error {
	return m.Called(ctx, characterID, code).Error(0)
}

func (m *MockTx) UpdateCharacterMoney(ctx context.Context, characterID int64, money int) error {
	return m.Called(ctx, characterID, money).Error(0)
}

func (m *MockTx) UpdateCharacterStats(ctx context.Context, characterID int64, stats domain.Stats) error {
	return m.Called(ctx, characterID, stats).Error(0)
}
