package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Purchase(ctx context.Context, characterID int64, userID string, lines []domain.LineItem) (*domain.BalanceResult, error) {
	args := m.Called(ctx, characterID, userID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceResult), args.Error(1)
}

func (m *MockEconomyService) Sell(ctx context.Context, characterID int64, userID string, lines []domain.LineItem) (*domain.BalanceResult, error) {
	args := m.Called(ctx, characterID, userID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceResult), args.Error(1)
}

func (m *MockEconomyService) Equip(ctx context.Context, characterID int64, userID string, itemCode int) (*domain.StatsResult, error) {
	args := m.Called(ctx, characterID, userID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsResult), args.Error(1)
}

func (m *MockEconomyService) Unequip(ctx context.Context, characterID int64, userID string, itemCode int) (*domain.StatsResult, error) {
	args := m.Called(ctx, characterID, userID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsResult), args.Error(1)
}

func (m *MockEconomyService) EarnIncome(ctx context.Context, characterID int64, userID string) (*domain.BalanceResult, error) {
	args := m.Called(ctx, characterID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceResult), args.Error(1)
}

func (m *MockEconomyService) ListInventory(ctx context.Context, characterID int64, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockEconomyService) ListEquipped(ctx context.Context, characterID int64) ([]domain.EquippedItem, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquippedItem), args.Error(1)
}

func (m *MockEconomyService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) CreateCharacter(ctx context.Context, userID, name string) (*domain.Character, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) GetCharacter(ctx context.Context, characterID int64, userID string) (*domain.CharacterView, error) {
	args := m.Called(ctx, characterID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterView), args.Error(1)
}

func (m *MockCharacterService) DeleteCharacter(ctx context.Context, characterID int64, userID string) error {
	return m.Called(ctx, characterID, userID).Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetItem(ctx context.Context, code int) (*domain.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalogService) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemSummary), args.Error(1)
}

func (m *MockCatalogService) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalogService) UpdateItem(ctx context.Context, code int, upd domain.ItemUpdate) (*domain.Item, error) {
	args := m.Called(ctx, code, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
