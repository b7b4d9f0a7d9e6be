package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

// MockRepository implements repository.Catalog for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetItem(ctx context.Context, code int) (*domain.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemSummary), args.Error(1)
}

func (m *MockRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) UpdateItem(ctx context.Context, code int, name *string, stats *domain.Stats) (*domain.Item, error) {
	args := m.Called(ctx, code, name, stats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
