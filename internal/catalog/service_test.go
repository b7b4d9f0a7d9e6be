package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

func sword() *domain.Item {
	return &domain.Item{Code: 1, Name: "Sword", Stats: domain.Stats{Health: 50, Power: 10}, Price: 100}
}

func newTestService(repo *MockRepository) *service {
	return NewService(repo, 16, time.Minute).(*service)
}

func TestGetItem_CachesAfterFirstRead(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()
	repo.On("GetItem", ctx, 1).Return(sword(), nil).Once()

	// ACT
	first, err1 := svc.GetItem(ctx, 1)
	second, err2 := svc.GetItem(ctx, 1)

	// ASSERT
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
	assert.Equal(t, domain.Stats{Health: 50, Power: 10}, second.Stats)
	repo.AssertExpectations(t)
}

func TestGetItem_ReturnedCopyIsIsolated(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()
	repo.On("GetItem", ctx, 1).Return(sword(), nil).Once()

	_, err := svc.GetItem(ctx, 1)
	require.NoError(t, err)
	cached, err := svc.GetItem(ctx, 1)
	require.NoError(t, err)
	cached.Price = 0

	again, err := svc.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, again.Price, "mutating a returned item must not affect the cache")
}

func TestGetItem_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()
	repo.On("GetItem", ctx, 999).Return(nil, domain.ErrItemNotFound)

	item, err := svc.GetItem(ctx, 999)

	assert.Nil(t, item)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Equal(t, 0, svc.cache.Len())
}

func TestGetItem_RejectsNonPositiveCode(t *testing.T) {
	svc := newTestService(new(MockRepository))

	_, err := svc.GetItem(context.Background(), 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetItem_RejectsCodePastStorableRange(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	_, err := svc.GetItem(context.Background(), 3_000_000_000)

	assert.ErrorIs(t, err, domain.ErrInvalidCode)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	repo.AssertNotCalled(t, "GetItem", mock.Anything, mock.Anything)
}

func TestListItems_EmptyIsNotNil(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()
	repo.On("ListItems", ctx).Return(nil, nil)

	items, err := svc.ListItems(ctx)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListItems_WrapsStoreError(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()
	repo.On("ListItems", ctx).Return(nil, domain.Unavailable("list", errors.New("conn refused")))

	_, err := svc.ListItems(ctx)

	assert.Equal(t, domain.KindStoreUnavailable, domain.KindOf(err))
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("valid item is stored with trimmed name", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		repo.On("CreateItem", ctx, mock.MatchedBy(func(it *domain.Item) bool {
			return it.Code == 7 && it.Name == "Shield" && it.Price == 30
		})).Return(nil)

		item, err := svc.CreateItem(ctx, domain.Item{Code: 7, Name: "  Shield ", Price: 30})

		require.NoError(t, err)
		assert.Equal(t, "Shield", item.Name)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		repo.On("CreateItem", ctx, mock.Anything).Return(domain.ErrDuplicateItemCode)

		_, err := svc.CreateItem(ctx, *sword())

		assert.ErrorIs(t, err, domain.ErrDuplicateItemCode)
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})

	invalid := []struct {
		name string
		item domain.Item
	}{
		{"zero code", domain.Item{Code: 0, Name: "x", Price: 1}},
		{"empty name", domain.Item{Code: 1, Name: "   ", Price: 1}},
		{"negative price", domain.Item{Code: 1, Name: "x", Price: -1}},
		{"code past int32", domain.Item{Code: domain.MaxItemCode + 1, Name: "x", Price: 1}},
		{"price past int32", domain.Item{Code: 1, Name: "x", Price: domain.MaxItemPrice + 1}},
		{"stat past int32", domain.Item{Code: 1, Name: "x", Stats: domain.Stats{Power: domain.MaxStatModifier + 1}}},
		{"stat below -int32", domain.Item{Code: 1, Name: "x", Stats: domain.Stats{Health: -domain.MaxStatModifier - 1}}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo)

			_, err := svc.CreateItem(ctx, tt.item)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			repo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("price change is rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		price := 200

		_, err := svc.UpdateItem(ctx, 1, domain.ItemUpdate{Price: &price})

		assert.ErrorIs(t, err, domain.ErrPriceImmutable)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		repo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("out of range stats are rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		stats := domain.Stats{Health: domain.MaxStatModifier + 1}

		_, err := svc.UpdateItem(ctx, 1, domain.ItemUpdate{Stats: &stats})

		assert.ErrorIs(t, err, domain.ErrInvalidStat)
		repo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stats update invalidates cache", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		repo.On("GetItem", ctx, 1).Return(sword(), nil).Once()
		_, err := svc.GetItem(ctx, 1)
		require.NoError(t, err)

		newStats := domain.Stats{Health: 60}
		updated := sword()
		updated.Stats = newStats
		repo.On("UpdateItem", ctx, 1, (*string)(nil), &newStats).Return(updated, nil)
		repo.On("GetItem", ctx, 1).Return(updated, nil).Once()

		_, err = svc.UpdateItem(ctx, 1, domain.ItemUpdate{Stats: &newStats})
		require.NoError(t, err)

		got, err := svc.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, newStats, got.Stats)
		repo.AssertExpectations(t)
	})

	t.Run("missing item", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		name := "Axe"
		repo.On("UpdateItem", ctx, 5, &name, (*domain.Stats)(nil)).Return(nil, domain.ErrItemNotFound)

		_, err := svc.UpdateItem(ctx, 5, domain.ItemUpdate{Name: &name})

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("empty update returns current item", func(t *testing.T) {
		repo := new(MockRepository)
		svc := newTestService(repo)
		repo.On("GetItem", ctx, 1).Return(sword(), nil)

		item, err := svc.UpdateItem(ctx, 1, domain.ItemUpdate{})

		require.NoError(t, err)
		assert.Equal(t, "Sword", item.Name)
		repo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
