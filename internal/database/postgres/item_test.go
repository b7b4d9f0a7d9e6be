package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

func TestCatalogRepository_CreateGetList(t *testing.T) {
	pool := requireDB(t)
	repo := NewCatalogRepository(pool)
	ctx := context.Background()

	seedItem(t, pool, 2, "Potion", domain.Stats{}, 100)
	seedItem(t, pool, 1, "Sword", domain.Stats{Health: 50, Power: 10}, 1000)

	item, err := repo.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Health: 50, Power: 10}, item.Stats)
	assert.Equal(t, 1000, item.Price)

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.ItemSummary{Code: 1, Name: "Sword", Price: 1000}, items[0])
	assert.Equal(t, 2, items[1].Code)
}

func TestCatalogRepository_DuplicateCode(t *testing.T) {
	pool := requireDB(t)
	repo := NewCatalogRepository(pool)
	seedItem(t, pool, 7, "Ring", domain.Stats{Power: 1}, 5)

	err := repo.CreateItem(context.Background(), &domain.Item{Code: 7, Name: "Other", Price: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicateItemCode)
}

func TestCatalogRepository_UpdateKeepsPrice(t *testing.T) {
	pool := requireDB(t)
	repo := NewCatalogRepository(pool)
	ctx := context.Background()
	seedItem(t, pool, 3, "Shield", domain.Stats{Health: 200, Power: -5}, 2000)

	name := "Tower Shield"
	updated, err := repo.UpdateItem(ctx, 3, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "Tower Shield", updated.Name)
	assert.Equal(t, domain.Stats{Health: 200, Power: -5}, updated.Stats, "nil stats are left unchanged")
	assert.Equal(t, 2000, updated.Price)

	stats := domain.Stats{Health: 250}
	updated, err = repo.UpdateItem(ctx, 3, nil, &stats)
	require.NoError(t, err)
	assert.Equal(t, "Tower Shield", updated.Name)
	assert.Equal(t, stats, updated.Stats)
}

func TestCatalogRepository_NotFound(t *testing.T) {
	pool := requireDB(t)
	repo := NewCatalogRepository(pool)

	_, err := repo.GetItem(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	name := "x"
	_, err = repo.UpdateItem(context.Background(), 999, &name, nil)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
