package repository

import (
	"context"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

// Catalog defines the interface for item definition persistence
type Catalog interface {
	// GetItem returns domain.ErrItemNotFound when no item has the code.
	GetItem(ctx context.Context, code int) (*domain.Item, error)
	// ListItems returns every item ordered by code.
	ListItems(ctx context.Context) ([]domain.ItemSummary, error)
	// CreateItem returns domain.ErrDuplicateItemCode when the code is taken.
	CreateItem(ctx context.Context, item *domain.Item) error
	// UpdateItem changes name and/or stats. Nil arguments are left unchanged.
	UpdateItem(ctx context.Context, code int, name *string, stats *domain.Stats) (*domain.Item, error)
}
