package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

// Service defines the interface for catalog operations
type Service interface {
	// GetItem returns the full definition, stats included.
	GetItem(ctx context.Context, code int) (*domain.Item, error)
	// ListItems returns code, name and price of every item ordered by code.
	ListItems(ctx context.Context) ([]domain.ItemSummary, error)
	CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error)
	// UpdateItem changes name and/or stats. Any price in upd is rejected.
	UpdateItem(ctx context.Context, code int, upd domain.ItemUpdate) (*domain.Item, error)
}

type service struct {
	repo  repository.Catalog
	cache *itemCache
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newItemCache(cacheSize, cacheTTL),
	}
}

func (s *service) GetItem(ctx context.Context, code int) (*domain.Item, error) {
	if !domain.ValidItemCode(code) {
		return nil, domain.ErrInvalidCode
	}
	if item, ok := s.cache.Get(code); ok {
		return item, nil
	}

	item, err := s.repo.GetItem(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	s.cache.Set(item)
	return item, nil
}

func (s *service) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}
	if items == nil {
		items = []domain.ItemSummary{}
	}
	return items, nil
}

func (s *service) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidItemCode(item.Code) {
		return nil, domain.ErrInvalidCode
	}
	name, err := validateName(item.Name)
	if err != nil {
		return nil, err
	}
	item.Name = name
	if !domain.ValidItemPrice(item.Price) {
		return nil, fmt.Errorf(ErrMsgPriceRangeFmt, domain.ErrInvalidPrice, item.Price)
	}
	if err := item.Stats.ValidateModifiers(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, &item); err != nil {
		if errors.Is(err, domain.ErrDuplicateItemCode) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgCreateItemFailed, err)
	}
	s.cache.Invalidate(item.Code)

	log.Info(LogMsgItemCreated, "item_code", item.Code, "name", item.Name, "price", item.Price)
	return &item, nil
}

func (s *service) UpdateItem(ctx context.Context, code int, upd domain.ItemUpdate) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidItemCode(code) {
		return nil, domain.ErrInvalidCode
	}
	if upd.Price != nil {
		log.Warn(LogMsgPriceChangeDenied, "item_code", code, "requested_price", *upd.Price)
		return nil, domain.ErrPriceImmutable
	}
	if upd.Name != nil {
		name, err := validateName(*upd.Name)
		if err != nil {
			return nil, err
		}
		upd.Name = &name
	}
	if upd.Stats != nil {
		if err := upd.Stats.ValidateModifiers(); err != nil {
			return nil, err
		}
	}
	if upd.Name == nil && upd.Stats == nil {
		return s.GetItem(ctx, code)
	}

	item, err := s.repo.UpdateItem(ctx, code, upd.Name, upd.Stats)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgUpdateItemFailed, err)
	}
	s.cache.Invalidate(code)

	log.Info(LogMsgItemUpdated, "item_code", code)
	return item, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxItemName {
		return "", fmt.Errorf(ErrMsgInvalidNameFmt, domain.MaxItemName, domain.ErrInvalidInput)
	}
	return name, nil
}
