package economy

import (
	"context"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

func (s *service) ListInventory(ctx context.Context, characterID int64, userID string) ([]domain.InventoryEntry, error) {
	if err := validateCharacterID(characterID); err != nil {
		return nil, err
	}
	char, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if !char.OwnedBy(userID) {
		return nil, domain.ErrNotOwner
	}

	entries, err := s.repo.ListInventory(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.InventoryEntry{}
	}
	return entries, nil
}

func (s *service) ListEquipped(ctx context.Context, characterID int64) ([]domain.EquippedItem, error) {
	if err := validateCharacterID(characterID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListEquipped(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.EquippedItem{}
	}
	return items, nil
}
