package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/metrics"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

// Equip moves one unit of itemCode from inventory to the equipment set and
// applies its stat modifiers.
func (s *service) Equip(ctx context.Context, characterID int64, userID string, itemCode int) (*domain.StatsResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "character_id", characterID, "item_code", itemCode)

	if err := validateItemCode(itemCode); err != nil {
		return nil, err
	}
	if err := validateCharacterID(characterID); err != nil {
		return nil, err
	}

	var stats domain.Stats
	err := s.runTx(ctx, OpEquip, characterID, func(ctx context.Context, tx repository.EconomyTx) error {
		char, err := lockOwnedCharacter(ctx, tx, characterID, userID)
		if err != nil {
			return err
		}

		qty, err := tx.GetInventoryQuantity(ctx, characterID, itemCode)
		if err != nil {
			return err
		}
		if qty < 1 {
			return fmt.Errorf(ErrMsgItemNotInInventoryFmt, domain.ErrItemNotInInventory, itemCode)
		}

		equipped, err := tx.IsEquipped(ctx, characterID, itemCode)
		if err != nil {
			return err
		}
		if equipped {
			return fmt.Errorf(ErrMsgAlreadyEquippedFmt, domain.ErrAlreadyEquipped, itemCode)
		}

		item, err := resolveItem(ctx, tx, itemCode)
		if err != nil {
			return err
		}

		stats = char.Stats().Add(item.Stats)
		if err := tx.UpdateCharacterStats(ctx, characterID, stats); err != nil {
			return err
		}
		if err := tx.InsertEquipped(ctx, characterID, itemCode); err != nil {
			return err
		}
		return tx.RemoveInventory(ctx, characterID, itemCode, 1)
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsEquipped.WithLabelValues(metrics.ItemLabel(itemCode)).Inc()
	log.Info(LogMsgItemEquipped, "character_id", characterID, "item_code", itemCode, "health", stats.Health, "power", stats.Power)
	return &domain.StatsResult{CharacterID: characterID, Health: stats.Health, Power: stats.Power}, nil
}

// Unequip is the exact inverse of Equip: stats are reverted and one unit
// returns to inventory.
func (s *service) Unequip(ctx context.Context, characterID int64, userID string, itemCode int) (*domain.StatsResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipCalled, "character_id", characterID, "item_code", itemCode)

	if err := validateItemCode(itemCode); err != nil {
		return nil, err
	}
	if err := validateCharacterID(characterID); err != nil {
		return nil, err
	}

	var stats domain.Stats
	err := s.runTx(ctx, OpUnequip, characterID, func(ctx context.Context, tx repository.EconomyTx) error {
		char, err := lockOwnedCharacter(ctx, tx, characterID, userID)
		if err != nil {
			return err
		}

		equipped, err := tx.IsEquipped(ctx, characterID, itemCode)
		if err != nil {
			return err
		}
		if !equipped {
			return fmt.Errorf(ErrMsgNotEquippedFmt, domain.ErrNotEquipped, itemCode)
		}

		item, err := resolveItem(ctx, tx, itemCode)
		if err != nil {
			return err
		}

		stats = char.Stats().Sub(item.Stats)
		if err := tx.UpdateCharacterStats(ctx, characterID, stats); err != nil {
			return err
		}
		if err := tx.DeleteEquipped(ctx, characterID, itemCode); err != nil {
			return err
		}
		return tx.AddInventory(ctx, characterID, itemCode, 1)
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsUnequipped.WithLabelValues(metrics.ItemLabel(itemCode)).Inc()
	log.Info(LogMsgItemUnequipped, "character_id", characterID, "item_code", itemCode, "health", stats.Health, "power", stats.Power)
	return &domain.StatsResult{CharacterID: characterID, Health: stats.Health, Power: stats.Power}, nil
}

func resolveItem(ctx context.Context, tx repository.EconomyTx, code int) (*domain.Item, error) {
	item, err := tx.GetItem(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, code)
		}
		return nil, err
	}
	return item, nil
}
