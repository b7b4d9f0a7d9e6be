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

// Sell sells every line or nothing at the current catalog price times the
// sell ratio, rounded down per unit. Repeated codes are checked against the
// cumulative requested quantity.
func (s *service) Sell(ctx context.Context, characterID int64, userID string, lines []domain.LineItem) (*domain.BalanceResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "character_id", characterID, "lines", len(lines))

	if err := validateLineRequest(characterID, lines); err != nil {
		return nil, err
	}

	var balance, earned int
	err := s.runTx(ctx, OpSell, characterID, func(ctx context.Context, tx repository.EconomyTx) error {
		char, err := lockOwnedCharacter(ctx, tx, characterID, userID)
		if err != nil {
			return err
		}

		credit, err := valueSale(ctx, tx, characterID, lines)
		if err != nil {
			return err
		}

		for _, line := range lines {
			if err := tx.RemoveInventory(ctx, characterID, line.ItemCode, line.Count); err != nil {
				return err
			}
		}

		next, ok := mulAdd(char.Money, credit, 1)
		if !ok {
			return fmt.Errorf(ErrMsgBalanceOverflowFmt, domain.ErrCapacityExceeded, char.Money)
		}
		balance = next
		earned = credit
		return tx.UpdateCharacterMoney(ctx, characterID, balance)
	})
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		metrics.ItemsSold.WithLabelValues(metrics.ItemLabel(line.ItemCode)).Add(float64(line.Count))
	}
	metrics.MoneyEarned.WithLabelValues(metrics.SourceSale).Add(float64(earned))

	log.Info(LogMsgItemsSold, "character_id", characterID, "earned", earned, "balance", balance)
	return &domain.BalanceResult{CharacterID: characterID, Balance: balance}, nil
}

// valueSale checks every line against owned quantities and returns the credit.
func valueSale(ctx context.Context, tx repository.EconomyTx, characterID int64, lines []domain.LineItem) (int, error) {
	owned := make(map[int]int, len(lines))
	requested := make(map[int]int, len(lines))
	credit := 0

	for _, line := range lines {
		qty, seen := owned[line.ItemCode]
		if !seen {
			var err error
			qty, err = tx.GetInventoryQuantity(ctx, characterID, line.ItemCode)
			if err != nil {
				return 0, err
			}
			owned[line.ItemCode] = qty
		}

		want, ok := mulAdd(requested[line.ItemCode], 1, line.Count)
		if !ok || want > qty {
			return 0, fmt.Errorf(ErrMsgInsufficientItemsFmt, domain.ErrInsufficientItems, line.ItemCode, qty, want)
		}
		requested[line.ItemCode] = want

		item, err := tx.GetItem(ctx, line.ItemCode)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				return 0, fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, line.ItemCode)
			}
			return 0, err
		}

		next, ok := mulAdd(credit, unitSellPrice(item.Price), line.Count)
		if !ok {
			return 0, fmt.Errorf(ErrMsgSaleValueOverflow, domain.ErrCapacityExceeded)
		}
		credit = next
	}
	return credit, nil
}
