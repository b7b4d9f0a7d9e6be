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

// Purchase buys every line or nothing. Lines are priced in order and the
// cumulative cost is checked against the balance after each line.
func (s *service) Purchase(ctx context.Context, characterID int64, userID string, lines []domain.LineItem) (*domain.BalanceResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "character_id", characterID, "lines", len(lines))

	if err := validateLineRequest(characterID, lines); err != nil {
		return nil, err
	}

	var balance, spent int
	err := s.runTx(ctx, OpPurchase, characterID, func(ctx context.Context, tx repository.EconomyTx) error {
		char, err := lockOwnedCharacter(ctx, tx, characterID, userID)
		if err != nil {
			return err
		}

		total, err := priceLines(ctx, tx, char.Money, lines)
		if err != nil {
			return err
		}

		for _, line := range lines {
			if err := tx.AddInventory(ctx, characterID, line.ItemCode, line.Count); err != nil {
				return err
			}
		}

		balance = char.Money - total
		spent = total
		return tx.UpdateCharacterMoney(ctx, characterID, balance)
	})
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		metrics.ItemsBought.WithLabelValues(metrics.ItemLabel(line.ItemCode)).Add(float64(line.Count))
	}
	metrics.MoneySpent.Add(float64(spent))

	log.Info(LogMsgItemsPurchased, "character_id", characterID, "spent", spent, "balance", balance)
	return &domain.BalanceResult{CharacterID: characterID, Balance: balance}, nil
}

// priceLines returns the total cost of lines, failing as soon as the running
// total exceeds balance.
func priceLines(ctx context.Context, tx repository.EconomyTx, balance int, lines []domain.LineItem) (int, error) {
	total := 0
	for _, line := range lines {
		item, err := tx.GetItem(ctx, line.ItemCode)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				return 0, fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, line.ItemCode)
			}
			return 0, err
		}

		next, ok := mulAdd(total, item.Price, line.Count)
		if !ok {
			return 0, fmt.Errorf("%w: purchase total overflows", domain.ErrInsufficientFunds)
		}
		total = next
		if total > balance {
			return 0, fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, total, balance)
		}
	}
	return total, nil
}
