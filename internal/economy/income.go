package economy

import (
	"context"
	"fmt"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/logger"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/metrics"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/repository"
)

// EarnIncome credits the fixed passive income amount.
func (s *service) EarnIncome(ctx context.Context, characterID int64, userID string) (*domain.BalanceResult, error) {
	if err := validateCharacterID(characterID); err != nil {
		return nil, err
	}

	var balance int
	err := s.runTx(ctx, OpEarnIncome, characterID, func(ctx context.Context, tx repository.EconomyTx) error {
		char, err := lockOwnedCharacter(ctx, tx, characterID, userID)
		if err != nil {
			return err
		}
		next, ok := mulAdd(char.Money, domain.PassiveIncomeAmount, 1)
		if !ok {
			return fmt.Errorf(ErrMsgBalanceOverflowFmt, domain.ErrCapacityExceeded, char.Money)
		}
		balance = next
		return tx.UpdateCharacterMoney(ctx, characterID, balance)
	})
	if err != nil {
		return nil, err
	}

	metrics.MoneyEarned.WithLabelValues(metrics.SourceIncome).Add(domain.PassiveIncomeAmount)
	logger.FromContext(ctx).Info(LogMsgIncomeEarned, "character_id", characterID, "balance", balance)
	return &domain.BalanceResult{CharacterID: characterID, Balance: balance}, nil
}
