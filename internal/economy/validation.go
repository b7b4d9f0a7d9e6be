package economy

import (
	"fmt"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

func validateCharacterID(characterID int64) error {
	if characterID <= 0 {
		return fmt.Errorf("character id must be a positive integer: %w", domain.ErrInvalidInput)
	}
	return nil
}

func validateItemCode(code int) error {
	if !domain.ValidItemCode(code) {
		return domain.ErrInvalidCode
	}
	return nil
}

func validateLineRequest(characterID int64, lines []domain.LineItem) error {
	if err := validateCharacterID(characterID); err != nil {
		return err
	}
	return domain.ValidateLines(lines)
}
