package domain

// InventoryEntry is an owned, unequipped stack. Quantity is always > 0;
// a stack that would reach zero is deleted instead.
type InventoryEntry struct {
	ItemCode int    `json:"item_code"`
	Name     string `json:"item_name"`
	Quantity int    `json:"count"`
}

// EquippedItem is an item currently worn by a character.
// A character has at most one per item code.
type EquippedItem struct {
	ItemCode int    `json:"item_code"`
	Name     string `json:"item_name"`
}

// LineItem is one (item, count) pair of a purchase or sale.
type LineItem struct {
	ItemCode int `json:"item_code"`
	Count    int `json:"count"`
}

// ValidateLines checks that lines is non-empty and every line is well formed.
func ValidateLines(lines []LineItem) error {
	if len(lines) == 0 {
		return ErrEmptyLines
	}
	for _, l := range lines {
		if !ValidItemCode(l.ItemCode) {
			return ErrInvalidCode
		}
		if l.Count <= 0 || l.Count > MaxTransactionQuantity {
			return ErrInvalidCount
		}
	}
	return nil
}
