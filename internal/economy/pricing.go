package economy

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
)

var sellRatio = decimal.RequireFromString(domain.SellRatio)

// unitSellPrice is what one unit of an item priced at price is bought back
// for, rounded down to whole currency.
func unitSellPrice(price int) int {
	return int(decimal.NewFromInt(int64(price)).Mul(sellRatio).Floor().IntPart())
}

// mulAdd returns total + unit*count and false if the result would overflow.
func mulAdd(total, unit, count int) (int, bool) {
	if unit < 0 || count < 0 {
		return 0, false
	}
	if unit != 0 && count > (math.MaxInt-total)/unit {
		return 0, false
	}
	return total + unit*count, true
}
