package economy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitSellPrice(t *testing.T) {
	tests := []struct {
		price int
		want  int
	}{
		{0, 0},
		{1, 0},
		{5, 3},
		{100, 60},
		{999, 599},
		{1000, 600},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unitSellPrice(tt.price), "price %d", tt.price)
	}
}

func TestMulAdd(t *testing.T) {
	got, ok := mulAdd(10, 5, 3)
	assert.True(t, ok)
	assert.Equal(t, 25, got)

	got, ok = mulAdd(7, 0, math.MaxInt)
	assert.True(t, ok)
	assert.Equal(t, 7, got)

	_, ok = mulAdd(1, math.MaxInt, 1)
	assert.False(t, ok)

	_, ok = mulAdd(0, math.MaxInt/2+1, 2)
	assert.False(t, ok)

	_, ok = mulAdd(0, -1, 1)
	assert.False(t, ok)
}
