package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDiscount_NoDiscountBelowFourItems(t *testing.T) {
	price := decimal.NewFromInt(100)

	for quantity := 1; quantity <= 3; quantity++ {
		discount := CalculateDiscount(quantity, price)
		assert.True(t, discount.IsZero(), "quantity %d should have no discount", quantity)
	}
}

func TestCalculateDiscount_TenPercentBetweenFourAndNine(t *testing.T) {
	price := decimal.NewFromInt(30)

	discount := CalculateDiscount(4, price)
	assert.True(t, discount.Equal(decimal.NewFromInt(12)), "4x30 = 120, 10%% = 12, got %s", discount)

	discount = CalculateDiscount(9, price)
	assert.True(t, discount.Equal(decimal.NewFromInt(27)), "9x30 = 270, 10%% = 27, got %s", discount)
}

func TestCalculateDiscount_TwentyPercentBetweenTenAndTwenty(t *testing.T) {
	price := decimal.NewFromInt(50)

	discount := CalculateDiscount(10, price)
	assert.True(t, discount.Equal(decimal.NewFromInt(100)), "10x50 = 500, 20%% = 100, got %s", discount)

	discount = CalculateDiscount(20, price)
	assert.True(t, discount.Equal(decimal.NewFromInt(200)), "20x50 = 1000, 20%% = 200, got %s", discount)
}

func TestCalculateDiscount_DecimalPrices(t *testing.T) {
	price := decimal.NewFromFloat(19.99)

	discount := CalculateDiscount(5, price)
	expected := decimal.NewFromFloat(9.995)
	assert.True(t, discount.Equal(expected), "5x19.99 = 99.95, 10%% = 9.995, got %s", discount)
}
