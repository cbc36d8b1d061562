package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComputePrice считает стоимость бронирования:
// pricePerMinute * полные минуты, для одиночной игры * SinglesPriceMultiplier
func ComputePrice(pricePerMinute decimal.Decimal, start, end time.Time, isDoubles bool) decimal.Decimal {
	minutes := Window{Start: start, End: end}.Minutes()

	price := pricePerMinute.Mul(decimal.NewFromInt(minutes))
	if !isDoubles {
		price = price.Mul(SinglesPriceMultiplier)
	}
	return price
}

// ValidPricePerMinute reports whether ppm fits the price_per_minute column without rounding:
// non-negative, below MaxPricePerMinute, at most PricePerMinuteScale fractional digits
func ValidPricePerMinute(ppm decimal.Decimal) bool {
	if ppm.IsNegative() || ppm.GreaterThanOrEqual(MaxPricePerMinute) {
		return false
	}
	return ppm.Equal(ppm.Truncate(PricePerMinuteScale))
}
