package utils

import "github.com/shopspring/decimal"

// Round2 rounds a money or percentage value to 2 decimal places for the
// response boundary. Internal ledger arithmetic keeps full precision.
func Round2(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}

// Round6 rounds a quantity to its 6 decimal place storage precision.
func Round6(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(6).Float64()
	return rounded
}
