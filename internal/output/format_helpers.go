package output

import (
	"github.com/rpgo/investsim/pkg/money"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency renders an amount the way the currency is written.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64, currency string) string {
	return money.New(amount, currency).Format()
}

// FormatAmount renders an amount fixed to the currency's minor digits without symbol.
func FormatAmount(amount float64, currency string) string {
	return money.New(amount, currency).String()
}

// FormatPercentage formats a fraction (0.1234) as a percentage with 2 decimals ("12.34%").
func FormatPercentage(fraction float64) string {
	return decimal.NewFromFloat(fraction).Mul(decimalHundred).StringFixed(2) + "%"
}
