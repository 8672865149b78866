package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a decimal amount in major units tagged with an ISO 4217 code.
type Money struct {
	decimal.Decimal
	Currency string
}

// New creates a Money from a float64 amount
func New(value float64, currency string) Money {
	return Money{decimal.NewFromFloat(value), currency}
}

// currency resolves the code, falling back to a two-digit unnamed currency.
func (m Money) currency() *gomoney.Currency {
	if cur := gomoney.GetCurrency(m.Currency); cur != nil {
		return cur
	}
	return &gomoney.Currency{Code: m.Currency, Fraction: 2, Decimal: ".", Thousand: ",", Template: "1"}
}

// Fraction is the number of minor-unit digits of the currency.
func (m Money) Fraction() int32 {
	return int32(m.currency().Fraction)
}

// Round rounds to the minor unit of the currency
func (m Money) Round() Money {
	return Money{m.Decimal.Round(m.Fraction()), m.Currency}
}

// Minor returns the amount in rounded minor units (cents for BRL)
func (m Money) Minor() int64 {
	return m.Decimal.Shift(m.Fraction()).Round(0).IntPart()
}

// Add adds another amount of the same currency
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal), m.Currency}
}

// Sub subtracts another amount of the same currency
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal), m.Currency}
}

// String returns the plain amount fixed to the currency's minor digits,
// suitable for CSV and JSON.
func (m Money) String() string {
	return m.Decimal.StringFixed(m.Fraction())
}

// Format renders the amount the way the currency is written, e.g. "$1,234.56".
func (m Money) Format() string {
	return m.currency().Formatter().Format(m.Minor())
}
