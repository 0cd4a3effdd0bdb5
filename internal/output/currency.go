package output

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders a decimal amount in the plan's currency, e.g.
// "$1,000,000.00". Unknown codes fall back to a bare fixed-point string.
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		return amount.StringFixed(2)
	}
	units := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(units, currencyCode).Display()
}

// FormatPercent renders a ratio as a percentage with two decimals.
func FormatPercent(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
