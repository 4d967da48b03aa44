package converter

import "github.com/shopspring/decimal"

// FormatMoney renders an amount with exactly two fraction digits
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
