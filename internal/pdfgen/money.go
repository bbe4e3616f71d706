package pdfgen

import (
	"strings"

	"github.com/billfold/billfold/internal/types"
	"github.com/shopspring/decimal"
)

// formatAmount renders a currency amount for display: symbol-prefixed with
// exactly two decimal places. Rounding happens only at this formatting
// boundary; the underlying decimals are carried unrounded.
func formatAmount(amount decimal.Decimal, currency string) string {
	symbol := types.GetCurrencySymbol(strings.ToLower(currency))
	return symbol + amount.StringFixed(2)
}

// formatQuantity renders a quantity without trailing zero padding
func formatQuantity(q decimal.Decimal) string {
	return q.String()
}

// formatRate renders a tax rate percentage without trailing zero padding
func formatRate(rate decimal.Decimal) string {
	return rate.String() + "%"
}
