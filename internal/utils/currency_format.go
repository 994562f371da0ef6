package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPKR renders an amount the way the books are read aloud: rupees with
// thousands separators and no decimal places.
// Example: 1234567.89 -> "Rs 1,234,568"
func FormatPKR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	digits := rounded.Abs().String()

	var b strings.Builder
	b.WriteString("Rs ")
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
