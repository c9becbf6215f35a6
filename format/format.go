// Package format renders monetary amounts and rates for result summaries.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formats an amount with the given symbol, two decimals and
// thousands separators, e.g. Currency("₹", 1234567.891) == "₹1,234,567.89".
func Currency(symbol string, amount float64) string {
	s := decimal.NewFromFloat(amount).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// Percent formats a rate with two decimals, e.g. Percent(8.5) == "8.50%".
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(2) + "%"
}
