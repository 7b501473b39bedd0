package services

import (
	"fmt"
	"strings"
)

// FormatEUR formats an amount using European notation: thousands grouped
// with dots, comma as decimal separator, trailing euro sign
// (e.g. 1.234.567,89 €). The result always includes exactly 2 decimals.
func FormatEUR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := groupThousands(intPart) + "," + decPart + " €"
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercent renders a percentage with two decimals and a comma
// separator (e.g. 12,50 %).
func FormatPercent(pct float64) string {
	raw := fmt.Sprintf("%.2f", pct)
	return strings.Replace(raw, ".", ",", 1) + " %"
}

// groupThousands inserts dots into an integer string every 3 digits from
// the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	if len(remaining) > 0 {
		result = remaining + "." + result
	}

	return result
}
