package utils

import (
	"fmt"
	"strings"
)

// FormatBaht formats an amount as Thai Baht with thousand separators.
// Example: 1250.5 -> "฿1,250.50"
func FormatBaht(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + "฿" + strings.Join(groups, ",") + "." + decimalPart
}
