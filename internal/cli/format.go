// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats an amount in the user's currency with two decimals
// and comma separators. e.g., 1234.5 -> "€1,234.50"
func FormatMoney(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s€%s.%02d", sign, FormatNumber(whole), cents)
}

// FormatSignedMoney always includes a sign, for balance deltas.
func FormatSignedMoney(amount float64) string {
	if amount >= 0 {
		return "+" + FormatMoney(amount)
	}
	return FormatMoney(amount)
}

// FormatMonth renders a month/year pair like "April 2025".
func FormatMonth(month, year int) string {
	if month >= 1 && month <= 12 {
		return fmt.Sprintf("%s %d", time.Month(month), year)
	}
	return fmt.Sprintf("%02d/%d", month, year)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// Pluralize returns "n word" or "n words".
// e.g., Pluralize(2, "income source") -> "2 income sources"
func Pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
