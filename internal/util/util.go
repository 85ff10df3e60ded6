package util

import (
	"fmt"
	"math"
	"regexp"
)

// MinPhoneLength is the shortest accepted phone number, counting formatting characters.
const MinPhoneLength = 10

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

// IsValidPhone reports whether phone looks like a dialable number: digits,
// spaces, dashes and parentheses with an optional leading plus.
func IsValidPhone(phone string) bool {
	return len(phone) >= MinPhoneLength && phonePattern.MatchString(phone)
}

// RoundCurrency rounds an amount to cents, half away from zero.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatCurrency renders an amount with two decimals (e.g., "25.00").
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("%.2f", RoundCurrency(amount))
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
