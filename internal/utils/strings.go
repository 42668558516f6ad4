package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// MaskCardNumber hides all but the last four digits of a card number when
// rendering receipts. Short or empty values are returned unchanged.
func MaskCardNumber(number string) string {
	n := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	if len(n) <= 4 {
		return n
	}
	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}
