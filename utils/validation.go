// utils/validation.go
package utils

import (
	"strings"
)

// NormalizePhone strips the formatting people type into phone fields
// (spaces, dashes, parentheses) so the stored number is compact. Presence
// is the only requirement on the number itself.
func NormalizePhone(phone string) string {
	cleaned := strings.TrimSpace(phone)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return cleaned
}
