package utils

import "strings"

// TrimAll returns a copy of slice with surrounding whitespace removed
// from every element. The input is never mutated.
func TrimAll(slice []string) []string {
	trimmed := make([]string, 0, len(slice))
	for _, v := range slice {
		trimmed = append(trimmed, strings.TrimSpace(v))
	}
	return trimmed
}
