// Package textnorm converts free text into the canonical form used for matching.
package textnorm

import "strings"

// Normalize lowercases text, collapses every run of whitespace (spaces, tabs,
// newlines and other Unicode spaces) into a single space and trims both ends.
// It is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
