// Package similarity builds term-frequency vectors from text and compares them.
package similarity

import (
	"regexp"

	"github.com/jonathan/resume-matcher/internal/textnorm"
)

// tokenPattern keeps '+' so that tokens like "c++" survive intact.
var tokenPattern = regexp.MustCompile(`[a-z0-9+]+`)

// Tokenize normalizes text and returns its maximal runs of [a-z0-9+].
func Tokenize(text string) []string {
	tokens := tokenPattern.FindAllString(textnorm.Normalize(text), -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}
