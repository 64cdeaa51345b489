// Package skills finds vocabulary terms in free text and compares the resulting skill sets.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/textnorm"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Extract returns the sorted vocabulary terms that occur in text.
// Matching is substring containment on the normalized text, so multi-word
// terms such as "machine learning" are found, and "java" also matches inside
// "javascript".
func Extract(text string, vocab *vocabulary.Vocabulary) []string {
	found := make([]string, 0)
	normalized := textnorm.Normalize(text)
	if normalized == "" || vocab == nil {
		return found
	}

	vocab.Each(func(term string) {
		if strings.Contains(normalized, term) {
			found = append(found, term)
		}
	})

	sort.Strings(found)
	return found
}
