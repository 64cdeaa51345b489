// Package vocabulary holds the canonical list of recognised skill terms.
package vocabulary

import (
	"strings"
)

// defaultTerms is used when no vocabulary file is configured or it cannot be read.
var defaultTerms = []string{
	"python", "flask", "django", "react", "javascript", "aws", "docker",
	"kubernetes", "sql", "pandas", "numpy", "tensorflow", "pytorch", "nlp", "machine learning",
}

// Vocabulary is an ordered, duplicate-free set of lowercase skill phrases.
// It is immutable after construction and safe for concurrent use.
type Vocabulary struct {
	terms []string
	index map[string]struct{}
}

// New builds a Vocabulary from raw terms. Terms are lowercased and trimmed;
// empty terms are dropped and duplicates keep their first position.
func New(terms []string) *Vocabulary {
	v := &Vocabulary{
		terms: make([]string, 0, len(terms)),
		index: make(map[string]struct{}, len(terms)),
	}
	for _, term := range terms {
		canonical := strings.ToLower(strings.TrimSpace(term))
		if canonical == "" {
			continue
		}
		if _, seen := v.index[canonical]; seen {
			continue
		}
		v.index[canonical] = struct{}{}
		v.terms = append(v.terms, canonical)
	}
	return v
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	return New(defaultTerms)
}

// Terms returns a copy of the terms in their configured order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Has reports whether term (after canonicalisation) is part of the vocabulary.
func (v *Vocabulary) Has(term string) bool {
	_, ok := v.index[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Each calls fn for every term in order.
func (v *Vocabulary) Each(fn func(term string)) {
	for _, term := range v.terms {
		fn(term)
	}
}
