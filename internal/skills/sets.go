package skills

import (
	"sort"
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// Canonical lowercases, trims and deduplicates skills, returning them sorted.
func Canonical(skills []string) []string {
	lookup := slice.ToMap(skills, func(element string) string {
		return strings.ToLower(strings.TrimSpace(element))
	})
	out := make([]string, 0, len(lookup))
	for skill := range lookup {
		if skill != "" {
			out = append(out, skill)
		}
	}
	sort.Strings(out)
	return out
}

// Intersect returns the sorted skills present in both a and b.
func Intersect(a, b []string) []string {
	inB := asSet(b)
	out := make([]string, 0)
	for _, skill := range Canonical(a) {
		if _, ok := inB[skill]; ok {
			out = append(out, skill)
		}
	}
	return out
}

// Difference returns the sorted skills in a that are not in b.
func Difference(a, b []string) []string {
	inB := asSet(b)
	out := make([]string, 0)
	for _, skill := range Canonical(a) {
		if _, ok := inB[skill]; !ok {
			out = append(out, skill)
		}
	}
	return out
}

func asSet(skills []string) map[string]string {
	return slice.ToMap(Canonical(skills), func(element string) string {
		return element
	})
}
