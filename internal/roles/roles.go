// Package roles maps a skill set to plausible job titles.
package roles

import (
	"sort"
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

// Fallback is returned when no rule matches.
const Fallback = "Software Engineer (General)"

// Rule suggests Title when any of Keywords is among the candidate's skills.
type Rule struct {
	Keywords []string
	Title    string
}

// DefaultRules is the built-in rule table, evaluated in order.
var DefaultRules = []Rule{
	{Keywords: []string{"python", "django", "flask", "sql"}, Title: "Backend Developer (Python)"},
	{Keywords: []string{"react", "javascript", "html", "css"}, Title: "Frontend Developer (React)"},
	{Keywords: []string{"pandas", "numpy", "data"}, Title: "Data Analyst / Jr Data Scientist"},
	{Keywords: []string{"aws", "docker", "kubernetes"}, Title: "DevOps / Cloud Engineer (Junior)"},
}

// Matches reports whether the rule fires for the given lowercase skills.
func (r Rule) Matches(skills []string) bool {
	for _, keyword := range r.Keywords {
		if slice.Contains(skills, keyword) {
			return true
		}
	}
	return false
}

// Suggest applies DefaultRules to skills.
func Suggest(skills []string) []string {
	return SuggestWith(DefaultRules, skills)
}

// SuggestWith returns the sorted, deduplicated titles of every matching rule,
// or just Fallback when nothing matches.
func SuggestWith(rules []Rule, skills []string) []string {
	lower := slice.Map(skills, func(_ int, src string) string {
		return strings.ToLower(strings.TrimSpace(src))
	})

	titles := make(map[string]struct{})
	for _, rule := range rules {
		if rule.Matches(lower) {
			titles[rule.Title] = struct{}{}
		}
	}
	if len(titles) == 0 {
		return []string{Fallback}
	}

	out := make([]string, 0, len(titles))
	for title := range titles {
		out = append(out, title)
	}
	sort.Strings(out)
	return out
}
