// Package ats approximates the structural filters applicant tracking systems apply to resumes.
package ats

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MinLength is the minimum resume length, in characters, for the length check.
const MinLength = 200

// Check names, in report order
const (
	CheckEmail         = "email"
	CheckPhone         = "phone"
	CheckSecExperience = "sec_experience"
	CheckSecEducation  = "sec_education"
	CheckSecSkills     = "sec_skills"
	CheckSecProjects   = "sec_projects"
	CheckLength        = "length"
)

var (
	emailPattern = regexp.MustCompile(`[a-z0-9.\-_]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	// \p{Zs} covers no-break and other Unicode spaces left by document extraction
	phonePattern = regexp.MustCompile(`\+?\d[\d\-\s\p{Zs}]{7,}\d`)
)

// heuristic tests the lowercased text; raw is the untouched input.
type heuristic struct {
	name string
	test func(lower, raw string) bool
}

func sectionHeading(word string) heuristic {
	return heuristic{
		name: "sec_" + word,
		test: func(lower, _ string) bool { return strings.Contains(lower, word) },
	}
}

var heuristics = []heuristic{
	{name: CheckEmail, test: func(lower, _ string) bool { return emailPattern.MatchString(lower) }},
	{name: CheckPhone, test: func(lower, _ string) bool { return phonePattern.MatchString(lower) }},
	sectionHeading("experience"),
	sectionHeading("education"),
	sectionHeading("skills"),
	sectionHeading("projects"),
	{name: CheckLength, test: func(_, raw string) bool { return utf8.RuneCountInString(raw) >= MinLength }},
}

// Check evaluates every heuristic against the resume text, in fixed order.
func Check(text string) types.ATSReport {
	lower := strings.ToLower(text)
	report := types.ATSReport{Checks: make([]types.ATSCheck, 0, len(heuristics))}
	for _, h := range heuristics {
		report.Checks = append(report.Checks, types.ATSCheck{
			Name:   h.name,
			Passed: h.test(lower, text),
		})
	}
	return report
}

// Names returns the check names in report order.
func Names() []string {
	names := make([]string, len(heuristics))
	for i, h := range heuristics {
		names[i] = h.name
	}
	return names
}

// Passed counts the passing checks in a report.
func Passed(report types.ATSReport) int {
	n := 0
	for _, c := range report.Checks {
		if c.Passed {
			n++
		}
	}
	return n
}

// Failed lists the names of failing checks in report order.
func Failed(report types.ATSReport) []string {
	failed := make([]string, 0)
	for _, c := range report.Checks {
		if !c.Passed {
			failed = append(failed, c.Name)
		}
	}
	return failed
}
