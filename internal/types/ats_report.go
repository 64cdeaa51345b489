// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ATSCheck is the outcome of one applicant-tracking-system heuristic.
type ATSCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// ATSReport is the ordered list of ATS heuristics evaluated against a resume.
type ATSReport struct {
	Checks []ATSCheck `json:"checks"`
}
