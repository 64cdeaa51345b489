// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the outcome of comparing one job description with one resume.
// Percentages are on a 0-100 scale rounded to one decimal place.
type MatchResult struct {
	Score       float64  `json:"score"`
	SkillPct    float64  `json:"skill_pct"`
	SemanticPct float64  `json:"semantic_pct"`
	Missing     []string `json:"missing"`
	Extra       []string `json:"extra"`

	// Filled only when an analysis was requested
	ATS     *ATSReport `json:"ats,omitempty"`
	Roadmap Roadmap    `json:"roadmap,omitempty"`
}

// Analysis is a MatchResult enriched with everything a single-resume review needs.
type Analysis struct {
	MatchResult
	JobSkills    []string `json:"jd_skills"`
	ResumeSkills []string `json:"resume_skills"`
	Roles        []string `json:"roles"`
	Months       int      `json:"months"`
}
