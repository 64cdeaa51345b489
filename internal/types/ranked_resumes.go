// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeInput is one resume submitted for batch ranking.
type ResumeInput struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Text string `json:"text"`
}

// RankedResumes represents the result of ranking many resumes against one job description
type RankedResumes struct {
	RunID     string         `json:"run_id"`
	JobSkills []string       `json:"jd_skills"`
	Count     int            `json:"count"`
	Ranked    []RankedResume `json:"ranked"`
}

// RankedResume represents a single ranked resume with its scores
type RankedResume struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Score        float64  `json:"score"`
	SkillPct     float64  `json:"skill_pct"`
	SemanticPct  float64  `json:"semantic_pct"`
	Missing      []string `json:"missing"`
	ResumeSkills []string `json:"resume_skills"`
}
