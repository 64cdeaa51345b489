// Package matching compares a job description with a resume and bundles every engine result.
package matching

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/roadmap"
	"github.com/jonathan/resume-matcher/internal/roles"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
)

// Engine runs comparisons against a fixed vocabulary.
// It holds no mutable state and may be shared across goroutines.
type Engine struct {
	vocab *vocabulary.Vocabulary
}

// New returns an Engine over vocab. A nil vocab means the built-in default.
func New(vocab *vocabulary.Vocabulary) *Engine {
	if vocab == nil {
		vocab = vocabulary.Default()
	}
	return &Engine{vocab: vocab}
}

// Vocabulary returns the vocabulary the engine matches against.
func (e *Engine) Vocabulary() *vocabulary.Vocabulary {
	return e.vocab
}

// ExtractSkills returns the sorted vocabulary terms found in text.
func (e *Engine) ExtractSkills(text string) []string {
	return skills.Extract(text, e.vocab)
}

// Match scores resume against jobDescription.
func (e *Engine) Match(jobDescription, resume string) types.MatchResult {
	result, _, _ := e.match(jobDescription, resume)
	return result
}

// MatchSkills scores using skill sets the caller already extracted.
func (e *Engine) MatchSkills(jobDescription, resume string, jobSkills, resumeSkills []string) types.MatchResult {
	score := scoring.Compute(jobDescription, resume, jobSkills, resumeSkills)
	return types.MatchResult{
		Score:       score.Overall,
		SkillPct:    score.SkillPct,
		SemanticPct: score.SemanticPct,
		Missing:     skills.Difference(jobSkills, resumeSkills),
		Extra:       skills.Difference(resumeSkills, jobSkills),
	}
}

// Analyze runs the full single-resume review: match, ATS report on the raw
// resume text, roadmap for missing skills and suggested roles.
func (e *Engine) Analyze(jobDescription, resume string, months int) types.Analysis {
	result, jobSkills, resumeSkills := e.match(jobDescription, resume)

	report := ats.Check(resume)
	months = roadmap.ClampMonths(months)
	result.ATS = &report
	result.Roadmap = roadmap.Build(result.Missing, months)

	return types.Analysis{
		MatchResult:  result,
		JobSkills:    jobSkills,
		ResumeSkills: resumeSkills,
		Roles:        roles.Suggest(resumeSkills),
		Months:       months,
	}
}

func (e *Engine) match(jobDescription, resume string) (types.MatchResult, []string, []string) {
	jobSkills := []string{}
	if strings.TrimSpace(jobDescription) != "" {
		jobSkills = e.ExtractSkills(jobDescription)
	}
	resumeSkills := e.ExtractSkills(resume)
	return e.MatchSkills(jobDescription, resume, jobSkills, resumeSkills), jobSkills, resumeSkills
}
