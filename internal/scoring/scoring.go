// Package scoring blends skill overlap and text similarity into one headline match score.
package scoring

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/similarity"
	"github.com/jonathan/resume-matcher/internal/skills"
)

// Blend weights for the overall score. Explicit skill overlap dominates.
const (
	skillOverlapWeight = 0.65
	semanticWeight     = 0.35
)

// Score holds the overall score and the two components it was built from,
// each as a percentage rounded to one decimal place.
type Score struct {
	Overall     float64
	SkillPct    float64
	SemanticPct float64
}

// SkillRatio returns the fraction of job skills that also appear in the resume.
// The denominator is floored at 1, so an empty job skill set gives 0.
func SkillRatio(jobSkills, resumeSkills []string) float64 {
	jobSet := skills.Canonical(jobSkills)
	matched := len(skills.Intersect(jobSet, resumeSkills))
	return float64(matched) / float64(max(1, len(jobSet)))
}

// Compute scores a resume against a job description.
func Compute(jobText, resumeText string, jobSkills, resumeSkills []string) Score {
	skillRatio := SkillRatio(jobSkills, resumeSkills)
	semantic := similarity.CosineText(jobText, resumeText)
	overall := skillOverlapWeight*skillRatio + semanticWeight*semantic

	return Score{
		Overall:     Percent(overall),
		SkillPct:    Percent(skillRatio),
		SemanticPct: Percent(semantic),
	}
}

// Percent converts a ratio to a percentage rounded to one decimal place.
// Exact halves round to even.
func Percent(ratio float64) float64 {
	return math.RoundToEven(ratio*1000) / 10
}
