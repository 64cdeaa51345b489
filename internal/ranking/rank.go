// Package ranking ranks many resumes against one job description.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of comparisons running at once.
const DefaultConcurrency = 4

// Options controls a ranking run.
type Options struct {
	// Concurrency is the maximum number of resumes compared in parallel.
	// Zero or negative means DefaultConcurrency.
	Concurrency int
	// RunID identifies the run; a new UUID is generated when empty.
	RunID string
}

// Rank compares every resume against jobDescription and returns them sorted
// by overall score, highest first. Ties keep input order. Comparisons are
// independent, so they run concurrently; cancelling ctx aborts the run.
func Rank(ctx context.Context, engine *matching.Engine, jobDescription string, resumes []types.ResumeInput, opts Options) (*types.RankedResumes, error) {
	if engine == nil {
		return nil, fmt.Errorf("ranking requires an engine")
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.New().String()
	}

	jobSkills := []string{}
	if strings.TrimSpace(jobDescription) != "" {
		jobSkills = engine.ExtractSkills(jobDescription)
	}

	// Each goroutine writes only its own slot
	rows := make([]types.RankedResume, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, resume := range resumes {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			resumeSkills := engine.ExtractSkills(resume.Text)
			result := engine.MatchSkills(jobDescription, resume.Text, jobSkills, resumeSkills)
			rows[i] = types.RankedResume{
				ID:           resume.ID,
				Name:         resume.Name,
				Score:        result.Score,
				SkillPct:     result.SkillPct,
				SemanticPct:  result.SemanticPct,
				Missing:      result.Missing,
				ResumeSkills: resumeSkills,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking run %s aborted: %w", runID, err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})

	return &types.RankedResumes{
		RunID:     runID,
		JobSkills: jobSkills,
		Count:     len(rows),
		Ranked:    rows,
	}, nil
}
