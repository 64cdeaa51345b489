// Package observability provides logging setup and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

// PrintMatchResult outputs the score breakdown and skill gaps.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}
	p.printBox("MATCH RESULT", strings.TrimSuffix(matchSummary(result), "\n"))
}

func matchSummary(result *types.MatchResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:     %.1f%%\n", result.Score))
	sb.WriteString(fmt.Sprintf("Skills:    %.1f%%\n", result.SkillPct))
	sb.WriteString(fmt.Sprintf("Semantic:  %.1f%%\n", result.SemanticPct))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Missing:   %s\n", joinOrNone(result.Missing)))
	sb.WriteString(fmt.Sprintf("Extra:     %s\n", joinOrNone(result.Extra)))
	return sb.String()
}

// PrintAnalysis outputs the full review: match, ATS checks, roles and roadmap.
func (p *Printer) PrintAnalysis(analysis *types.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("JD skills:     %s\n", joinOrNone(analysis.JobSkills)))
	sb.WriteString(fmt.Sprintf("Resume skills: %s\n\n", joinOrNone(analysis.ResumeSkills)))
	sb.WriteString(matchSummary(&analysis.MatchResult))
	sb.WriteString("\nSuggested roles:\n")
	for _, role := range analysis.Roles {
		sb.WriteString(fmt.Sprintf("  • %s\n", role))
	}
	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))

	p.PrintATS(analysis.ATS)
	p.PrintRoadmap(analysis.Roadmap)
}

// PrintATS outputs each ATS check as pass or fail.
func (p *Printer) PrintATS(report *types.ATSReport) {
	if report == nil || len(report.Checks) == 0 {
		return
	}

	var sb strings.Builder
	passed := 0
	for _, check := range report.Checks {
		mark := "✗"
		if check.Passed {
			mark = "✓"
			passed++
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, check.Name))
	}
	sb.WriteString(fmt.Sprintf("\n%d/%d checks passed", passed, len(report.Checks)))

	p.printBox("ATS CHECKS", sb.String())
}

// PrintRoadmap outputs tasks grouped by month.
func (p *Printer) PrintRoadmap(roadmap types.Roadmap) {
	if len(roadmap) == 0 {
		return
	}

	months := make([]int, 0, len(roadmap))
	for m := range roadmap {
		months = append(months, m)
	}
	sort.Ints(months)

	var sb strings.Builder
	for i, m := range months {
		sb.WriteString(fmt.Sprintf("Month %d:\n", m))
		for _, task := range roadmap[m] {
			sb.WriteString(fmt.Sprintf("  • %s\n", task))
		}
		if i < len(months)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top N ranked resumes.
func (p *Printer) PrintRanking(ranked *types.RankedResumes) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:    %s\n", ranked.RunID))
	sb.WriteString(fmt.Sprintf("Ranked: %d resumes\n\n", ranked.Count))

	count := min(len(ranked.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		row := ranked.Ranked[i]
		label := row.Name
		if label == "" {
			label = row.ID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		sb.WriteString(fmt.Sprintf("    Score: %.1f%%  (skills %.1f%%, semantic %.1f%%)\n", row.Score, row.SkillPct, row.SemanticPct))
		if len(row.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", strings.Join(row.Missing, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(ranked.Ranked)-maxItemsToShow))
	}

	p.printBox("RANKED RESUMES", strings.TrimSuffix(sb.String(), "\n"))
}
