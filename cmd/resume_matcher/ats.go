package main

import (
	"github.com/jonathan/resume-matcher/internal/ats"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Check a resume against common ATS heuristics",
	RunE:  runATS,
}

var (
	atsResume string
	atsOut    string
)

// atsOutput adds remediation to the raw report.
type atsOutput struct {
	types.ATSReport
	Failed       []string          `json:"failed"`
	Hints        map[string]string `json:"hints"`
	Improvements []string          `json:"improvements"`
}

func init() {
	atsCmd.Flags().StringVarP(&atsResume, "resume", "r", "", "Path to resume file")
	atsCmd.Flags().StringVarP(&atsOut, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = atsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(atsCmd)
}

func runATS(cmd *cobra.Command, _ []string) error {
	resume, err := readDocument(atsResume)
	if err != nil {
		return err
	}

	report := ats.Check(resume)
	failed := ats.Failed(report)
	hints := make(map[string]string, len(failed))
	for _, name := range failed {
		hints[name] = ats.Hint(name)
	}

	if app.printer != nil {
		app.printer.PrintATS(&report)
	}
	return writeJSON(cmd, atsOutput{
		ATSReport:    report,
		Failed:       failed,
		Hints:        hints,
		Improvements: ats.Improvements(),
	}, atsOut)
}
