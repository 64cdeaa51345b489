package main

import (
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Full resume review: match, ATS checks, roadmap and roles",
	Long: "Analyze a resume, optionally against a job description. Produces the match result, an ATS report, " +
		"a month-by-month roadmap for missing skills and suggested roles.",
	RunE: runAnalyze,
}

var (
	analyzeJD     string
	analyzeJDURL  string
	analyzeResume string
	analyzeMonths int
	analyzeOut    string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJD, "jd", "j", "", "Path to job description file (optional)")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL of a job posting to use instead of --jd")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file")
	analyzeCmd.Flags().IntVarP(&analyzeMonths, "months", "m", 0, "Roadmap length in months, 1-24 (default from config)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagsMutuallyExclusive("jd", "jd-url")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	var jd string
	if analyzeJD != "" || analyzeJDURL != "" {
		var err error
		if jd, err = readJobDescription(cmd, analyzeJD, analyzeJDURL); err != nil {
			return err
		}
	}
	resume, err := readDocument(analyzeResume)
	if err != nil {
		return err
	}

	months := analyzeMonths
	if !cmd.Flags().Changed("months") {
		months = app.cfg.Months
	}

	analysis := app.engine.Analyze(jd, resume, months)
	if app.printer != nil {
		app.printer.PrintAnalysis(&analysis)
	}
	return writeJSON(cmd, analysis, analyzeOut)
}
