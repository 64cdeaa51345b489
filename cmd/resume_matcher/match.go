package main

import (
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Score a resume against a job description: overall score, skill overlap, text similarity, and missing and extra skills.",
	RunE:  runMatch,
}

var (
	matchJD     string
	matchJDURL  string
	matchResume string
	matchOut    string
)

func init() {
	matchCmd.Flags().StringVarP(&matchJD, "jd", "j", "", "Path to job description file")
	matchCmd.Flags().StringVar(&matchJDURL, "jd-url", "", "URL of a job posting to use instead of --jd")
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Path to output JSON file (default stdout)")

	matchCmd.MarkFlagsOneRequired("jd", "jd-url")
	matchCmd.MarkFlagsMutuallyExclusive("jd", "jd-url")
	_ = matchCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	jd, err := readJobDescription(cmd, matchJD, matchJDURL)
	if err != nil {
		return err
	}
	resume, err := readDocument(matchResume)
	if err != nil {
		return err
	}

	result := app.engine.Match(jd, resume)
	if app.printer != nil {
		app.printer.PrintMatchResult(&result)
	}
	return writeJSON(cmd, result, matchOut)
}
