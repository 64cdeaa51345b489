package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank (--jd FILE | --jd-url URL) RESUME...",
	Short: "Rank several resumes against one job description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRank,
}

var (
	rankJD          string
	rankJDURL       string
	rankConcurrency int
	rankOut         string
)

func init() {
	rankCmd.Flags().StringVarP(&rankJD, "jd", "j", "", "Path to job description file")
	rankCmd.Flags().StringVar(&rankJDURL, "jd-url", "", "URL of a job posting to use instead of --jd")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", 0, "Resumes compared in parallel (default from config)")
	rankCmd.Flags().StringVarP(&rankOut, "out", "o", "", "Path to output JSON file (default stdout)")

	rankCmd.MarkFlagsOneRequired("jd", "jd-url")
	rankCmd.MarkFlagsMutuallyExclusive("jd", "jd-url")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	jd, err := readJobDescription(cmd, rankJD, rankJDURL)
	if err != nil {
		return err
	}

	resumes := make([]types.ResumeInput, 0, len(args))
	for i, path := range args {
		text, err := readDocument(path)
		if err != nil {
			return err
		}
		resumes = append(resumes, types.ResumeInput{
			ID:   fmt.Sprintf("%d", i+1),
			Name: filepath.Base(path),
			Text: text,
		})
	}

	concurrency := rankConcurrency
	if concurrency <= 0 {
		concurrency = app.cfg.RankConcurrency
	}

	result, err := ranking.Rank(cmd.Context(), app.engine, jd, resumes, ranking.Options{Concurrency: concurrency})
	if err != nil {
		return err
	}
	slog.Info("ranked resumes", "run_id", result.RunID, "count", result.Count)

	if app.printer != nil {
		app.printer.PrintRanking(result)
	}
	return writeJSON(cmd, result, rankOut)
}
