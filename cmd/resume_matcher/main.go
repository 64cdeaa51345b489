// Package main provides the resume_matcher CLI: one-off comparisons, the HTTP API server and the queue worker.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume to job description matcher",
	Long: "resume_matcher scores resumes against job descriptions using vocabulary skill overlap and text similarity, " +
		"checks ATS readiness, plans a learning roadmap and suggests roles. It runs as a CLI, an HTTP API or a queue worker.",
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
