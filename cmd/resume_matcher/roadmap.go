package main

import (
	"github.com/jonathan/resume-matcher/internal/roadmap"
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Plan missing skills across months",
	RunE:  runRoadmap,
}

var (
	roadmapMissing string
	roadmapMonths  int
	roadmapOut     string
)

func init() {
	roadmapCmd.Flags().StringVar(&roadmapMissing, "missing", "", "Comma-separated missing skills, in priority order")
	roadmapCmd.Flags().IntVarP(&roadmapMonths, "months", "m", 0, "Roadmap length in months, 1-24 (default from config)")
	roadmapCmd.Flags().StringVarP(&roadmapOut, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	months := roadmapMonths
	if !cmd.Flags().Changed("months") {
		months = app.cfg.Months
	}

	plan := roadmap.Build(splitList(roadmapMissing), months)
	if app.printer != nil {
		app.printer.PrintRoadmap(plan)
	}
	return writeJSON(cmd, plan, roadmapOut)
}
