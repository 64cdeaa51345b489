package main

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/roles"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List vocabulary skills found in a document",
	RunE:  runSkills,
}

var (
	skillsInput string
	skillsText  string
	skillsOut   string
)

func init() {
	skillsCmd.Flags().StringVarP(&skillsInput, "in", "i", "", "Path to a resume or job description (txt, md, html, docx, pdf)")
	skillsCmd.Flags().StringVar(&skillsText, "text", "", "Inline text instead of --in")
	skillsCmd.Flags().StringVarP(&skillsOut, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	if (skillsInput == "") == (skillsText == "") {
		return fmt.Errorf("provide exactly one of --in or --text")
	}

	text := skillsText
	if skillsInput != "" {
		var err error
		if text, err = readDocument(skillsInput); err != nil {
			return err
		}
	}

	found := app.engine.ExtractSkills(text)
	return writeJSON(cmd, map[string][]string{
		"skills": found,
		"roles":  roles.Suggest(found),
	}, skillsOut)
}
