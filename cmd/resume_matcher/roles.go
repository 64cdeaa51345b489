package main

import (
	"github.com/jonathan/resume-matcher/internal/roles"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Suggest job titles for a skill set",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeJSON(cmd, map[string][]string{"roles": roles.Suggest(splitList(rolesSkills))}, "")
	},
}

var rolesSkills string

func init() {
	rolesCmd.Flags().StringVar(&rolesSkills, "skills", "", "Comma-separated skills")
	rootCmd.AddCommand(rolesCmd)
}
