package main

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
	embedded "github.com/jonathan/resume-matcher/schemas"
	"github.com/spf13/cobra"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect and validate skill vocabularies",
}

var vocabPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the active vocabulary as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeJSON(cmd, app.engine.Vocabulary().Terms(), "")
	},
}

var vocabValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a vocabulary file against the vocabulary schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runVocabValidate,
}

func init() {
	vocabCmd.AddCommand(vocabPrintCmd)
	vocabCmd.AddCommand(vocabValidateCmd)
	rootCmd.AddCommand(vocabCmd)
}

func runVocabValidate(cmd *cobra.Command, args []string) error {
	if err := schemas.ValidateFile(embedded.Vocabulary, args[0]); err != nil {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %v\n", err)
		return err
	}

	vocab, err := vocabulary.Load(args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %d terms\n", vocab.Len())
	return nil
}
