package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
	"github.com/spf13/cobra"
)

var (
	configPath     string
	vocabularyPath string
	verbose        bool
	logFormat      string
	logLevel       string
	useBrowser     bool
)

// app holds what every subcommand needs once flags are parsed.
var app struct {
	cfg     *config.Config
	engine  *matching.Engine
	printer *observability.Printer
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to JSON config file")
	flags.StringVar(&vocabularyPath, "vocabulary", "", "Path to JSON array of skill terms (overrides config)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries to stderr")
	flags.StringVar(&logFormat, "log-format", "", "Log format: text or json (overrides config)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&useBrowser, "browser", false, "Render job posting URLs in headless Chrome when the static page is too thin")
}

// setupApp loads configuration, installs the logger and builds the engine.
func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	overrides := config.Config{Vocabulary: vocabularyPath, LogFormat: logFormat, LogLevel: logLevel}
	merged := overrides.MergeWithDefaults(*cfg)
	if err := merged.Validate(); err != nil {
		return err
	}

	observability.SetupLogger(merged.LogFormat, merged.LogLevel)

	app.cfg = &merged
	app.engine = matching.New(vocabulary.LoadOrDefault(merged.Vocabulary))
	app.printer = nil
	if verbose {
		app.printer = observability.NewPrinter(cmd.ErrOrStderr())
	}
	return nil
}

// readDocument extracts text from a document on disk. The file must exist;
// content that cannot be decoded becomes "".
func readDocument(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return ingestion.ReadFile(path), nil
}

// readJobDescription loads the job description from a file or, when pageURL
// is set, from a job board page.
func readJobDescription(cmd *cobra.Command, path, pageURL string) (string, error) {
	if pageURL == "" {
		return readDocument(path)
	}

	opts := fetch.DefaultOptions()
	if useBrowser {
		opts.Render = fetch.BrowserRenderer(fetch.DefaultTimeout)
	}
	text, err := fetch.JobDescription(cmd.Context(), pageURL, opts)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}

// writeJSON writes v as indented JSON to outPath, or to the command's stdout when empty.
func writeJSON(cmd *cobra.Command, v any, outPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// splitList parses a comma-separated flag value.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
