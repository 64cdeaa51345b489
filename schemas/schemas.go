// Package schemas embeds the JSON Schema documents describing the matcher's inputs and outputs.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Schema file names
const (
	Vocabulary    = "vocabulary.schema.json"
	MatchResult   = "match_result.schema.json"
	Analysis      = "analysis.schema.json"
	RankedResumes = "ranked_resumes.schema.json"
)

// Names lists every embedded schema.
func Names() []string {
	return []string{Vocabulary, MatchResult, Analysis, RankedResumes}
}
