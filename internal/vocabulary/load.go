package vocabulary

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonathan/resume-matcher/internal/schemas"
	embedded "github.com/jonathan/resume-matcher/schemas"
)

// LoadError represents an error reading or parsing a vocabulary file
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary load error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("vocabulary load error: %s (%s)", e.Message, e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a JSON array of skill terms from path.
// The document must satisfy vocabulary.schema.json.
func Load(path string) (*Vocabulary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if err := schemas.ValidateBytes(embedded.Vocabulary, content); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid vocabulary document", Cause: err}
	}

	var terms []string
	if err := json.Unmarshal(content, &terms); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}

	return New(terms), nil
}

// LoadOrDefault loads the vocabulary at path, falling back to Default when
// path is empty or the file cannot be loaded.
func LoadOrDefault(path string) *Vocabulary {
	if path == "" {
		return Default()
	}

	v, err := Load(path)
	if err != nil {
		slog.Warn("using default vocabulary", "path", path, "error", err)
		return Default()
	}

	slog.Debug("vocabulary loaded", "path", path, "terms", v.Len())
	return v
}
