package vocabulary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CanonicalisesAndDeduplicates(t *testing.T) {
	v := New([]string{"Python", " sql ", "python", "", "   ", "Machine Learning", "SQL"})

	assert.Equal(t, []string{"python", "sql", "machine learning"}, v.Terms())
	assert.Equal(t, 3, v.Len())
	assert.True(t, v.Has("PYTHON"))
	assert.True(t, v.Has("machine learning"))
	assert.False(t, v.Has("docker"))
}

func TestDefault(t *testing.T) {
	v := Default()

	assert.Equal(t, 15, v.Len())
	assert.Equal(t, "python", v.Terms()[0])
	assert.True(t, v.Has("machine learning"))
	assert.True(t, v.Has("kubernetes"))
}

func TestTerms_ReturnsCopy(t *testing.T) {
	v := New([]string{"go", "rust"})

	terms := v.Terms()
	terms[0] = "mutated"

	assert.Equal(t, []string{"go", "rust"}, v.Terms())
}

func TestEach_VisitsInOrder(t *testing.T) {
	v := New([]string{"b", "a", "c"})

	var seen []string
	v.Each(func(term string) { seen = append(seen, term) })

	assert.Equal(t, []string{"b", "a", "c"}, seen)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeFile(t, `["Go", "PostgreSQL", "go"]`)

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "postgresql"}, v.Terms())
}

func TestLoad_EmptyArray(t *testing.T) {
	path := writeFile(t, `[]`)

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
}

func TestLoad_FileNotFound(t *testing.T) {
	v, err := Load("/nonexistent/skills.json")
	require.Error(t, err)
	assert.Nil(t, v)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoad_WrongShape(t *testing.T) {
	path := writeFile(t, `{"skills": ["go"]}`)

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeFile(t, `[ "go", `)

	_, err := Load(path)
	require.Error(t, err)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		assert.Equal(t, Default().Terms(), LoadOrDefault("").Terms())
	})

	t.Run("missing file falls back", func(t *testing.T) {
		assert.Equal(t, Default().Terms(), LoadOrDefault("/nonexistent/skills.json").Terms())
	})

	t.Run("invalid file falls back", func(t *testing.T) {
		path := writeFile(t, `"python"`)
		assert.Equal(t, Default().Terms(), LoadOrDefault(path).Terms())
	})

	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, `["rust"]`)
		assert.Equal(t, []string{"rust"}, LoadOrDefault(path).Terms())
	})
}
