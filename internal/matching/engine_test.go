package matching

import (
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/resume-matcher/internal/roadmap"
	"github.com/jonathan/resume-matcher/internal/roles"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/vocabulary"
	embedded "github.com/jonathan/resume-matcher/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	scenarioJD     = "We need Python and SQL skills"
	scenarioResume = "Experienced in Python and Docker"
)

func scenarioEngine() *Engine {
	return New(vocabulary.New([]string{"python", "sql", "docker"}))
}

func TestMatch_EndToEndScenario(t *testing.T) {
	e := scenarioEngine()

	assert.Equal(t, []string{"python", "sql"}, e.ExtractSkills(scenarioJD))
	assert.Equal(t, []string{"docker", "python"}, e.ExtractSkills(scenarioResume))

	result := e.Match(scenarioJD, scenarioResume)

	assert.Equal(t, []string{"sql"}, result.Missing)
	assert.Equal(t, []string{"docker"}, result.Extra)
	assert.Equal(t, 50.0, result.SkillPct)
	assert.Equal(t, 36.5, result.SemanticPct)
	assert.Equal(t, 45.3, result.Score)
	assert.Nil(t, result.ATS)
	assert.Nil(t, result.Roadmap)

	assert.Equal(t, result, e.Match(scenarioJD, scenarioResume), "results are deterministic")
}

func TestMatch_EmptyInputs(t *testing.T) {
	e := New(nil)

	result := e.Match("", "")
	assert.Equal(t, 0.0, result.Score)
	assert.NotNil(t, result.Missing)
	assert.NotNil(t, result.Extra)
	assert.Empty(t, result.Missing)

	require.NoError(t, schemas.ValidateValue(embedded.MatchResult, result))
}

func TestMatch_BlankJobDescriptionHasNoSkills(t *testing.T) {
	e := scenarioEngine()

	result := e.Match("  \n ", scenarioResume)

	assert.Equal(t, 0.0, result.SkillPct)
	assert.Empty(t, result.Missing)
	assert.Equal(t, []string{"docker", "python"}, result.Extra)
}

func TestNew_NilVocabularyUsesDefault(t *testing.T) {
	e := New(nil)

	assert.Equal(t, vocabulary.Default().Terms(), e.Vocabulary().Terms())
}

func TestAnalyze_BundlesEverything(t *testing.T) {
	e := scenarioEngine()

	analysis := e.Analyze(scenarioJD, scenarioResume, 2)

	assert.Equal(t, []string{"python", "sql"}, analysis.JobSkills)
	assert.Equal(t, []string{"docker", "python"}, analysis.ResumeSkills)
	assert.Equal(t, 2, analysis.Months)
	assert.Len(t, analysis.Roadmap, 2)
	assert.Contains(t, analysis.Roadmap[1], roadmap.SkillTask("sql"))
	assert.Equal(t, 4, roadmap.TaskCount(analysis.Roadmap))
	require.NotNil(t, analysis.ATS)
	assert.Len(t, analysis.ATS.Checks, 7)
	assert.Equal(t, roles.Suggest([]string{"docker", "python"}), analysis.Roles)
	assert.Equal(t, e.Match(scenarioJD, scenarioResume).Score, analysis.Score)

	require.NoError(t, schemas.ValidateValue(embedded.Analysis, analysis))
	require.NoError(t, schemas.ValidateValue(embedded.MatchResult, analysis.MatchResult))
}

func TestAnalyze_ClampsMonths(t *testing.T) {
	e := scenarioEngine()

	assert.Equal(t, 1, e.Analyze(scenarioJD, scenarioResume, 0).Months)
	assert.Equal(t, 24, e.Analyze(scenarioJD, scenarioResume, 99).Months)
	assert.Len(t, e.Analyze(scenarioJD, scenarioResume, 99).Roadmap, 24)
}

func TestAnalyze_NoSkillsFallsBackToGeneralRole(t *testing.T) {
	e := scenarioEngine()

	analysis := e.Analyze(scenarioJD, "I like painting", 3)

	assert.Equal(t, []string{roles.Fallback}, analysis.Roles)
	assert.Equal(t, []string{"python", "sql"}, analysis.Missing)
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := New(vocabulary.Default())
	jd := "Looking for Python, Django, AWS and Docker experience"
	want := e.Match(jd, strings.Repeat("python docker ", 10))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, e.Match(jd, strings.Repeat("python docker ", 10)))
		}()
	}
	wg.Wait()
}
