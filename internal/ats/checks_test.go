package ats

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkMap(report types.ATSReport) map[string]bool {
	m := make(map[string]bool, len(report.Checks))
	for _, c := range report.Checks {
		m[c.Name] = c.Passed
	}
	return m
}

func TestCheck_OrderIsFixed(t *testing.T) {
	report := Check("")

	require.Len(t, report.Checks, 7)
	assert.Equal(t, []string{
		CheckEmail, CheckPhone, CheckSecExperience, CheckSecEducation,
		CheckSecSkills, CheckSecProjects, CheckLength,
	}, Names())
	for i, name := range Names() {
		assert.Equal(t, name, report.Checks[i].Name)
	}
}

func TestCheck_EmptyTextFailsEverything(t *testing.T) {
	report := Check("")

	assert.Equal(t, 0, Passed(report))
	assert.Equal(t, Names(), Failed(report))
}

func TestCheck_FullResume(t *testing.T) {
	text := "Experience: built services in Go and Python for five years. " +
		"Education: BSc Computer Science. " +
		"Skills: Go, Python, SQL, Docker. " +
		"Projects: resume matcher, log shipper. " +
		"contact me at a@b.com +1-555-123-4567"
	if len(text) < MinLength {
		text += " " + strings.Repeat("More detail about impact and scope. ", 3)
	}

	report := Check(text)

	assert.Equal(t, 7, Passed(report))
	assert.Empty(t, Failed(report))
}

func TestCheck_ShortResumeFailsLengthOnly(t *testing.T) {
	text := "Experience Education Skills Projects a@b.com +1-555-123-4567"

	got := checkMap(Check(text))

	assert.True(t, got[CheckEmail])
	assert.True(t, got[CheckPhone])
	assert.True(t, got[CheckSecProjects])
	assert.False(t, got[CheckLength])
	assert.Equal(t, []string{CheckLength}, Failed(Check(text)))
}

func TestCheck_Email(t *testing.T) {
	assert.True(t, checkMap(Check("Reach me: Jane.Doe@Example.COM"))[CheckEmail])
	assert.False(t, checkMap(Check("jane at example dot com"))[CheckEmail])
	assert.False(t, checkMap(Check("jane@localhost"))[CheckEmail])
}

func TestCheck_Phone(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"+44 20 7946 0958", true},
		{"555-123-4567", true},
		{"+44\u00a020\u00a07946\u00a00958", true},
		{"555\u2009123\u20094567", true},
		{"123456789", true},
		{"12345678", false},
		{"call 555-1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, checkMap(Check(tt.text))[CheckPhone])
		})
	}
}

func TestCheck_LengthCountsCharacters(t *testing.T) {
	// 199 two-byte runes is over 200 bytes but under 200 characters
	assert.False(t, checkMap(Check(strings.Repeat("é", MinLength-1)))[CheckLength])
	assert.True(t, checkMap(Check(strings.Repeat("é", MinLength)))[CheckLength])
}

func TestImprovementsAndHints(t *testing.T) {
	tips := Improvements()
	require.Len(t, tips, 4)
	tips[0] = "mutated"
	assert.NotEqual(t, "mutated", Improvements()[0])

	for _, name := range Names() {
		assert.NotEmpty(t, Hint(name), "hint for %s", name)
	}
	assert.Empty(t, Hint("unknown"))
}
