package ats

var improvements = []string{
	"Add clear headings: Experience, Education, Skills, Projects",
	"Avoid images and tables; use plain text",
	"Add measurable bullets (e.g., improved X by 20%)",
	"Place contact details at top in plain text",
}

var hints = map[string]string{
	CheckEmail:         "Add a plain-text email address near the top of the resume.",
	CheckPhone:         "Add a phone number with country code, e.g. +1-555-123-4567.",
	CheckSecExperience: "Add an \"Experience\" section heading.",
	CheckSecEducation:  "Add an \"Education\" section heading.",
	CheckSecSkills:     "Add a \"Skills\" section heading listing your tools and technologies.",
	CheckSecProjects:   "Add a \"Projects\" section heading with one or two concrete projects.",
	CheckLength:        "Expand the resume; parsers expect at least a few short paragraphs of text.",
}

// Improvements returns the generic ATS tips shown alongside every report.
func Improvements() []string {
	out := make([]string, len(improvements))
	copy(out, improvements)
	return out
}

// Hint returns the remediation for a failing check, or "" for unknown names.
func Hint(name string) string {
	return hints[name]
}
