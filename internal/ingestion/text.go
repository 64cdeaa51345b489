package ingestion

import (
	"strings"
	"unicode"
)

// tabWidth is the number of spaces a leading tab counts for.
const tabWidth = 2

// bulletGlyphs are rewritten to "- " when they open a line.
var bulletGlyphs = []string{"- ", "* ", "• ", "· ", "▪ ", "◦ ", "– "}

// CleanText normalizes extracted document text: LF line endings, single
// spaces inside lines (NBSP and other Unicode spaces included), "- " bullets,
// at most one blank line in a row, and no leading or trailing blank lines.
// Leading indentation is kept so nested bullets stay nested.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var b strings.Builder
	b.Grow(len(content))

	blank := false
	for _, line := range strings.Split(content, "\n") {
		indent, body := splitIndent(line)
		if body == "" {
			blank = b.Len() > 0
			continue
		}
		if blank {
			b.WriteByte('\n')
			blank = false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		if !strings.HasPrefix(body, "#") {
			b.WriteString(strings.Repeat(" ", indent))
		}
		b.WriteString(normalizeBullet(collapseSpaces(body)))
	}
	return b.String()
}

// splitIndent returns the width of line's leading whitespace and the rest, trimmed.
func splitIndent(line string) (int, string) {
	width := 0
	for i, r := range line {
		switch {
		case r == '\t':
			width += tabWidth
		case unicode.IsSpace(r):
			width++
		default:
			return width, strings.TrimRightFunc(line[i:], unicode.IsSpace)
		}
	}
	return 0, ""
}

func collapseSpaces(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

func normalizeBullet(line string) string {
	for _, glyph := range bulletGlyphs {
		if rest, ok := strings.CutPrefix(line, glyph); ok {
			return "- " + rest
		}
	}
	return line
}
