// Package ingestion turns uploaded documents into plain text for the matcher.
//
// Nothing here returns an error to the caller: a document that cannot be read
// or decoded becomes the empty string, which the engine scores as zero.
package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Kind is a supported document format.
type Kind string

const (
	KindUnknown Kind = ""
	KindText    Kind = "text"
	KindHTML    Kind = "html"
	KindDocx    Kind = "docx"
	KindPDF     Kind = "pdf"
)

// MIME types recognised by DetectKind.
const (
	MimeText = "text/plain"
	MimeHTML = "text/html"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePDF  = "application/pdf"
)

var kindByMime = map[string]Kind{
	MimeText:        KindText,
	"text/markdown": KindText,
	MimeHTML:        KindHTML,
	MimeDocx:        KindDocx,
	MimePDF:         KindPDF,
}

var kindByExt = map[string]Kind{
	".txt":      KindText,
	".md":       KindText,
	".markdown": KindText,
	".html":     KindHTML,
	".htm":      KindHTML,
	".docx":     KindDocx,
	".pdf":      KindPDF,
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// DetectKind picks a format from the MIME type, falling back to the file
// extension of name. MIME parameters such as charset are ignored.
func DetectKind(name, mime string) Kind {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if kind, ok := kindByMime[mime]; ok {
		return kind
	}
	if kind, ok := kindByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return kind
	}
	return KindUnknown
}

// ExtractText converts a document to plain text. Unsupported or unreadable
// documents yield "".
func ExtractText(name, mime string, data []byte) string {
	if len(data) == 0 {
		return ""
	}

	kind := DetectKind(name, mime)
	text, err := extract(kind, data)
	if err != nil {
		slog.Warn("document text extraction failed",
			"name", name, "mime", mime, "kind", string(kind), "error", err)
		return ""
	}
	return CleanText(text)
}

// ReadFile reads a document from disk and extracts its text. A missing or
// unreadable file yields "".
func ReadFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read document", "path", path, "error", err)
		return ""
	}
	return ExtractText(filepath.Base(path), "", data)
}

func extract(kind Kind, data []byte) (string, error) {
	switch kind {
	case KindText:
		return string(data), nil
	case KindHTML:
		return extractHTMLText(data)
	case KindDocx:
		return extractDocxText(data)
	case KindPDF:
		return extractPDFText(data)
	default:
		return "", fmt.Errorf("unsupported document type")
	}
}

func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer").Remove()

	// Block elements become line breaks so section headings stay on their own line
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return doc.Find("body").Text(), nil
}

func extractDocxText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docx reader panicked: %v", r)
		}
	}()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := paragraphEnd.ReplaceAllString(doc.Editable().GetContent(), "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			slog.Debug("skipping unreadable pdf page", "page", i, "error", err)
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}
