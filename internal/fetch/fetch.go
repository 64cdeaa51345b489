// Package fetch downloads job postings from the web and reduces them to plain text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-matcher/internal/ingestion"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"

// DefaultMaxBytes caps how much of a response body is read.
const DefaultMaxBytes = 4 << 20

// Result holds the raw response from a page fetch.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Renderer returns the HTML of a page after client-side scripts have run.
type Renderer func(ctx context.Context, pageURL string) (string, error)

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	MaxBytes  int64
	Headers   map[string]string
	// Client overrides the HTTP client; Timeout is ignored when set.
	Client *http.Client
	// Render, when set, is tried for pages whose static HTML yields too little text.
	Render Renderer
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		MaxBytes:  DefaultMaxBytes,
	}
}

func (o *Options) withDefaults() *Options {
	out := DefaultOptions()
	if o == nil {
		return out
	}
	merged := *o
	if merged.Timeout <= 0 {
		merged.Timeout = out.Timeout
	}
	if merged.UserAgent == "" {
		merged.UserAgent = out.UserAgent
	}
	if merged.MaxBytes <= 0 {
		merged.MaxBytes = out.MaxBytes
	}
	return &merged
}

// Page retrieves the HTML at pageURL. A non-200 status returns both the
// result and an error.
func Page(ctx context.Context, pageURL string, opts *Options) (*Result, error) {
	opts = opts.withDefaults()

	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, &Error{URL: pageURL, Message: "invalid URL", Cause: err}
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, opts.MaxBytes))
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         pageURL,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: pageURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// globalNoise is removed from every page before content selection.
const globalNoise = "nav, footer, header, script, style, noscript, svg, iframe, .sidebar, .cookie-banner, .popup"

// ExtractMainText parses html, drops noise, and returns the text of the first
// element matching contentSelectors, falling back to <body>.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(globalNoise).Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// Block elements end a line so headings and bullets survive cleaning.
	main.Find("p, li, h1, h2, h3, h4, h5, h6, div, br, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	return ingestion.CleanText(main.Text()), nil
}

// JobDescription fetches a job posting and returns its cleaned description text.
// When opts.Render is set and the static page is too thin, the rendered page is
// used instead; a render failure keeps the static text.
func JobDescription(ctx context.Context, pageURL string, opts *Options) (string, error) {
	opts = opts.withDefaults()
	platform := DetectPlatform(pageURL)
	content, noise := PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)

	result, err := Page(ctx, pageURL, opts)
	if err != nil {
		return "", err
	}

	text, err := ExtractMainText(result.HTML, content, noise...)
	if err != nil {
		return "", &Error{URL: pageURL, Message: "content extraction failed", Cause: err}
	}
	slog.Debug("fetched job posting", "url", pageURL, "platform", platform, "html_bytes", len(result.HTML), "text_chars", len(text))

	if opts.Render == nil || !NeedsBrowser(text) {
		return text, nil
	}

	slog.Info("job posting looks script-rendered, retrying in browser", "url", pageURL, "text_chars", len(text))
	rendered, err := opts.Render(ctx, pageURL)
	if err != nil {
		slog.Warn("browser rendering failed, using static content", "url", pageURL, "error", err)
		return text, nil
	}
	renderedText, err := ExtractMainText(rendered, content, noise...)
	if err != nil {
		slog.Warn("browser content extraction failed, using static content", "url", pageURL, "error", err)
		return text, nil
	}
	return renderedText, nil
}
