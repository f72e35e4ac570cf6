package news

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"codeberg.org/readeck/go-readability"
	"github.com/PuerkitoBio/goquery"
)

// Ordered container selectors tried before any generic fallback.
var contentSelectors = []string{
	"div.article-content",
	"div.entry-content",
	"div.post-content",
	"div.content",
	"article",
	"main",
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// ContentExtractor fetches an article page and pulls out its plain-text body.
// Content fetches are single-attempt: a failure degrades to empty content
// instead of failing the pipeline.
type ContentExtractor struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

func NewContentExtractor(client *http.Client, userAgent string) *ContentExtractor {
	return &ContentExtractor{
		client:    client,
		userAgent: userAgent,
		timeout:   30 * time.Second,
	}
}

// Run returns the extracted plain text, or an empty string on any failure.
func (e *ContentExtractor) Run(ctx context.Context, pageURL string) string {
	if pageURL == "" {
		return ""
	}

	data, err := fetchURL(ctx, e.client, pageURL, e.userAgent, e.timeout)
	if err != nil {
		slog.Warn("Content fetch failed", "url", pageURL, "error", err)
		return ""
	}

	return e.extract(data)
}

func (e *ContentExtractor) extract(data []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		slog.Warn("Content HTML parse failed", "error", err)
		return ""
	}

	doc.Find("script, style").Remove()

	var content string
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			content = sel.Text()
			break
		}
	}

	if strings.TrimSpace(content) == "" {
		content = e.extractReadable(data)
	}

	if strings.TrimSpace(content) == "" {
		content = doc.Find("body").Text()
	}

	return collapseWhitespace(content)
}

// extractReadable runs the readability algorithm as a middle rung between the
// known container selectors and the raw body text.
func (e *ContentExtractor) extractReadable(data []byte) string {
	article, err := readability.FromReader(strings.NewReader(string(data)), nil)
	if err != nil {
		slog.Debug("Readability extraction failed", "error", err)
		return ""
	}

	return article.TextContent
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
