package news

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const fetchMaxRetries = 3

// Fetcher collects article stubs from a source's HTML listing page and fills
// in best-effort body content for each via the content extractor.
type Fetcher struct {
	client     *http.Client
	registry   *StrategyRegistry
	extractor  *ContentExtractor
	userAgent  string
	maxRetries int
	retryDelay time.Duration // initial backoff, doubles per attempt
	sleep      func(time.Duration)
}

func NewFetcher(client *http.Client, registry *StrategyRegistry, extractor *ContentExtractor, userAgent string) *Fetcher {
	return &Fetcher{
		client:     client,
		registry:   registry,
		extractor:  extractor,
		userAgent:  userAgent,
		maxRetries: fetchMaxRetries,
		retryDelay: 2 * time.Second,
		sleep:      time.Sleep,
	}
}

// Run fetches the source's listing page and returns the discovered articles
// with extracted content. Network failure is non-fatal: after the bounded
// retry cascade the source yields an empty list.
func (f *Fetcher) Run(ctx context.Context, source SourceConfig) []Article {
	timeout := time.Duration(source.Settings.Timeout) * time.Second

	var data []byte
	var err error
	delay := f.retryDelay
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		data, err = fetchURL(ctx, f.client, source.URL, f.userAgent, timeout)
		if err == nil {
			break
		}

		slog.Error("Source fetch failed", "source", source.Name,
			"attempt", attempt, "max_attempts", f.maxRetries, "error", err)

		if attempt < f.maxRetries {
			f.sleep(delay)
			delay *= 2
		}
	}
	if err != nil {
		slog.Error("Giving up on source after maximum attempts", "source", source.Name)
		return []Article{}
	}

	strategy := f.registry.Resolve(source.Name)

	articles, parseErr := f.parseListing(data, source, strategy)
	if parseErr != nil {
		slog.Warn("Listing parse failed", "source", source.Name, "error", parseErr)
		return []Article{}
	}

	for i := range articles {
		articles[i].Content = f.extractor.Run(ctx, articles[i].URL)
	}

	slog.Info("Fetched articles from source", "source", source.Name, "count", len(articles))

	return articles
}

func (f *Fetcher) parseListing(data []byte, source SourceConfig, strategy ExtractionStrategy) ([]Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	origin, err := baseOrigin(source.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source origin: %w", err)
	}

	articles := []Article{}
	doc.Find(strategy.ListSelector).Each(func(_ int, sel *goquery.Selection) {
		titleElem := sel.Find(strategy.TitleSelector).First()
		if titleElem.Length() == 0 {
			return
		}

		title := strings.TrimSpace(titleElem.Text())
		href, _ := titleElem.Attr("href")
		if title == "" || href == "" {
			return
		}

		dateStr := strings.TrimSpace(sel.Find(strategy.DateSelector).First().Text())

		articles = append(articles, Article{
			Title:        title,
			URL:          absoluteURL(origin, href),
			PublishedRaw: dateStr,
			Source:       source.Name,
			Language:     source.Language,
		})
	})

	return articles, nil
}

// baseOrigin reduces a listing URL to its scheme://host origin, against which
// relative article links are rewritten.
func baseOrigin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return u.Scheme + "://" + u.Host, nil
}

func absoluteURL(origin, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return origin + href
}
