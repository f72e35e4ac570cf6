package news

import (
	"bytes"
	"cmp"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedSource collects articles from sources that publish an RSS or Atom feed
// (kind: rss). It shares the fetcher's retry policy, and falls back to a
// content sub-fetch when the feed carries no body.
type FeedSource struct {
	client     *http.Client
	parser     *gofeed.Parser
	extractor  *ContentExtractor
	userAgent  string
	maxRetries int
	retryDelay time.Duration
	sleep      func(time.Duration)
}

func NewFeedSource(client *http.Client, extractor *ContentExtractor, userAgent string) *FeedSource {
	return &FeedSource{
		client:     client,
		parser:     gofeed.NewParser(),
		extractor:  extractor,
		userAgent:  userAgent,
		maxRetries: fetchMaxRetries,
		retryDelay: 2 * time.Second,
		sleep:      time.Sleep,
	}
}

// Run fetches and normalizes the source's feed; failures degrade to an empty
// list after the bounded retry cascade.
func (f *FeedSource) Run(ctx context.Context, source SourceConfig) []Article {
	timeout := time.Duration(source.Settings.Timeout) * time.Second

	var data []byte
	var err error
	delay := f.retryDelay
	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		data, err = fetchURL(ctx, f.client, source.URL, f.userAgent, timeout)
		if err == nil {
			break
		}

		slog.Error("Feed fetch failed", "source", source.Name,
			"attempt", attempt, "max_attempts", f.maxRetries, "error", err)

		if attempt < f.maxRetries {
			f.sleep(delay)
			delay *= 2
		}
	}
	if err != nil {
		slog.Error("Giving up on feed source after maximum attempts", "source", source.Name)
		return []Article{}
	}

	feed, err := f.parser.Parse(bytes.NewReader(data))
	if err != nil {
		slog.Warn("Feed parse failed", "source", source.Name, "error", err)
		return []Article{}
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || item.Link == "" {
			continue
		}

		article := Article{
			Title:        item.Title,
			URL:          item.Link,
			PublishedRaw: item.Published,
			Source:       source.Name,
			Language:     source.Language,
			Content:      cmp.Or(item.Content, item.Description),
		}

		if item.PublishedParsed != nil {
			article.PublishedAt = item.PublishedParsed.UTC()
		}

		if article.Content == "" {
			article.Content = f.extractor.Run(ctx, article.URL)
		}

		articles = append(articles, article)
	}

	slog.Info("Fetched articles from feed", "source", source.Name, "count", len(articles))

	return articles
}
