package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Market News</title>
	<item>
		<title>Aramco raises dividend</title>
		<link>https://example.com/articles/1</link>
		<description>Dividend announcement details.</description>
		<pubDate>Fri, 15 Mar 2024 10:00:00 GMT</pubDate>
	</item>
	<item>
		<title>No link item</title>
		<description>Should be skipped.</description>
	</item>
</channel>
</rss>`

func newTestFeedSource(client *http.Client) *FeedSource {
	extractor := NewContentExtractor(client, "test-agent")
	source := NewFeedSource(client, extractor, "test-agent")
	source.retryDelay = 0
	source.sleep = func(time.Duration) {}
	return source
}

func TestFeedSourceParsesFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedXML))
	}))
	defer server.Close()

	feedSource := newTestFeedSource(server.Client())

	config := testSource("rss-source", server.URL)
	config.Kind = KindRSS

	articles := feedSource.Run(context.Background(), config)

	if len(articles) != 1 {
		t.Fatalf("Expected 1 article (item without link skipped), got %d", len(articles))
	}

	article := articles[0]
	if article.Title != "Aramco raises dividend" {
		t.Errorf("Expected feed item title, got %q", article.Title)
	}
	if article.URL != "https://example.com/articles/1" {
		t.Errorf("Expected feed item link, got %q", article.URL)
	}
	if article.Content != "Dividend announcement details." {
		t.Errorf("Expected description as content, got %q", article.Content)
	}

	want := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	if !article.PublishedAt.Equal(want) {
		t.Errorf("Expected parsed publish time %v, got %v", want, article.PublishedAt)
	}
}

func TestFeedSourceRetriesThenEmpty(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	feedSource := newTestFeedSource(server.Client())

	articles := feedSource.Run(context.Background(), testSource("down-feed", server.URL))

	if attempts != 3 {
		t.Errorf("Expected 3 fetch attempts, got %d", attempts)
	}
	if len(articles) != 0 {
		t.Errorf("Expected no articles after exhausted retries, got %d", len(articles))
	}
}

func TestFeedSourceInvalidFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a feed at all"))
	}))
	defer server.Close()

	feedSource := newTestFeedSource(server.Client())

	articles := feedSource.Run(context.Background(), testSource("bad-feed", server.URL))
	if len(articles) != 0 {
		t.Errorf("Expected no articles for unparseable feed, got %d", len(articles))
	}
}
