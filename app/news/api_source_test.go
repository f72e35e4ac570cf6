package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const apiResponseJSON = `{
	"articles": [
		{
			"title": "SABIC beats estimates",
			"url": "https://example.com/api/1",
			"publishedAt": "2024-03-15T08:00:00Z",
			"description": "Quarterly results.",
			"content": "SABIC reported strong quarterly profit.",
			"source": {"name": "wire"}
		},
		{
			"title": "Redacted story",
			"url": "https://example.com/api/2",
			"content": "[Removed]"
		},
		{
			"title": "Empty story",
			"url": "https://example.com/api/3",
			"content": ""
		}
	]
}`

func TestAPISourceParsesResponse(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("apiKey")
		w.Write([]byte(apiResponseJSON))
	}))
	defer server.Close()

	apiSource := NewAPISource(server.Client(), "secret", t.TempDir(), "test-agent")

	config := testSource("newsapi", server.URL+"/v2/everything?q=tadawul")
	config.Kind = KindAPI

	articles := apiSource.Run(context.Background(), config)

	if gotKey != "secret" {
		t.Errorf("Expected apiKey query parameter appended, got %q", gotKey)
	}
	if len(articles) != 1 {
		t.Fatalf("Expected 1 article (redacted and empty skipped), got %d", len(articles))
	}

	article := articles[0]
	if article.Title != "SABIC beats estimates" {
		t.Errorf("Expected API item title, got %q", article.Title)
	}
	if article.Content != "SABIC reported strong quarterly profit. Quarterly results." {
		t.Errorf("Expected content and description concatenated, got %q", article.Content)
	}

	want := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	if !article.PublishedAt.Equal(want) {
		t.Errorf("Expected publish time %v, got %v", want, article.PublishedAt)
	}
}

func TestAPISourceNoKeySkips(t *testing.T) {
	apiSource := NewAPISource(http.DefaultClient, "", t.TempDir(), "test-agent")

	articles := apiSource.Run(context.Background(), testSource("newsapi", "https://example.com/v2/everything"))
	if len(articles) != 0 {
		t.Errorf("Expected no articles without an API key, got %d", len(articles))
	}
}

func TestAPISourceUsesCacheWithinTTL(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(apiResponseJSON))
	}))
	defer server.Close()

	apiSource := NewAPISource(server.Client(), "secret", t.TempDir(), "test-agent")

	config := testSource("cached", server.URL)
	config.Kind = KindAPI

	first := apiSource.Run(context.Background(), config)
	second := apiSource.Run(context.Background(), config)

	if requests != 1 {
		t.Errorf("Expected second run served from cache, got %d requests", requests)
	}
	if len(first) != len(second) {
		t.Errorf("Expected identical results from cache, got %d and %d", len(first), len(second))
	}
}

func TestAPISourceFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	apiSource := NewAPISource(server.Client(), "secret", t.TempDir(), "test-agent")

	articles := apiSource.Run(context.Background(), testSource("limited", server.URL))
	if len(articles) != 0 {
		t.Errorf("Expected no articles on API failure, got %d", len(articles))
	}
}
