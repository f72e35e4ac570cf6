package news

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const apiCacheTTL = time.Hour

// APISource collects articles from an external news API (kind: api). The
// source URL is the full request URL; the configured API key is appended as a
// query parameter. Responses are cached on disk so repeated cycles within the
// TTL do not burn through provider rate limits.
type APISource struct {
	client    *http.Client
	apiKey    string
	cacheDir  string
	cacheTTL  time.Duration
	userAgent string
}

func NewAPISource(client *http.Client, apiKey, cacheDir, userAgent string) *APISource {
	return &APISource{
		client:    client,
		apiKey:    apiKey,
		cacheDir:  cacheDir,
		cacheTTL:  apiCacheTTL,
		userAgent: userAgent,
	}
}

type apiResponse struct {
	Articles []apiArticle `json:"articles"`
}

type apiArticle struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

// Run fetches (or reads from cache) the source's API response. Failures
// degrade to an empty list.
func (s *APISource) Run(ctx context.Context, source SourceConfig) []Article {
	if s.apiKey == "" {
		slog.Debug("News API key not configured, skipping source", "source", source.Name)
		return []Article{}
	}

	data := s.readCache(source.Name)
	if data == nil {
		requestURL := source.URL
		if strings.Contains(requestURL, "?") {
			requestURL += "&apiKey=" + s.apiKey
		} else {
			requestURL += "?apiKey=" + s.apiKey
		}

		timeout := time.Duration(source.Settings.Timeout) * time.Second

		var err error
		data, err = fetchURL(ctx, s.client, requestURL, s.userAgent, timeout)
		if err != nil {
			slog.Error("News API fetch failed", "source", source.Name, "error", err)
			return []Article{}
		}

		s.writeCache(source.Name, data)
	}

	var response apiResponse
	if err := json.Unmarshal(data, &response); err != nil {
		slog.Warn("News API response decode failed", "source", source.Name, "error", err)
		return []Article{}
	}

	articles := make([]Article, 0, len(response.Articles))
	for _, item := range response.Articles {
		// Providers redact paywalled content
		if item.URL == "" || item.Content == "" || item.Content == "[Removed]" {
			continue
		}

		content := item.Content
		if item.Description != "" {
			content += " " + item.Description
		}

		articles = append(articles, Article{
			Title:       item.Title,
			URL:         item.URL,
			Source:      source.Name,
			Language:    source.Language,
			Content:     content,
			PublishedAt: item.PublishedAt.UTC(),
		})
	}

	slog.Info("Fetched articles from news API", "source", source.Name, "count", len(articles))

	return articles
}

func (s *APISource) cachePath(sourceName string) string {
	safe := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, sourceName)

	return filepath.Join(s.cacheDir, safe+".json")
}

func (s *APISource) readCache(sourceName string) []byte {
	if s.cacheDir == "" {
		return nil
	}

	path := s.cachePath(sourceName)
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	if time.Since(info.ModTime()) > s.cacheTTL {
		slog.Debug("News API cache expired", "source", sourceName)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Failed to read news API cache", "source", sourceName, "error", err)
		return nil
	}

	return data
}

func (s *APISource) writeCache(sourceName string, data []byte) {
	if s.cacheDir == "" {
		return
	}

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		slog.Warn("Failed to create news API cache dir", "error", err)
		return
	}

	if err := os.WriteFile(s.cachePath(sourceName), data, 0o644); err != nil {
		slog.Warn("Failed to write news API cache", "source", sourceName, "error", err)
	}
}
