package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestContentExtractorKnownContainer(t *testing.T) {
	extractor := NewContentExtractor(http.DefaultClient, "test-agent")

	html := `
	<html>
	<body>
		<div class="sidebar">Sidebar noise</div>
		<div class="article-content">
			<p>First paragraph of the story.</p>
			<p>Second paragraph of the story.</p>
		</div>
	</body>
	</html>`

	got := extractor.extract([]byte(html))

	if !strings.Contains(got, "First paragraph of the story.") {
		t.Errorf("Expected container content, got %q", got)
	}
	if strings.Contains(got, "Sidebar noise") {
		t.Errorf("Expected sidebar excluded, got %q", got)
	}
}

func TestContentExtractorStripsScriptsAndStyles(t *testing.T) {
	extractor := NewContentExtractor(http.DefaultClient, "test-agent")

	html := `
	<html>
	<body>
		<article>
			<script>var tracking = true;</script>
			<style>p { color: red; }</style>
			<p>Visible article text.</p>
		</article>
	</body>
	</html>`

	got := extractor.extract([]byte(html))

	if strings.Contains(got, "tracking") {
		t.Errorf("Expected script content removed, got %q", got)
	}
	if strings.Contains(got, "color: red") {
		t.Errorf("Expected style content removed, got %q", got)
	}
	if !strings.Contains(got, "Visible article text.") {
		t.Errorf("Expected visible text kept, got %q", got)
	}
}

func TestContentExtractorBodyFallback(t *testing.T) {
	extractor := NewContentExtractor(http.DefaultClient, "test-agent")

	got := extractor.extract([]byte(`<html><body><p>Raw body only.</p></body></html>`))

	if !strings.Contains(got, "body only") {
		t.Errorf("Expected body text fallback, got %q", got)
	}
}

func TestContentExtractorCollapsesWhitespace(t *testing.T) {
	extractor := NewContentExtractor(http.DefaultClient, "test-agent")

	html := `<html><body><article><p>spaced


	out		text</p></article></body></html>`

	got := extractor.extract([]byte(html))

	if got != "spaced out text" {
		t.Errorf("Expected collapsed whitespace, got %q", got)
	}
}

func TestContentExtractorEmptyURL(t *testing.T) {
	extractor := NewContentExtractor(http.DefaultClient, "test-agent")

	if got := extractor.Run(context.Background(), ""); got != "" {
		t.Errorf("Expected empty result for empty URL, got %q", got)
	}
}

func TestContentExtractorFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	extractor := NewContentExtractor(server.Client(), "test-agent")

	if got := extractor.Run(context.Background(), server.URL+"/gone"); got != "" {
		t.Errorf("Expected empty result on fetch failure, got %q", got)
	}
}
