package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// Texts at or above this many characters are split into chunks.
	translateChunkThreshold = 5000
	translateChunkSize      = 4999
	translateMaxRetries     = 3
)

// Translator produces a best-effort translation through a
// LibreTranslate-compatible endpoint. It never fails: after the bounded retry
// cascade the original text is returned unchanged.
type Translator struct {
	client     *http.Client
	endpoint   string
	maxRetries int
	retryDelay time.Duration // initial backoff, doubles per attempt
	chunkPause time.Duration // deliberate backpressure between chunk calls
	sleep      func(time.Duration)
}

func NewTranslator(client *http.Client, endpoint string) *Translator {
	return &Translator{
		client:     client,
		endpoint:   endpoint,
		maxRetries: translateMaxRetries,
		retryDelay: 2 * time.Second,
		chunkPause: 1 * time.Second,
		sleep:      time.Sleep,
	}
}

// Run translates text from sourceLang to targetLang. Empty input
// short-circuits to an empty string; an unconfigured endpoint or exhausted
// retries return the original text.
func (t *Translator) Run(ctx context.Context, text, sourceLang, targetLang string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	if t.endpoint == "" {
		slog.Debug("Translation endpoint not configured, keeping original text")
		return text
	}

	delay := t.retryDelay
	for attempt := 1; attempt <= t.maxRetries; attempt++ {
		translated, err := t.translateAll(ctx, text, sourceLang, targetLang)
		if err == nil {
			return translated
		}

		slog.Error("Translation failed", "attempt", attempt,
			"max_attempts", t.maxRetries, "error", err)

		if attempt < t.maxRetries {
			t.sleep(delay)
			delay *= 2
		}
	}

	slog.Error("Translation failed after maximum attempts, keeping original text")
	return text
}

func (t *Translator) translateAll(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	runes := []rune(text)

	if len(runes) < translateChunkThreshold {
		return t.translateOnce(ctx, text, sourceLang, targetLang)
	}

	// Simple sequential slicing, not sentence-aware.
	var chunks []string
	for i := 0; i < len(runes); i += translateChunkSize {
		end := i + translateChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}

	translated := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		result, err := t.translateOnce(ctx, chunk, sourceLang, targetLang)
		if err != nil {
			return "", fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		translated = append(translated, result)

		if i < len(chunks)-1 {
			t.sleep(t.chunkPause)
		}
	}

	return strings.Join(translated, " "), nil
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (t *Translator) translateOnce(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode translation request: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "POST", t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read translation response: %w", err)
	}

	var result translateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode translation response: %w", err)
	}

	if result.TranslatedText == "" {
		return "", fmt.Errorf("translation response contained no text")
	}

	return result.TranslatedText, nil
}
