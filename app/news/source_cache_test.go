package news

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSourceCacheLoadValidConfig(t *testing.T) {
	tempDir := t.TempDir()

	content := `
url: "https://example.com/markets"
language: "ar"
category: "financial"
kind: "html"

settings:
  enabled: true
  timeout: 15

selectors:
  list: "div.news-item"
  title: "h3 a"
  date: "span.timestamp"
`

	if err := os.WriteFile(filepath.Join(tempDir, "example.yml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	registry := NewStrategyRegistry()
	cache := NewSourceCache(tempDir, registry)
	if err := cache.Run(); err != nil {
		t.Fatal(err)
	}

	if cache.GetConfigCount() != 1 {
		t.Errorf("Expected 1 source config, got %d", cache.GetConfigCount())
	}

	config, err := cache.GetConfig("example")
	if err != nil {
		t.Fatal(err)
	}

	if config.Name != "example" {
		t.Errorf("Expected name 'example', got %q", config.Name)
	}
	if config.URL != "https://example.com/markets" {
		t.Errorf("Expected URL preserved, got %q", config.URL)
	}
	if config.Language != "ar" {
		t.Errorf("Expected language 'ar', got %q", config.Language)
	}
	if config.Settings.Timeout != 15 {
		t.Errorf("Expected timeout 15, got %d", config.Settings.Timeout)
	}

	// Declared selectors register an extraction strategy for the source.
	strategy := registry.Resolve("example")
	if strategy.ListSelector != "div.news-item" {
		t.Errorf("Expected registered list selector, got %q", strategy.ListSelector)
	}
}

func TestSourceCacheAppliesDefaults(t *testing.T) {
	tempDir := t.TempDir()

	content := `
url: "https://example.com/news"
settings:
  enabled: true
`

	if err := os.WriteFile(filepath.Join(tempDir, "minimal.yml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cache := NewSourceCache(tempDir, NewStrategyRegistry())
	if err := cache.Run(); err != nil {
		t.Fatal(err)
	}

	config, err := cache.GetConfig("minimal")
	if err != nil {
		t.Fatal(err)
	}

	if config.Kind != KindHTML {
		t.Errorf("Expected default kind 'html', got %q", config.Kind)
	}
	if config.Settings.Timeout != defaultSourceTimeout {
		t.Errorf("Expected default timeout %d, got %d", defaultSourceTimeout, config.Settings.Timeout)
	}
	if config.Language != "en" {
		t.Errorf("Expected default language 'en', got %q", config.Language)
	}
	if config.Category != "general" {
		t.Errorf("Expected default category 'general', got %q", config.Category)
	}
}

func TestSourceCacheMissingURL(t *testing.T) {
	tempDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tempDir, "broken.yml"), []byte("language: en\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cache := NewSourceCache(tempDir, NewStrategyRegistry())
	if err := cache.Run(); err == nil {
		t.Errorf("Expected error for source without URL")
	}
}

func TestSourceCacheEmptyDirInstallsBuiltins(t *testing.T) {
	cache := NewSourceCache(t.TempDir(), NewStrategyRegistry())
	if err := cache.Run(); err != nil {
		t.Fatal(err)
	}

	if cache.GetConfigCount() != 5 {
		t.Errorf("Expected 5 built-in sources, got %d", cache.GetConfigCount())
	}

	config, err := cache.GetConfig("Argaam")
	if err != nil {
		t.Fatal(err)
	}
	if !config.Settings.Enabled {
		t.Errorf("Expected built-in sources enabled by default")
	}

	arabic, err := cache.GetConfig("CNBC Arabia")
	if err != nil {
		t.Fatal(err)
	}
	if arabic.Language != "ar" {
		t.Errorf("Expected CNBC Arabia language 'ar', got %q", arabic.Language)
	}
}

func TestSourceCacheEnabledFilterAndOrder(t *testing.T) {
	tempDir := t.TempDir()

	enabled := "url: \"https://example.com/a\"\nsettings:\n  enabled: true\n"
	disabled := "url: \"https://example.com/b\"\nsettings:\n  enabled: false\n"

	if err := os.WriteFile(filepath.Join(tempDir, "beta.yml"), []byte(enabled), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tempDir, "alpha.yml"), []byte(enabled), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tempDir, "gamma.yml"), []byte(disabled), 0644); err != nil {
		t.Fatal(err)
	}

	cache := NewSourceCache(tempDir, NewStrategyRegistry())
	if err := cache.Run(); err != nil {
		t.Fatal(err)
	}

	configs := cache.GetEnabledConfigs()
	if len(configs) != 2 {
		t.Fatalf("Expected 2 enabled sources, got %d", len(configs))
	}
	if configs[0].Name != "alpha" || configs[1].Name != "beta" {
		t.Errorf("Expected sources ordered by name, got %q then %q", configs[0].Name, configs[1].Name)
	}
}
