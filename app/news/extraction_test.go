package news

import (
	"testing"
)

func TestStrategyRegistrySeedsBuiltins(t *testing.T) {
	registry := NewStrategyRegistry()

	if registry.Count() != 5 {
		t.Errorf("Expected 5 built-in strategies, got %d", registry.Count())
	}

	strategy := registry.Resolve("Argaam")
	if strategy.ListSelector != "div.article-box" {
		t.Errorf("Expected Argaam list selector, got %q", strategy.ListSelector)
	}
	if strategy.TitleSelector != "h3.title a" {
		t.Errorf("Expected Argaam title selector, got %q", strategy.TitleSelector)
	}
}

func TestStrategyRegistryGenericFallback(t *testing.T) {
	registry := NewStrategyRegistry()

	strategy := registry.Resolve("some-new-source")

	if strategy.SourceName != "some-new-source" {
		t.Errorf("Expected fallback strategy named after the source, got %q", strategy.SourceName)
	}
	if strategy.ListSelector != genericStrategy.ListSelector {
		t.Errorf("Expected generic list selector, got %q", strategy.ListSelector)
	}
}

func TestStrategyRegistryRegisterOverrides(t *testing.T) {
	registry := NewStrategyRegistry()

	registry.Register(ExtractionStrategy{
		SourceName:   "Argaam",
		ListSelector: "div.custom",
	})

	if got := registry.Resolve("Argaam").ListSelector; got != "div.custom" {
		t.Errorf("Expected registered strategy to override built-in, got %q", got)
	}
	if registry.Count() != 5 {
		t.Errorf("Expected override to replace, not add, got %d strategies", registry.Count())
	}
}
