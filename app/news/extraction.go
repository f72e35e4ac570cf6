package news

import (
	"sync"
)

// ExtractionStrategy describes how to locate article stubs on a source's
// listing page. One strategy is registered per known source; unknown sources
// fall back to a generic strategy.
type ExtractionStrategy struct {
	SourceName    string
	ListSelector  string
	TitleSelector string
	DateSelector  string
}

type StrategyRegistry struct {
	strategies map[string]ExtractionStrategy
	mu         sync.RWMutex
}

var genericStrategy = ExtractionStrategy{
	ListSelector:  "article, div.article-item, div.news-item",
	TitleSelector: "h1 a, h2 a, h3 a",
	DateSelector:  "time, span.date",
}

// NewStrategyRegistry returns a registry seeded with the built-in strategies
// for the known Saudi-market sources.
func NewStrategyRegistry() *StrategyRegistry {
	r := &StrategyRegistry{
		strategies: make(map[string]ExtractionStrategy),
	}

	for _, s := range builtinStrategies() {
		r.Register(s)
	}

	return r
}

func builtinStrategies() []ExtractionStrategy {
	return []ExtractionStrategy{
		{
			SourceName:    "Argaam",
			ListSelector:  "div.article-box",
			TitleSelector: "h3.title a",
			DateSelector:  "span.date",
		},
		{
			SourceName:    "Saudi Exchange",
			ListSelector:  "div.news-item",
			TitleSelector: "h3.news-title a",
			DateSelector:  "span.news-date",
		},
		{
			SourceName:    "Arab News",
			ListSelector:  "div.article-item",
			TitleSelector: "h3.article-title a",
			DateSelector:  "span.article-date",
		},
		{
			SourceName:    "CNBC Arabia",
			ListSelector:  "div.news-card",
			TitleSelector: "h3.card-title a",
			DateSelector:  "span.card-date",
		},
		{
			SourceName:    "Aleqtisadiah",
			ListSelector:  "div.article-item",
			TitleSelector: "h2.article-title a",
			DateSelector:  "span.article-date",
		},
	}
}

func (r *StrategyRegistry) Register(strategy ExtractionStrategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[strategy.SourceName] = strategy
}

// Resolve returns the strategy registered for the source, or the generic
// fallback when no explicit strategy exists.
func (r *StrategyRegistry) Resolve(sourceName string) ExtractionStrategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if strategy, ok := r.strategies[sourceName]; ok {
		return strategy
	}

	generic := genericStrategy
	generic.SourceName = sourceName
	return generic
}

func (r *StrategyRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.strategies)
}
