package news

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const defaultSourceTimeout = 30 // seconds

// SourceCache loads per-source YAML descriptors from a directory. When the
// directory holds no configurations, the built-in Saudi-market source set is
// installed instead.
type SourceCache struct {
	sourcesDir string
	registry   *StrategyRegistry
	cache      map[string]*SourceConfig
	mu         sync.RWMutex
}

func NewSourceCache(sourcesDir string, registry *StrategyRegistry) *SourceCache {
	return &SourceCache{
		sourcesDir: sourcesDir,
		registry:   registry,
		cache:      make(map[string]*SourceConfig),
	}
}

func (sc *SourceCache) Run() error {
	files, err := filepath.Glob(filepath.Join(sc.sourcesDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		fileName := filepath.Base(file)
		sourceName := strings.TrimSuffix(fileName, ".yml")

		config, err := sc.LoadConfig(sourceName)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Source configuration loaded", "source", config.Name,
			"kind", config.Kind, "language", config.Language, "enabled", config.Settings.Enabled)
	}

	if len(sc.cache) == 0 {
		sc.installDefaults()
		slog.Info("No source configurations found, using built-in sources", "count", sc.GetConfigCount())
	}

	return nil
}

func (sc *SourceCache) LoadConfig(sourceName string) (*SourceConfig, error) {
	configFile := filepath.Join(sc.sourcesDir, sourceName+".yml")

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read source config: %w", err)
	}

	config := &SourceConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse source config: %w", err)
	}

	config.Name = sourceName
	applyConfigDefaults(config)

	if config.URL == "" {
		return nil, fmt.Errorf("source %s has no URL", sourceName)
	}

	if config.Selectors.List != "" {
		sc.registry.Register(ExtractionStrategy{
			SourceName:    config.Name,
			ListSelector:  config.Selectors.List,
			TitleSelector: config.Selectors.Title,
			DateSelector:  config.Selectors.Date,
		})
	}

	sc.mu.Lock()
	sc.cache[sourceName] = config
	sc.mu.Unlock()

	return config, nil
}

func (sc *SourceCache) GetConfig(sourceName string) (*SourceConfig, error) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	config, ok := sc.cache[sourceName]
	if !ok {
		return nil, fmt.Errorf("source %s is not configured", sourceName)
	}
	return config, nil
}

// GetConfigs returns all configurations sorted by name so that a collection
// cycle visits sources in a stable order.
func (sc *SourceCache) GetConfigs() []*SourceConfig {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	configs := make([]*SourceConfig, 0, len(sc.cache))
	for _, config := range sc.cache {
		configs = append(configs, config)
	}

	sort.Slice(configs, func(i, j int) bool { return configs[i].Name < configs[j].Name })

	return configs
}

func (sc *SourceCache) GetEnabledConfigs() []*SourceConfig {
	configs := sc.GetConfigs()

	enabled := make([]*SourceConfig, 0, len(configs))
	for _, config := range configs {
		if config.Settings.Enabled {
			enabled = append(enabled, config)
		}
	}

	return enabled
}

func (sc *SourceCache) GetConfigCount() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.cache)
}

func (sc *SourceCache) installDefaults() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	for _, config := range builtinSources() {
		sc.cache[config.Name] = config
	}
}

func builtinSources() []*SourceConfig {
	configs := []*SourceConfig{
		{Name: "Argaam", URL: "https://www.argaam.com/en/company/companies-prices", Language: "en", Category: "financial"},
		{Name: "Saudi Exchange", URL: "https://www.saudiexchange.sa/wps/portal/tadawul/market-participants/news", Language: "en", Category: "exchange"},
		{Name: "Arab News", URL: "https://www.arabnews.com/tags/saudi-stock-exchange", Language: "en", Category: "general"},
		{Name: "CNBC Arabia", URL: "https://www.cnbcarabia.com/market/saudi", Language: "ar", Category: "financial"},
		{Name: "Aleqtisadiah", URL: "https://www.aleqt.com/tags/31", Language: "ar", Category: "financial"},
	}

	for _, config := range configs {
		config.Kind = KindHTML
		config.Settings.Enabled = true
		config.Settings.Timeout = defaultSourceTimeout
	}

	return configs
}

func applyConfigDefaults(config *SourceConfig) {
	if config.Kind == "" {
		config.Kind = KindHTML
	}
	if config.Settings.Timeout <= 0 {
		config.Settings.Timeout = defaultSourceTimeout
	}
	if config.Category == "" {
		config.Category = "general"
	}
	config.Language = normalizeLanguage(config.Language)
}

// normalizeLanguage reduces a configured language tag ("ar", "ar-SA") to its
// base form; anything unparseable defaults to English.
func normalizeLanguage(lang string) string {
	if lang == "" {
		return "en"
	}

	tag, err := language.Parse(lang)
	if err != nil {
		slog.Warn("Unrecognized source language, defaulting to en", "language", lang)
		return "en"
	}

	base, _ := tag.Base()
	return base.String()
}
