package news

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tadawulbot/news-pipeline/app/database"
)

const (
	targetLanguage = "en"
	// Internal read limit when aggregating a sentiment summary.
	summaryQueryLimit = 100
	// Trend classification thresholds over the mean compound score.
	trendPositiveThreshold = 0.05
	trendNegativeThreshold = -0.05
	summaryLatestCount     = 5
)

// Pipeline runs the collection cycle: fetch per source, extract, translate,
// score, link symbols, and persist with dedup-on-insert. One cycle is a
// single-threaded batch; sources and articles are handled sequentially.
type Pipeline struct {
	sourceCache *SourceCache
	fetcher     *Fetcher
	feedSource  *FeedSource
	apiSource   *APISource
	translator  *Translator
	scorer      *Scorer
	articleRepo database.ArticleRepository
	sourceRepo  database.SourceRepository
	sourceDelay time.Duration // deliberate backpressure between sources
	sleep       func(time.Duration)
}

func NewPipeline(sourceCache *SourceCache, fetcher *Fetcher, feedSource *FeedSource,
	apiSource *APISource, translator *Translator, scorer *Scorer,
	articleRepo database.ArticleRepository, sourceRepo database.SourceRepository) *Pipeline {
	return &Pipeline{
		sourceCache: sourceCache,
		fetcher:     fetcher,
		feedSource:  feedSource,
		apiSource:   apiSource,
		translator:  translator,
		scorer:      scorer,
		articleRepo: articleRepo,
		sourceRepo:  sourceRepo,
		sourceDelay: 1 * time.Second,
		sleep:       time.Sleep,
	}
}

// CollectAndAnalyze runs one collection cycle across all enabled sources.
// It always returns a well-formed summary: failures accumulate in Errors and
// never propagate past this boundary.
func (p *Pipeline) CollectAndAnalyze(ctx context.Context) *CollectionResult {
	result := &CollectionResult{
		Sources: make(map[string]int),
		Errors:  []string{},
	}

	sources := p.sourceCache.GetEnabledConfigs()
	slog.Info("Starting collection cycle", "sources", len(sources))

	var all []Article
	for i, source := range sources {
		articles := p.collectFromSource(ctx, *source)

		result.Sources[source.Name] = len(articles)
		result.TotalArticles += len(articles)
		all = append(all, articles...)

		if err := p.sourceRepo.SetSourceCollected(source.Name, time.Now().UTC()); err != nil {
			slog.Warn("Failed to record source collection time", "source", source.Name, "error", err)
		}

		if p.sourceDelay > 0 && i < len(sources)-1 {
			p.sleep(p.sourceDelay)
		}
	}

	for i := range all {
		p.processArticle(ctx, &all[i])
		result.ProcessedArticles++
	}

	for i := range all {
		stored, err := p.storeArticle(all[i])
		if err != nil {
			msg := fmt.Sprintf("Error storing article %s: %v", all[i].URL, err)
			slog.Error("Article store failed", "url", all[i].URL, "error", err)
			result.Errors = append(result.Errors, msg)
			continue
		}
		if stored {
			result.StoredArticles++
		} else {
			slog.Info("Article already exists", "url", all[i].URL)
		}
	}

	slog.Info("Collection cycle completed",
		"total", result.TotalArticles,
		"processed", result.ProcessedArticles,
		"stored", result.StoredArticles,
		"errors", len(result.Errors))

	return result
}

func (p *Pipeline) collectFromSource(ctx context.Context, source SourceConfig) []Article {
	slog.Info("Collecting news", "source", source.Name, "kind", source.Kind)

	switch source.Kind {
	case KindRSS:
		return p.feedSource.Run(ctx, source)
	case KindAPI:
		return p.apiSource.Run(ctx, source)
	default:
		return p.fetcher.Run(ctx, source)
	}
}

// processArticle attaches the canonical timestamp, the English view, the
// sentiment vector and the symbol set. The English fields always end up
// populated, falling back to the source text on translation failure.
func (p *Pipeline) processArticle(ctx context.Context, article *Article) {
	if article.Language != targetLanguage {
		slog.Info("Translating article", "title", article.Title, "source", article.Source)
		article.TitleEn = p.translator.Run(ctx, article.Title, article.Language, targetLanguage)
		article.ContentEn = p.translator.Run(ctx, article.Content, article.Language, targetLanguage)
	} else {
		article.TitleEn = article.Title
		article.ContentEn = article.Content
	}

	text := article.TitleEn + " " + article.ContentEn

	article.Sentiment = p.scorer.Run(text)
	article.Symbols = ExtractSymbols(text)

	if article.PublishedAt.IsZero() {
		article.PublishedAt = NormalizeDate(article.PublishedRaw)
	}

	article.ProcessedAt = time.Now().UTC()
}

func (p *Pipeline) storeArticle(article Article) (bool, error) {
	return p.articleRepo.InsertArticle(database.NewArticle{
		URL:         article.URL,
		Source:      article.Source,
		Language:    article.Language,
		Title:       article.Title,
		TitleEn:     article.TitleEn,
		Content:     article.Content,
		ContentEn:   article.ContentEn,
		PublishedAt: article.PublishedAt,
		ProcessedAt: article.ProcessedAt,
		Sentiment: database.Sentiment{
			Compound:     article.Sentiment.Compound,
			Positive:     article.Sentiment.Positive,
			Negative:     article.Sentiment.Negative,
			Neutral:      article.Sentiment.Neutral,
			Polarity:     article.Sentiment.Polarity,
			Subjectivity: article.Sentiment.Subjectivity,
		},
		Symbols: article.Symbols,
	})
}

// NewsForSymbol returns stored articles mentioning the symbol within the
// trailing window, newest first. Storage errors degrade to an empty list.
func (p *Pipeline) NewsForSymbol(symbol string, days, limit int) []database.Article {
	articles, err := p.articleRepo.GetNewsForSymbol(symbol, days, limit)
	if err != nil {
		slog.Error("Failed to retrieve news for symbol", "symbol", symbol, "error", err)
		return []database.Article{}
	}

	slog.Debug("Retrieved news for symbol", "symbol", symbol, "count", len(articles))
	return articles
}

// SentimentSummary aggregates stored articles for the symbol into a rolling
// sentiment signal. Zero articles yield the neutral defaults, never an error.
func (p *Pipeline) SentimentSummary(symbol string, days int) SentimentSummary {
	summary := SentimentSummary{
		Symbol:         symbol,
		PeriodDays:     days,
		SentimentTrend: "neutral",
		LatestArticles: []SummaryArticle{},
	}

	articles := p.NewsForSymbol(symbol, days, summaryQueryLimit)
	if len(articles) == 0 {
		return summary
	}

	var compound, positive, negative, neutral float64
	for _, article := range articles {
		compound += article.Sentiment.Compound
		positive += article.Sentiment.Positive
		negative += article.Sentiment.Negative
		neutral += article.Sentiment.Neutral
	}

	n := float64(len(articles))
	summary.ArticleCount = len(articles)
	summary.AverageSentiment = SummarySentiment{
		Compound: compound / n,
		Positive: positive / n,
		Negative: negative / n,
		Neutral:  neutral / n,
	}

	switch {
	case summary.AverageSentiment.Compound >= trendPositiveThreshold:
		summary.SentimentTrend = "positive"
	case summary.AverageSentiment.Compound <= trendNegativeThreshold:
		summary.SentimentTrend = "negative"
	}

	latest := articles
	if len(latest) > summaryLatestCount {
		latest = latest[:summaryLatestCount]
	}
	for _, article := range latest {
		summary.LatestArticles = append(summary.LatestArticles, SummaryArticle{
			Title:       article.Title,
			URL:         article.URL,
			PublishedAt: article.PublishedAt,
			Source:      article.Source,
			Sentiment:   article.Sentiment.Compound,
		})
	}

	slog.Info("Generated sentiment summary", "symbol", symbol, "trend", summary.SentimentTrend)

	return summary
}
