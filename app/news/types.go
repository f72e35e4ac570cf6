package news

import (
	"time"
)

// Source kinds
const (
	KindHTML = "html"
	KindRSS  = "rss"
	KindAPI  = "api"
)

// Article is filled in progressively by the pipeline stages: the fetcher sets
// the identity fields and raw content, later stages attach the canonical
// timestamp, the English view, sentiment and symbols.
type Article struct {
	Title        string
	URL          string
	Source       string
	Language     string
	Content      string
	PublishedRaw string
	PublishedAt  time.Time
	TitleEn      string
	ContentEn    string
	Sentiment    Sentiment
	Symbols      []string
	ProcessedAt  time.Time
}

// Sentiment holds two independently computed estimates: a lexicon-based set
// (compound in [-1,1]; positive/negative/neutral in [0,1], summing to ~1) and
// a polarity/subjectivity pair. They are reported side by side without being
// reconciled; downstream consumers weight them as needed.
type Sentiment struct {
	Compound     float64 `json:"compound"`
	Positive     float64 `json:"positive"`
	Negative     float64 `json:"negative"`
	Neutral      float64 `json:"neutral"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Configuration types

type SourceConfig struct {
	Name      string          `yaml:"-"` // Derived from filename (without .yml extension)
	URL       string          `yaml:"url"`
	Language  string          `yaml:"language"` // ar or en
	Category  string          `yaml:"category"`
	Kind      string          `yaml:"kind"` // html, rss or api
	Settings  SourceSettings  `yaml:"settings"`
	Selectors SourceSelectors `yaml:"selectors"`
}

type SourceSettings struct {
	Enabled bool `yaml:"enabled"`
	Timeout int  `yaml:"timeout"` // seconds
}

type SourceSelectors struct {
	List  string `yaml:"list"`
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

// Derived summary types

type SummarySentiment struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

type SummaryArticle struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_date"`
	Source      string    `json:"source"`
	Sentiment   float64   `json:"sentiment"`
}

// SentimentSummary is recomputed on demand from stored articles within a
// trailing window; it owns no storage of its own.
type SentimentSummary struct {
	Symbol           string           `json:"symbol"`
	PeriodDays       int              `json:"period_days"`
	ArticleCount     int              `json:"article_count"`
	AverageSentiment SummarySentiment `json:"average_sentiment"`
	SentimentTrend   string           `json:"sentiment_trend"`
	LatestArticles   []SummaryArticle `json:"latest_articles"`
}

// CollectionResult is the summary returned by a collection cycle. It is
// always well formed; partial failures accumulate in Errors.
type CollectionResult struct {
	TotalArticles     int            `json:"total_articles"`
	ProcessedArticles int            `json:"processed_articles"`
	StoredArticles    int            `json:"stored_articles"`
	Sources           map[string]int `json:"sources"`
	Errors            []string       `json:"errors"`
}
