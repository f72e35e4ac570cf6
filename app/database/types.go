package database

import (
	"time"
)

type Source struct {
	Name            string
	URL             string
	Language        string
	Category        string
	Kind            string // html, rss, api
	Enabled         bool
	LastCollectedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Sentiment carries both estimator outputs side by side. The lexicon set
// (compound/positive/negative/neutral) and the polarity/subjectivity pair are
// computed independently and are never reconciled into a single score.
type Sentiment struct {
	Compound     float64 `json:"compound"`
	Positive     float64 `json:"positive"`
	Negative     float64 `json:"negative"`
	Neutral      float64 `json:"neutral"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Article is a stored article record. Records are created once per unique URL
// and never mutated or deleted by the pipeline.
type Article struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Language    string    `json:"language"`
	Title       string    `json:"title"`
	TitleEn     string    `json:"title_en"`
	Content     string    `json:"content"`
	ContentEn   string    `json:"content_en"`
	PublishedAt time.Time `json:"published_at"`
	ProcessedAt time.Time `json:"processed_at"`
	Sentiment   Sentiment `json:"sentiment"`
	Symbols     []string  `json:"symbols"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewArticle is the insert payload for ArticleRepository.
type NewArticle struct {
	URL         string
	Source      string
	Language    string
	Title       string
	TitleEn     string
	Content     string
	ContentEn   string
	PublishedAt time.Time
	ProcessedAt time.Time
	Sentiment   Sentiment
	Symbols     []string
}
