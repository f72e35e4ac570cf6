package database

import (
	"time"
)

type SourceRepository interface {
	UpsertSource(source Source) error
	SetSourceCollected(name string, at time.Time) error
	GetSources() ([]Source, error)
	GetSourceCount() (int, error)
}

type ArticleRepository interface {
	// InsertArticle stores an article unless one with the same URL exists.
	// The boolean reports whether a new row was written; an existing URL is
	// not an error.
	InsertArticle(article NewArticle) (bool, error)
	ExistsByURL(url string) (bool, error)

	GetNewsForSymbol(symbol string, days, limit int) ([]Article, error)
	GetArticleCount() (int, error)
	GetSourceStats() (map[string]int, error)
}
