package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var _ ArticleRepository = (*ArticleRepo)(nil)

type ArticleRepo struct {
	db *DB
}

func NewArticleRepository(db *DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

func (r *ArticleRepo) ExistsByURL(url string) (bool, error) {
	var id string
	err := r.db.QueryRow(`SELECT id FROM articles WHERE url = ? LIMIT 1`, url).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check article existence: %w", err)
	}
	return true, nil
}

func (r *ArticleRepo) InsertArticle(article NewArticle) (bool, error) {
	exists, err := r.ExistsByURL(article.URL)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	now := time.Now().UTC()

	_, err = tx.Exec(`
		INSERT INTO articles (
			id, url, source, language, title, title_en, content, content_en,
			published_at, processed_at,
			compound, positive, negative, neutral, polarity, subjectivity,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, article.URL, article.Source, article.Language,
		article.Title, article.TitleEn, article.Content, article.ContentEn,
		article.PublishedAt.UTC(), article.ProcessedAt.UTC(),
		article.Sentiment.Compound, article.Sentiment.Positive,
		article.Sentiment.Negative, article.Sentiment.Neutral,
		article.Sentiment.Polarity, article.Sentiment.Subjectivity,
		now)
	if err != nil {
		return false, fmt.Errorf("failed to insert article: %w", err)
	}

	for _, symbol := range article.Symbols {
		_, err = tx.Exec(`
			INSERT INTO article_symbols (article_id, symbol) VALUES (?, ?)
			ON CONFLICT (article_id, symbol) DO NOTHING
		`, id, symbol)
		if err != nil {
			return false, fmt.Errorf("failed to insert article symbol: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit article insert: %w", err)
	}

	return true, nil
}

func (r *ArticleRepo) GetNewsForSymbol(symbol string, days, limit int) ([]Article, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	rows, err := r.db.Query(`
		SELECT a.id, a.url, a.source, a.language, a.title, a.title_en,
		       a.content, a.content_en, a.published_at, a.processed_at,
		       a.compound, a.positive, a.negative, a.neutral,
		       a.polarity, a.subjectivity, a.created_at
		FROM articles a
		JOIN article_symbols s ON s.article_id = a.id
		WHERE s.symbol = ?
		  AND a.published_at >= ?
		  AND a.published_at <= ?
		ORDER BY a.published_at DESC
		LIMIT ?
	`, symbol, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query news for symbol: %w", err)
	}
	defer rows.Close()

	articles := []Article{}
	for rows.Next() {
		var a Article
		err := rows.Scan(
			&a.ID, &a.URL, &a.Source, &a.Language, &a.Title, &a.TitleEn,
			&a.Content, &a.ContentEn, &a.PublishedAt, &a.ProcessedAt,
			&a.Sentiment.Compound, &a.Sentiment.Positive,
			&a.Sentiment.Negative, &a.Sentiment.Neutral,
			&a.Sentiment.Polarity, &a.Sentiment.Subjectivity,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	for i := range articles {
		symbols, err := r.getSymbols(articles[i].ID)
		if err != nil {
			return nil, err
		}
		articles[i].Symbols = symbols
	}

	return articles, nil
}

func (r *ArticleRepo) getSymbols(articleID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT symbol FROM article_symbols WHERE article_id = ? ORDER BY symbol
	`, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query article symbols: %w", err)
	}
	defer rows.Close()

	symbols := []string{}
	for rows.Next() {
		var symbol string
		if err := rows.Scan(&symbol); err != nil {
			return nil, fmt.Errorf("failed to scan symbol row: %w", err)
		}
		symbols = append(symbols, symbol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating symbol rows: %w", err)
	}

	return symbols, nil
}

func (r *ArticleRepo) GetArticleCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get article count: %w", err)
	}
	return count, nil
}

func (r *ArticleRepo) GetSourceStats() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT source, COUNT(*) FROM articles GROUP BY source`)
	if err != nil {
		return nil, fmt.Errorf("failed to get source stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats[source] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stats rows: %w", err)
	}

	return stats, nil
}
