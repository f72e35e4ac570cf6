package database

import (
	"fmt"
	"time"
)

var _ SourceRepository = (*SourceRepo)(nil)

type SourceRepo struct {
	db *DB
}

func NewSourceRepository(db *DB) *SourceRepo {
	return &SourceRepo{db: db}
}

func (r *SourceRepo) UpsertSource(source Source) error {
	now := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sources (name, url, language, category, kind, enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			url = excluded.url,
			language = excluded.language,
			category = excluded.category,
			kind = excluded.kind,
			enabled = excluded.enabled,
			updated_at = excluded.updated_at
	`, source.Name, source.URL, source.Language, source.Category, source.Kind,
		source.Enabled, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert source: %w", err)
	}

	return nil
}

func (r *SourceRepo) SetSourceCollected(name string, at time.Time) error {
	_, err := r.db.Exec(`
		UPDATE sources SET last_collected_at = ?, updated_at = ? WHERE name = ?
	`, at.UTC(), time.Now().UTC(), name)
	if err != nil {
		return fmt.Errorf("failed to update source collection time: %w", err)
	}

	return nil
}

func (r *SourceRepo) GetSources() ([]Source, error) {
	rows, err := r.db.Query(`
		SELECT name, url, language, category, kind, enabled,
		       last_collected_at, created_at, updated_at
		FROM sources
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		var s Source
		err := rows.Scan(&s.Name, &s.URL, &s.Language, &s.Category, &s.Kind,
			&s.Enabled, &s.LastCollectedAt, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan source row: %w", err)
		}
		sources = append(sources, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating source rows: %w", err)
	}

	return sources, nil
}

func (r *SourceRepo) GetSourceCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sources`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get source count: %w", err)
	}
	return count, nil
}
