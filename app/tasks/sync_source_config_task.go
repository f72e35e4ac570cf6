package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tadawulbot/news-pipeline/app/database"
	"github.com/tadawulbot/news-pipeline/app/news"
)

type SyncSourceConfigTask struct {
	Task
	SourceName   string
	SourceConfig *news.SourceConfig
	sourceRepo   database.SourceRepository
}

func NewSyncSourceConfigTask(sourceName string, sourceConfig *news.SourceConfig, sourceRepo database.SourceRepository) *SyncSourceConfigTask {
	return &SyncSourceConfigTask{
		Task:         NewTask(TaskTypeSyncSourceConfig, sourceName),
		SourceName:   sourceName,
		SourceConfig: sourceConfig,
		sourceRepo:   sourceRepo,
	}
}

func (t *SyncSourceConfigTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	err := t.sourceRepo.UpsertSource(database.Source{
		Name:     t.SourceConfig.Name,
		URL:      t.SourceConfig.URL,
		Language: t.SourceConfig.Language,
		Category: t.SourceConfig.Category,
		Kind:     t.SourceConfig.Kind,
		Enabled:  t.SourceConfig.Settings.Enabled,
	})
	if err != nil {
		slog.Error("Task failed", "type", "SyncSourceConfig", "source", t.SourceName, "error", err)
		return fmt.Errorf("failed to sync source config to database: %w", err)
	}

	slog.Info("Task completed",
		"type", "SyncSourceConfig",
		"source", t.SourceName,
		"duration", t.GetDuration())

	return nil
}
