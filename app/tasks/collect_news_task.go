package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tadawulbot/news-pipeline/app/news"
)

type CollectNewsTask struct {
	Task
	pipeline *news.Pipeline
}

func NewCollectNewsTask(pipeline *news.Pipeline) *CollectNewsTask {
	return &CollectNewsTask{
		Task:     NewTask(TaskTypeCollectNews, "all-sources"),
		pipeline: pipeline,
	}
}

func (t *CollectNewsTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	result := t.pipeline.CollectAndAnalyze(ctx)

	if result.TotalArticles > 0 && result.StoredArticles == 0 && len(result.Errors) > 0 {
		slog.Error("Task failed", "type", "CollectNews", "errors", len(result.Errors))
		return fmt.Errorf("collection cycle stored no articles: %d errors", len(result.Errors))
	}

	slog.Info("Task completed",
		"type", "CollectNews",
		"total", result.TotalArticles,
		"stored", result.StoredArticles,
		"errors", len(result.Errors),
		"duration", t.GetDuration())

	return nil
}
