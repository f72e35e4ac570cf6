package api

import (
	"github.com/tadawulbot/news-pipeline/app/database"
	"github.com/tadawulbot/news-pipeline/app/news"
	"github.com/tadawulbot/news-pipeline/app/tasks"
)

type Handler struct {
	articleRepo database.ArticleRepository
	sourceRepo  database.SourceRepository
	sourceCache *news.SourceCache
	pipeline    *news.Pipeline
	scheduler   tasks.TaskSchedulerInterface
}
