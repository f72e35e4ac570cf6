package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tadawulbot/news-pipeline/app/database"
	"github.com/tadawulbot/news-pipeline/app/news"
	"github.com/tadawulbot/news-pipeline/app/tasks"
)

const (
	defaultNewsDays  = 7
	defaultNewsLimit = 20
	maxNewsLimit     = 100
)

func NewHandler(sourceCache *news.SourceCache, articleRepo database.ArticleRepository,
	sourceRepo database.SourceRepository, pipeline *news.Pipeline,
	scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		articleRepo: articleRepo,
		sourceRepo:  sourceRepo,
		sourceCache: sourceCache,
		pipeline:    pipeline,
		scheduler:   scheduler,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if articleCount, err := h.articleRepo.GetArticleCount(); err == nil {
		health["articles"] = articleCount
	}

	health["loaded_sources"] = h.sourceCache.GetConfigCount()

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"loaded_sources": h.sourceCache.GetConfigCount(),
	}

	if articleCount, err := h.articleRepo.GetArticleCount(); err == nil {
		stats["total_articles"] = articleCount
	}

	if sourceStats, err := h.articleRepo.GetSourceStats(); err == nil {
		stats["articles_by_source"] = sourceStats
	}

	if sourceCount, err := h.sourceRepo.GetSourceCount(); err == nil {
		stats["registered_sources"] = sourceCount
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetSymbolNews(c *gin.Context) {
	symbol := c.Param("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	days := queryInt(c, "days", defaultNewsDays)
	limit := queryInt(c, "limit", defaultNewsLimit)
	if limit > maxNewsLimit {
		limit = maxNewsLimit
	}

	articles := h.pipeline.NewsForSymbol(symbol, days, limit)

	c.JSON(http.StatusOK, gin.H{
		"symbol":   symbol,
		"days":     days,
		"count":    len(articles),
		"articles": articles,
	})
}

func (h *Handler) GetSymbolSentiment(c *gin.Context) {
	symbol := c.Param("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	days := queryInt(c, "days", defaultNewsDays)

	summary := h.pipeline.SentimentSummary(symbol, days)

	c.JSON(http.StatusOK, summary)
}

// CollectNow runs a collection cycle synchronously and returns its summary.
// With ?async=true the cycle is enqueued on the scheduler instead. Scheduled
// cycles keep running independently of on-demand ones.
func (h *Handler) CollectNow(c *gin.Context) {
	if c.Query("async") == "true" {
		task := tasks.NewCollectNewsTask(h.pipeline)
		if err := h.scheduler.EnqueueTask(task); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "failed to enqueue collection task"})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "enqueued", "task_id": task.GetID()})
		return
	}

	result := h.pipeline.CollectAndAnalyze(c.Request.Context())

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListSources(c *gin.Context) {
	configs := h.sourceCache.GetConfigs()

	sources := make([]map[string]interface{}, 0, len(configs))
	for _, config := range configs {
		sourceInfo := map[string]interface{}{
			"name":     config.Name,
			"url":      config.URL,
			"language": config.Language,
			"category": config.Category,
			"kind":     config.Kind,
			"enabled":  config.Settings.Enabled,
			"timeout":  (time.Duration(config.Settings.Timeout) * time.Second).String(),
		}

		sources = append(sources, sourceInfo)
	}

	if registered, err := h.sourceRepo.GetSources(); err == nil {
		byName := make(map[string]database.Source, len(registered))
		for _, source := range registered {
			byName[source.Name] = source
		}
		for _, sourceInfo := range sources {
			if source, ok := byName[sourceInfo["name"].(string)]; ok {
				sourceInfo["last_collected_at"] = source.LastCollectedAt
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(sources),
		"sources": sources,
	})
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
