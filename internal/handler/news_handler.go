package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"neuralpress/pkg/news"

	"github.com/gin-gonic/gin"
)

type NewsSource interface {
	Fetch(q news.Query) ([]news.Article, error)
}

type NewsRanker interface {
	Rank(articles []news.Article, interests string) []news.Article
}

type NewsHandler struct {
	source NewsSource
	ranker NewsRanker
}

func NewNewsHandler(source NewsSource, ranker NewsRanker) *NewsHandler {
	return &NewsHandler{source: source, ranker: ranker}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	category := c.DefaultQuery("category", "general")
	search := c.Query("q")
	page := getQueryPage(c)
	pageSize := getQueryPageSize(c)

	articles, err := h.source.Fetch(news.Query{
		Category: category,
		Search:   search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		slog.Error("error fetching news", "category", category, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch news."})
		return
	}

	if c.Query("ai") == "true" && len(articles) > 0 {
		articles = h.ranker.Rank(articles, c.Query("interests"))
	}

	c.JSON(http.StatusOK, NewsResponse{
		Success:  true,
		Category: category,
		Total:    len(articles),
		Articles: articles,
	})
}

func (h *NewsHandler) RankNews(c *gin.Context) {
	var req RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No articles provided."})
		return
	}

	if len(req.Articles) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No articles provided."})
		return
	}

	ranked := h.ranker.Rank(req.Articles, req.interests())

	c.JSON(http.StatusOK, RankResponse{
		Success:  true,
		Total:    len(ranked),
		Articles: ranked,
	})
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryPage(c *gin.Context) int {
	page := getQueryInt("page", 1, c)
	if page < 1 {
		return 1
	}
	return page
}

func getQueryPageSize(c *gin.Context) int {
	const (
		defaultPageSize = 10
		maxPageSize     = 20
	)

	size := getQueryInt("pageSize", defaultPageSize, c)
	if size < 1 {
		return defaultPageSize
	}
	if size > maxPageSize {
		return maxPageSize
	}
	return size
}
