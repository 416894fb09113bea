package rank

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"neuralpress/pkg/news"
)

const rankTimeout = 5 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: rankTimeout},
	}
}

type rankRequest struct {
	Articles  []news.Article `json:"articles"`
	Interests string         `json:"interests"`
}

type rankResponse struct {
	Ranked []news.Article `json:"ranked"`
}

// Rank sends the candidate list to the ranking service and returns the
// reordered result. Ranking is best effort: any failure (unreachable
// service, timeout, error status, malformed or ranked-less response) keeps
// the input list in its original order. It never reports an error to the
// caller.
func (c *Client) Rank(articles []news.Article, interests string) []news.Article {
	body, err := json.Marshal(rankRequest{Articles: articles, Interests: interests})
	if err != nil {
		slog.Warn("ranking request encode failed, keeping original order", "error", err)
		return articles
	}

	resp, err := c.httpClient.Post(c.baseURL+"/rank", "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Warn("ranking service unreachable, keeping original order", "error", err)
		return articles
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("ranking service error, keeping original order", "status", resp.StatusCode)
		return articles
	}

	var parsed rankResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		slog.Warn("ranking response decode failed, keeping original order", "error", err)
		return articles
	}

	if len(parsed.Ranked) == 0 {
		slog.Warn("ranking response missing ranked list, keeping original order")
		return articles
	}

	return parsed.Ranked
}
