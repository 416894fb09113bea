package news

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://newsapi.org/v2"
	fetchTimeout   = 8 * time.Second
)

type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewNewsAPIClient builds a provider client. An empty baseURL selects the
// public NewsAPI endpoint; tests point it at a local stub.
func NewNewsAPIClient(apiKey, baseURL string) *NewsAPIClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch returns normalized articles for the query. It never returns an
// error: any provider failure falls back to the synthetic article set for
// the requested category.
func (c *NewsAPIClient) Fetch(q Query) ([]Article, error) {
	now := time.Now().UTC()

	raw, err := c.fetchRaw(q)
	if err != nil {
		slog.Warn("news provider unavailable, using mock data", "category", q.Category, "error", err)
		raw = mockRawArticles(q.Category, now)
	}

	return normalizeAll(raw, now), nil
}

// fetchRaw calls the search endpoint when a query string is supplied, else
// the category-browse endpoint. The two are mutually exclusive.
func (c *NewsAPIClient) fetchRaw(q Query) ([]rawArticle, error) {
	endpoint := c.baseURL + "/top-headlines"
	params := url.Values{}

	if q.Search != "" {
		endpoint = c.baseURL + "/everything"
		params.Set("q", q.Search)
		params.Set("sortBy", "publishedAt")
	} else {
		params.Set("category", q.Category)
	}

	params.Set("language", "en")
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	params.Set("apiKey", c.apiKey)

	resp, err := c.httpClient.Get(endpoint + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi fetch: unexpected status %d", resp.StatusCode)
	}

	var payload newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s", payload.Message)
	}

	return payload.Articles, nil
}

type newsAPIResponse struct {
	Status   string       `json:"status"`
	Message  string       `json:"message"`
	Articles []rawArticle `json:"articles"`
}
