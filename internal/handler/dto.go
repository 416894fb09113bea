package handler

import (
	"encoding/json"
	"strings"

	"neuralpress/pkg/news"
)

type NewsResponse struct {
	Success  bool           `json:"success"`
	Category string         `json:"category"`
	Total    int            `json:"total"`
	Articles []news.Article `json:"articles"`
}

type RankResponse struct {
	Success  bool           `json:"success"`
	Total    int            `json:"total"`
	Articles []news.Article `json:"articles"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type RankRequest struct {
	Articles    []news.Article  `json:"articles"`
	UserHistory json.RawMessage `json:"userHistory"`
}

// interests flattens userHistory into the interest string the ranking
// service expects. The client sends either a plain string or a list of
// interest keywords; anything else ranks without a signal.
func (r RankRequest) interests() string {
	var s string
	if json.Unmarshal(r.UserHistory, &s) == nil {
		return s
	}

	var list []string
	if json.Unmarshal(r.UserHistory, &list) == nil {
		return strings.Join(list, " ")
	}

	return ""
}
