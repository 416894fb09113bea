package news

import "time"

// Article is the canonical shape served to clients. There is no storage
// layer, so the same struct is both the domain model and the wire format.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      string    `json:"author,omitempty"`

	// Score is a relevance indicator attached by the ranking service.
	// Zero means the article has not been ranked.
	Score float64 `json:"_score,omitempty"`
}

// Query carries resolved request parameters into a fetch. Category is
// ignored by the provider once Search is non-empty. Page and PageSize
// arrive already clamped by the handler.
type Query struct {
	Category string
	Search   string
	Page     int
	PageSize int
}
