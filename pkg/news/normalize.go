package news

import "time"

const (
	removedTitle       = "[Removed]"
	defaultTitle       = "Untitled"
	defaultDescription = "No description available."
	defaultURL         = "#"
	defaultSource      = "Unknown"
)

// rawArticle mirrors the provider's article shape.
type rawArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// normalize maps one raw provider record to an Article. Every field has a
// defined default, so it never fails. A missing or unparseable publishedAt
// falls back to now, which fabricates recency for such records.
func normalize(raw rawArticle, now time.Time) Article {
	a := Article{
		ID:          raw.URL,
		Title:       raw.Title,
		Description: raw.Description,
		URL:         raw.URL,
		ImageURL:    raw.URLToImage,
		Source:      raw.Source.Name,
		Author:      raw.Author,
		PublishedAt: now,
	}

	if a.Title == "" {
		a.Title = defaultTitle
	}
	if a.Description == "" {
		a.Description = defaultDescription
	}
	if a.URL == "" {
		a.URL = defaultURL
	}
	if a.Source == "" {
		a.Source = defaultSource
	}
	if ts, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
		a.PublishedAt = ts
	}

	return a
}

// normalizeAll drops records with empty or removed-sentinel titles and
// normalizes the rest, preserving order.
func normalizeAll(raw []rawArticle, now time.Time) []Article {
	articles := make([]Article, 0, len(raw))
	for _, r := range raw {
		if r.Title == "" || r.Title == removedTitle {
			continue
		}
		articles = append(articles, normalize(r, now))
	}
	return articles
}
