package news

import (
	"fmt"
	"time"
)

const (
	mockSource = "Mock News Network"
	mockAuthor = "Editorial Team"
)

var mockTemplates = []struct {
	title       string
	description string
}{
	{"Top %s story of the day", "A fascinating development in this field."},
	{"Breaking: Major %s update", "Experts weigh in on recent changes."},
	{"How %s is changing in 2025", "An in-depth look at current trends."},
	{"The future of %s", "What analysts predict for the coming year."},
	{"%s weekly roundup", "Everything you need to know this week."},
	{"5 things driving %s forward", "Innovation continues at a rapid pace."},
}

// mockRawArticles builds the synthetic fallback set for a category in the
// provider's raw shape, so it flows through the same normalization path as
// live data. Timestamps decrease by one hour per entry so index 0 is the
// most recent.
func mockRawArticles(category string, now time.Time) []rawArticle {
	raw := make([]rawArticle, len(mockTemplates))
	for i, tpl := range mockTemplates {
		r := rawArticle{
			Title:       fmt.Sprintf(tpl.title, category),
			Description: tpl.description,
			URL:         fmt.Sprintf("https://example.com/%s/%d", category, i+1),
			URLToImage:  fmt.Sprintf("https://picsum.photos/seed/%s%d/600/400", category, i),
			Author:      mockAuthor,
			PublishedAt: now.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
		}
		r.Source.Name = mockSource
		raw[i] = r
	}
	return raw
}

// MockArticles returns the normalized synthetic article set used when the
// provider is unavailable.
func MockArticles(category string, now time.Time) []Article {
	return normalizeAll(mockRawArticles(category, now), now)
}
