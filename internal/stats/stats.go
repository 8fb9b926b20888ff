// Package stats computes the dashboard aggregates: per-sentiment and
// per-category counts over the live article store, and the category
// option list derived from the static fixture.
package stats

import "github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"

// SentimentCounts holds one counter per sentiment label. Counters are
// independent; unknown labels are ignored.
type SentimentCounts struct {
	Positive int
	Negative int
	Neutral  int
}

// Total returns the sum of the three counters.
func (c SentimentCounts) Total() int {
	return c.Positive + c.Negative + c.Neutral
}

// CountBySentiment tallies the current store contents in a single pass.
func CountBySentiment(articles []news.Article) SentimentCounts {
	var c SentimentCounts
	for _, a := range articles {
		switch a.Sentiment {
		case news.SentimentPositive:
			c.Positive++
		case news.SentimentNegative:
			c.Negative++
		case news.SentimentNeutral:
			c.Neutral++
		}
	}
	return c
}

// CategoryCount pairs a category label with its article count.
type CategoryCount struct {
	Category string
	Count    int
}

// CountByCategory tallies articles per label in the order of the given
// category list. The wildcard entry is skipped; labels outside the list
// are not invented.
func CountByCategory(articles []news.Article, categories []string) []CategoryCount {
	counts := make(map[string]int, len(categories))
	for _, a := range articles {
		counts[a.Category]++
	}

	out := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		if c == "all" {
			continue
		}
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	return out
}

// Categories returns the filter option list: "all" first, then each
// label in first-occurrence order of the given articles. The option
// list is computed once from the static fixture, not from whatever is
// currently loaded, so the filter UI stays stable across fetches.
func Categories(fixture []news.Article) []string {
	out := []string{"all"}
	seen := map[string]bool{}
	for _, a := range fixture {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, a.Category)
	}
	return out
}
