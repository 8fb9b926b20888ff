// Package filter narrows an article list by category, free-text search
// and sentiment. Filtering is a pure function over an explicit state
// snapshot so the presentation layer can re-run it on every change.
package filter

import (
	"strings"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
)

// All is the wildcard value for the category and sentiment fields.
const All = "all"

// State holds the three user-controlled filter parameters. It lives
// independently of the article store: a fetch replaces the store but
// never resets the filters.
type State struct {
	Category  string // All or an exact category label
	Search    string // free text, empty matches everything
	Sentiment string // All or one of the three sentiment labels
}

// NewState returns the match-everything snapshot.
func NewState() State {
	return State{Category: All, Sentiment: All}
}

// WithCategory returns a copy of s with the category changed.
func (s State) WithCategory(category string) State {
	s.Category = category
	return s
}

// WithSearch returns a copy of s with the search term changed.
func (s State) WithSearch(term string) State {
	s.Search = term
	return s
}

// WithSentiment returns a copy of s with the sentiment changed.
func (s State) WithSentiment(sentiment string) State {
	s.Sentiment = sentiment
	return s
}

// Matches reports whether one article passes all three predicates.
// Category and sentiment are exact, case-sensitive matches; the search
// term is a case-insensitive substring match over title or summary.
func (s State) Matches(a news.Article) bool {
	if s.Category != All && a.Category != s.Category {
		return false
	}
	if s.Sentiment != All && a.Sentiment != s.Sentiment {
		return false
	}
	if s.Search != "" {
		term := strings.ToLower(s.Search)
		if !strings.Contains(strings.ToLower(a.Title), term) &&
			!strings.Contains(strings.ToLower(a.Summary), term) {
			return false
		}
	}
	return true
}

// Apply returns the articles matching s, preserving input order. The
// result is always a new slice; the input is never reordered or
// mutated. An empty input or no matches yields an empty slice.
func Apply(articles []news.Article, s State) []news.Article {
	out := make([]news.Article, 0, len(articles))
	for _, a := range articles {
		if s.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}
