package news

import "fmt"

// Sentiment labels assigned to every article.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Article is one news item with precomputed summary, category and
// sentiment metadata. Articles are immutable once fetched.
type Article struct {
	ID          int
	Title       string
	Summary     string
	Category    string
	Sentiment   string
	Score       float64 // confidence in the sentiment label, 0..1
	Source      string
	URL         string
	PublishedAt string // relative display string, e.g. "2 hours ago"
}

// ValidSentiment reports whether s is one of the three defined labels.
func ValidSentiment(s string) bool {
	return s == SentimentPositive || s == SentimentNegative || s == SentimentNeutral
}

// Validate checks the data model invariants for one article.
func Validate(a Article) error {
	if a.Title == "" {
		return fmt.Errorf("article %d: title is required", a.ID)
	}
	if a.Summary == "" {
		return fmt.Errorf("article %d: summary is required", a.ID)
	}
	if a.Category == "" {
		return fmt.Errorf("article %d: category is required", a.ID)
	}
	if a.Source == "" {
		return fmt.Errorf("article %d: source is required", a.ID)
	}
	if !ValidSentiment(a.Sentiment) {
		return fmt.Errorf("article %d: unknown sentiment %q", a.ID, a.Sentiment)
	}
	if a.Score < 0 || a.Score > 1 {
		return fmt.Errorf("article %d: score %.2f out of range [0,1]", a.ID, a.Score)
	}
	return nil
}

// Sanitize drops malformed records and duplicate IDs rather than failing
// the whole fetch. Input order is preserved for the kept articles.
func Sanitize(articles []Article) (kept []Article, dropped int) {
	seen := make(map[int]bool, len(articles))
	kept = make([]Article, 0, len(articles))
	for _, a := range articles {
		if Validate(a) != nil || seen[a.ID] {
			dropped++
			continue
		}
		seen[a.ID] = true
		kept = append(kept, a)
	}
	return kept, dropped
}
