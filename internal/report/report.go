// Package report renders the article set as a plain-text digest,
// grouped by category, for the non-interactive CLI path and for
// text-to-speech playback.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/stats"
)

func sentimentMarker(sentiment string) string {
	switch sentiment {
	case news.SentimentPositive:
		return "[+]"
	case news.SentimentNegative:
		return "[-]"
	default:
		return "[=]"
	}
}

// Build renders the grouped digest. Categories appear in the given
// option-list order; articles the list does not cover are grouped at
// the end under their own labels, in first-occurrence order.
func Build(articles []news.Article, categories []string) string {
	return buildAt(articles, categories, time.Now())
}

func buildAt(articles []news.Article, categories []string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NEWS SUMMARY - %s\n", now.Format("January 2, 2006 15:04"))
	b.WriteString(strings.Repeat("=", 60) + "\n")

	if len(articles) == 0 {
		b.WriteString("\nNo articles to summarize.\n")
		return b.String()
	}

	grouped := map[string][]news.Article{}
	for _, a := range articles {
		grouped[a.Category] = append(grouped[a.Category], a)
	}

	order := make([]string, 0, len(grouped))
	seen := map[string]bool{}
	for _, c := range categories {
		if c != "all" && len(grouped[c]) > 0 {
			order = append(order, c)
			seen[c] = true
		}
	}
	for _, a := range articles {
		if !seen[a.Category] {
			order = append(order, a.Category)
			seen[a.Category] = true
		}
	}

	for _, category := range order {
		group := grouped[category]
		fmt.Fprintf(&b, "\n%s (%d articles)\n", strings.ToUpper(category), len(group))
		b.WriteString(strings.Repeat("-", 60) + "\n")

		for i, a := range group {
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, a.Title)
			fmt.Fprintf(&b, "   Source: %s | Sentiment: %s %s (%.0f%%) | %s\n",
				a.Source, sentimentMarker(a.Sentiment), a.Sentiment, a.Score*100, a.PublishedAt)
			fmt.Fprintf(&b, "   Summary: %s\n", a.Summary)
			fmt.Fprintf(&b, "   Link: %s\n", a.URL)
		}
	}

	c := stats.CountBySentiment(articles)
	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(&b, "Total: %d | Positive: %d | Neutral: %d | Negative: %d\n",
		c.Total(), c.Positive, c.Neutral, c.Negative)

	return b.String()
}
