// Package source supplies articles to the dashboard. Every concrete
// source sits behind the same DataSource contract so the rest of the
// system cannot tell a static fixture from a live API or feed.
package source

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
)

// DataSource resolves a full article set. The result replaces the
// article store wholesale; there is no incremental merge.
type DataSource interface {
	Name() string
	Fetch(ctx context.Context) ([]news.Article, error)
}

// Result holds the merged outcome of fetching several sources.
type Result struct {
	Articles []news.Article
	Dropped  int // records rejected by validation
	Errors   []error
}

// FetchAll fans out over the given sources concurrently and merges the
// outcomes. Articles are renumbered so IDs stay unique across the
// merged set; per-source failures are collected, not fatal.
func FetchAll(ctx context.Context, sources []DataSource) Result {
	var (
		mu     sync.Mutex
		result Result
		wg     sync.WaitGroup
	)

	for _, src := range sources {
		wg.Add(1)
		go func(s DataSource) {
			defer wg.Done()
			articles, err := s.Fetch(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("fetching %s: %w", s.Name(), err))
				return
			}
			result.Articles = append(result.Articles, articles...)
		}(src)
	}

	wg.Wait()

	for i := range result.Articles {
		result.Articles[i].ID = i + 1
	}
	result.Articles, result.Dropped = news.Sanitize(result.Articles)
	return result
}

// relativeTime renders a timestamp the way the dashboard displays
// recency: "just now", "5m ago", "3h ago", "2d ago", then a date.
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
