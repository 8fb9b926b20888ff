package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
)

func TestFixtureFetchResolvesAfterDelay(t *testing.T) {
	src := NewFixtureSource(20 * time.Millisecond)

	start := time.Now()
	articles, err := src.Fetch(context.Background())
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("fixture source must not fail: %v", err)
	}
	if elapsed < 20*time.Millisecond {
		t.Errorf("fetch resolved before the simulated delay: %v", elapsed)
	}
	if len(articles) != 6 {
		t.Errorf("expected 6 fixture articles, got %d", len(articles))
	}
}

func TestFixtureFetchSameSetEveryCall(t *testing.T) {
	src := NewFixtureSource(0)
	first, _ := src.Fetch(context.Background())
	second, _ := src.Fetch(context.Background())

	if len(first) != len(second) {
		t.Fatalf("fetch sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("article %d differs between fetches", i)
		}
	}
}

func TestFixtureFetchCancellation(t *testing.T) {
	src := NewFixtureSource(time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := src.Fetch(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", err)
	}
}

type stubSource struct {
	name     string
	articles []news.Article
	err      error
}

func (s stubSource) Name() string { return s.name }
func (s stubSource) Fetch(context.Context) ([]news.Article, error) {
	return s.articles, s.err
}

func stubArticle(title string) news.Article {
	return news.Article{
		Title: title, Summary: "summary", Category: "General",
		Sentiment: news.SentimentNeutral, Score: 0.5,
		Source: "stub", URL: "#", PublishedAt: "just now",
	}
}

func TestFetchAllMergesAndRenumbers(t *testing.T) {
	result := FetchAll(context.Background(), []DataSource{
		stubSource{name: "a", articles: []news.Article{stubArticle("one"), stubArticle("two")}},
		stubSource{name: "b", articles: []news.Article{stubArticle("three")}},
	})

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Articles) != 3 {
		t.Fatalf("expected 3 merged articles, got %d", len(result.Articles))
	}
	seen := map[int]bool{}
	for _, a := range result.Articles {
		if seen[a.ID] {
			t.Errorf("duplicate ID %d after merge", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestFetchAllCollectsErrors(t *testing.T) {
	result := FetchAll(context.Background(), []DataSource{
		stubSource{name: "good", articles: []news.Article{stubArticle("ok")}},
		stubSource{name: "bad", err: errors.New("boom")},
	})

	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 collected error, got %d", len(result.Errors))
	}
	if len(result.Articles) != 1 {
		t.Errorf("good source's articles must survive a sibling failure, got %d", len(result.Articles))
	}
}

func TestFetchAllDropsMalformed(t *testing.T) {
	bad := stubArticle("bad")
	bad.Sentiment = "LABEL_1"

	result := FetchAll(context.Background(), []DataSource{
		stubSource{name: "mixed", articles: []news.Article{stubArticle("good"), bad}},
	})

	if len(result.Articles) != 1 || result.Dropped != 1 {
		t.Errorf("expected 1 kept / 1 dropped, got %d / %d", len(result.Articles), result.Dropped)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripHTML(tt.input); got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"this is a long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-2 * 24 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		if got := relativeTime(tt.t); got != tt.want {
			t.Errorf("relativeTime(%v ago) = %q, want %q", now.Sub(tt.t), got, tt.want)
		}
	}
}
