package report

import (
	"strings"
	"testing"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/stats"
)

func TestBuildEmpty(t *testing.T) {
	got := Build(nil, nil)
	if !strings.Contains(got, "No articles to summarize.") {
		t.Errorf("expected empty-state message, got:\n%s", got)
	}
}

func TestBuildGroupsByCategory(t *testing.T) {
	arts := news.Fixture()
	got := buildAt(arts, stats.Categories(arts), time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	for _, heading := range []string{"TECHNOLOGY (1 articles)", "SPORTS (1 articles)", "POLITICS (1 articles)"} {
		if !strings.Contains(got, heading) {
			t.Errorf("missing heading %q", heading)
		}
	}

	// Option-list order: Technology before Business before Politics.
	tech := strings.Index(got, "TECHNOLOGY")
	biz := strings.Index(got, "BUSINESS")
	pol := strings.Index(got, "POLITICS")
	if !(tech < biz && biz < pol) {
		t.Errorf("categories out of option-list order: tech=%d biz=%d pol=%d", tech, biz, pol)
	}
}

func TestBuildSentimentLine(t *testing.T) {
	arts := news.Fixture()
	got := Build(arts, stats.Categories(arts))

	if !strings.Contains(got, "[+] positive (92%)") {
		t.Errorf("missing positive sentiment line, got:\n%s", got)
	}
	if !strings.Contains(got, "[-] negative (78%)") {
		t.Errorf("missing negative sentiment line")
	}
	if !strings.Contains(got, "Total: 6 | Positive: 3 | Neutral: 2 | Negative: 1") {
		t.Errorf("missing totals line")
	}
}

func TestBuildUnlistedCategoryAppended(t *testing.T) {
	arts := []news.Article{
		{ID: 1, Title: "T", Summary: "S", Category: "General",
			Sentiment: news.SentimentNeutral, Score: 0.5, Source: "X", URL: "#", PublishedAt: "now"},
	}
	got := Build(arts, []string{"all", "Technology"})
	if !strings.Contains(got, "GENERAL (1 articles)") {
		t.Errorf("out-of-list category must still be reported, got:\n%s", got)
	}
}
