package filter

import (
	"testing"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
)

func sameArticles(a, b []news.Article) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAllFiltersIdentity(t *testing.T) {
	arts := news.Fixture()
	got := Apply(arts, NewState())
	if !sameArticles(got, arts) {
		t.Errorf("match-everything state must return the input unchanged, got %d of %d", len(got), len(arts))
	}
}

func TestIdempotence(t *testing.T) {
	arts := news.Fixture()
	s := State{Category: All, Search: "the", Sentiment: news.SentimentPositive}
	once := Apply(arts, s)
	twice := Apply(once, s)
	if !sameArticles(once, twice) {
		t.Errorf("applying the same filter twice changed the result: %d vs %d", len(once), len(twice))
	}
}

func TestOrderPreserved(t *testing.T) {
	arts := news.Fixture()
	got := Apply(arts, NewState().WithSentiment(news.SentimentPositive))
	lastID := 0
	for _, a := range got {
		if a.ID <= lastID {
			t.Fatalf("output out of input order at article %d", a.ID)
		}
		lastID = a.ID
	}
}

func TestCategoryPartitioning(t *testing.T) {
	arts := news.Fixture()
	all := Apply(arts, NewState())

	labels := map[string]bool{}
	for _, a := range arts {
		labels[a.Category] = true
	}

	seen := map[int]int{}
	total := 0
	for label := range labels {
		for _, a := range Apply(arts, NewState().WithCategory(label)) {
			seen[a.ID]++
			total++
		}
	}

	if total != len(all) {
		t.Errorf("union over categories has %d articles, want %d", total, len(all))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("article %d appeared %d times across category partitions", id, n)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	arts := news.Fixture()
	upper := Apply(arts, NewState().WithSearch("AI"))
	lower := Apply(arts, NewState().WithSearch("ai"))
	if !sameArticles(upper, lower) {
		t.Errorf("search must be case-insensitive: %d vs %d results", len(upper), len(lower))
	}
}

func TestSearchMatchesSummary(t *testing.T) {
	arts := news.Fixture()
	got := Apply(arts, NewState().WithSearch("federal reserve"))
	if len(got) != 1 || got[0].Category != "Business" {
		t.Errorf("expected only the Business article via summary match, got %d", len(got))
	}
}

func TestScenarioSearchAI(t *testing.T) {
	arts := news.Fixture()
	got := Apply(arts, NewState().WithSearch("AI"))
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 article matching %q, got %d", "AI", len(got))
	}
	if got[0].Category != "Technology" {
		t.Errorf("expected the Technology article, got %s", got[0].Category)
	}
}

func TestScenarioCategorySports(t *testing.T) {
	arts := news.Fixture()
	got := Apply(arts, NewState().WithCategory("Sports"))
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 Sports article, got %d", len(got))
	}
	if got[0].ID != 5 {
		t.Errorf("expected article 5 in its original position, got %d", got[0].ID)
	}
}

func TestScenarioNoMatch(t *testing.T) {
	got := Apply(news.Fixture(), NewState().WithSearch("zzz-no-match"))
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
	if got == nil {
		t.Error("expected empty slice, not nil")
	}
}

func TestEmptyStore(t *testing.T) {
	got := Apply(nil, NewState().WithCategory("Technology").WithSearch("anything"))
	if len(got) != 0 {
		t.Errorf("empty store must yield empty result, got %d", len(got))
	}
}

func TestCategoryMatchIsExact(t *testing.T) {
	arts := news.Fixture()
	if got := Apply(arts, NewState().WithCategory("technology")); len(got) != 0 {
		t.Errorf("category match must be case-sensitive, got %d results", len(got))
	}
}

func TestCombinedFilters(t *testing.T) {
	arts := news.Fixture()
	s := State{Category: "Health", Search: "vaccine", Sentiment: news.SentimentPositive}
	got := Apply(arts, s)
	if len(got) != 1 || got[0].ID != 4 {
		t.Errorf("expected only the Health article, got %d results", len(got))
	}

	s.Sentiment = news.SentimentNegative
	if got := Apply(arts, s); len(got) != 0 {
		t.Errorf("conflicting predicates must AND to empty, got %d", len(got))
	}
}

func TestInputNotMutated(t *testing.T) {
	arts := news.Fixture()
	want := news.Fixture()
	Apply(arts, NewState().WithSearch("coral"))
	if !sameArticles(arts, want) {
		t.Error("Apply must not mutate its input")
	}
}
