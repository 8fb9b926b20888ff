package news

import "testing"

func validArticle() Article {
	return Article{
		ID:          1,
		Title:       "Title",
		Summary:     "Summary",
		Category:    "Technology",
		Sentiment:   SentimentPositive,
		Score:       0.9,
		Source:      "Source",
		URL:         "#",
		PublishedAt: "1 hour ago",
	}
}

func TestValidateOK(t *testing.T) {
	if err := Validate(validArticle()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Article)
	}{
		{"empty title", func(a *Article) { a.Title = "" }},
		{"empty summary", func(a *Article) { a.Summary = "" }},
		{"empty category", func(a *Article) { a.Category = "" }},
		{"empty source", func(a *Article) { a.Source = "" }},
		{"unknown sentiment", func(a *Article) { a.Sentiment = "POSITIVE" }},
		{"score above range", func(a *Article) { a.Score = 1.1 }},
		{"score below range", func(a *Article) { a.Score = -0.1 }},
	}
	for _, tt := range tests {
		a := validArticle()
		tt.mutate(&a)
		if Validate(a) == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestSanitizeDropsMalformed(t *testing.T) {
	bad := validArticle()
	bad.ID = 2
	bad.Sentiment = "angry"

	kept, dropped := Sanitize([]Article{validArticle(), bad})
	if len(kept) != 1 || dropped != 1 {
		t.Errorf("expected 1 kept / 1 dropped, got %d / %d", len(kept), dropped)
	}
}

func TestSanitizeDropsDuplicateIDs(t *testing.T) {
	a := validArticle()
	b := validArticle()
	b.Title = "Different title, same ID"

	kept, dropped := Sanitize([]Article{a, b})
	if len(kept) != 1 || dropped != 1 {
		t.Fatalf("expected 1 kept / 1 dropped, got %d / %d", len(kept), dropped)
	}
	if kept[0].Title != a.Title {
		t.Errorf("expected first occurrence to win, got %q", kept[0].Title)
	}
}

func TestSanitizeEmpty(t *testing.T) {
	kept, dropped := Sanitize(nil)
	if len(kept) != 0 || dropped != 0 {
		t.Errorf("expected empty result, got %d / %d", len(kept), dropped)
	}
}

func TestFixtureIsValid(t *testing.T) {
	arts := Fixture()
	if len(arts) != 6 {
		t.Fatalf("expected 6 fixture articles, got %d", len(arts))
	}
	kept, dropped := Sanitize(arts)
	if dropped != 0 {
		t.Errorf("fixture contains %d invalid articles", dropped)
	}
	if len(kept) != 6 {
		t.Errorf("expected all 6 to survive sanitize, got %d", len(kept))
	}
}

func TestFixtureReturnsCopy(t *testing.T) {
	a := Fixture()
	a[0].Title = "mutated"
	b := Fixture()
	if b[0].Title == "mutated" {
		t.Error("Fixture must return a fresh copy on every call")
	}
}
