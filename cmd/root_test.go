package cmd

import (
	"testing"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/config"
)

func TestParseDelay(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		err   bool
	}{
		{"1s", time.Second, false},
		{"500ms", 500 * time.Millisecond, false},
		{"2", 2 * time.Second, false},
		{"0", 0, false},
		{"1m30s", 90 * time.Second, false},
		{"-1s", 0, true},
		{"-2", 0, true},
		{"fast", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseDelay(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("parseDelay(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDelay(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDelay(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBuildSourcesFixture(t *testing.T) {
	cfg := &config.Config{Source: "fixture", FetchDelay: "1s"}

	sources, err := buildSources(cfg)
	if err != nil {
		t.Fatalf("buildSources: %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("got %d sources, want 1", len(sources))
	}
	if sources[0].Name() != "fixture" {
		t.Errorf("source name = %q, want fixture", sources[0].Name())
	}
}

func TestBuildSourcesNewsAPIRequiresKey(t *testing.T) {
	t.Setenv("NEWSDASH_API_KEY", "")
	cfg := &config.Config{Source: "newsapi"}

	if _, err := buildSources(cfg); err == nil {
		t.Error("expected error for newsapi source without API key")
	}
}

func TestBuildSourcesRSSRequiresFeeds(t *testing.T) {
	cfg := &config.Config{Source: "rss"}

	if _, err := buildSources(cfg); err == nil {
		t.Error("expected error for rss source without enabled feeds")
	}

	cfg.Feeds = []config.Feed{
		{Name: "BBC", URL: "https://feeds.bbci.co.uk/news/rss.xml", Enabled: true},
		{Name: "Off", URL: "https://example.com/rss", Enabled: false},
	}
	sources, err := buildSources(cfg)
	if err != nil {
		t.Fatalf("buildSources: %v", err)
	}
	if len(sources) != 1 {
		t.Errorf("got %d sources, want 1 (only enabled feeds)", len(sources))
	}
}

func TestBuildSourcesUnknown(t *testing.T) {
	cfg := &config.Config{Source: "carrier-pigeon"}

	if _, err := buildSources(cfg); err == nil {
		t.Error("expected error for unknown source")
	}
}
