package source

import (
	"context"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
)

// DefaultDelay is how long the fixture source simulates network
// latency before resolving.
const DefaultDelay = time.Second

// FixtureSource serves the static article set after a fixed delay,
// standing in for a live backend. It never fails: every fetch resolves
// with the same articles unless the context is cancelled first.
type FixtureSource struct {
	delay    time.Duration
	articles func() []news.Article
}

// NewFixtureSource returns a fixture source with the given simulated
// delay. A non-positive delay resolves immediately, which tests rely
// on.
func NewFixtureSource(delay time.Duration) *FixtureSource {
	return &FixtureSource{delay: delay, articles: news.Fixture}
}

func (f *FixtureSource) Name() string { return "fixture" }

func (f *FixtureSource) Fetch(ctx context.Context) ([]news.Article, error) {
	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return f.articles(), nil
}
