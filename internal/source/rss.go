package source

import (
	"context"
	"fmt"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/analyze"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
	"github.com/mmcdole/gofeed"
)

// RSSSource pulls one RSS or Atom feed and enriches the items with the
// keyword analyzer.
type RSSSource struct {
	name   string
	url    string
	max    int
	parser *gofeed.Parser
}

// NewRSSSource builds a feed source. max bounds the returned items;
// zero or negative means 15.
func NewRSSSource(name, feedURL string, max int) *RSSSource {
	if max <= 0 {
		max = 15
	}
	return &RSSSource{name: name, url: feedURL, max: max, parser: gofeed.NewParser()}
}

func (r *RSSSource) Name() string { return r.name }

func (r *RSSSource) Fetch(ctx context.Context) ([]news.Article, error) {
	feed, err := r.parser.ParseURLWithContext(r.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", r.name, err)
	}

	articles := make([]news.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Title == "" {
			continue
		}
		if len(articles) >= r.max {
			break
		}

		desc := item.Description
		if desc == "" {
			desc = item.Content
		}
		desc = stripHTML(desc)
		if desc == "" {
			desc = item.Title
		}

		published := "just now"
		if item.PublishedParsed != nil {
			published = relativeTime(*item.PublishedParsed)
		} else if item.UpdatedParsed != nil {
			published = relativeTime(*item.UpdatedParsed)
		}

		label, score := analyze.Sentiment(item.Title + " " + desc)

		articles = append(articles, news.Article{
			ID:          len(articles) + 1,
			Title:       item.Title,
			Summary:     truncate(analyze.Summarize(desc, 60), 300),
			Category:    analyze.Categorize(item.Title, desc),
			Sentiment:   label,
			Score:       score,
			Source:      r.name,
			URL:         item.Link,
			PublishedAt: published,
		})
	}
	return articles, nil
}

// FromFeeds builds one RSSSource per configured feed.
func FromFeeds(feeds []Feed, max int) []DataSource {
	out := make([]DataSource, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, NewRSSSource(f.Name, f.URL, max))
	}
	return out
}

// Feed names one RSS feed endpoint.
type Feed struct {
	Name string
	URL  string
}
