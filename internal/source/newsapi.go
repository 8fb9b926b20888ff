package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/analyze"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
)

const newsAPIEndpoint = "https://newsapi.org/v2/top-headlines"

// NewsAPISource fetches top headlines from newsapi.org and enriches
// each record with the keyword analyzer, since the API carries no
// category or sentiment of its own.
type NewsAPISource struct {
	apiKey   string
	country  string
	category string
	max      int
	client   *http.Client
}

// NewNewsAPISource builds a live source for the given API key.
// Country and category follow the API's query parameters; max bounds
// the number of returned articles.
func NewNewsAPISource(apiKey, country, category string, max int) *NewsAPISource {
	if country == "" {
		country = "us"
	}
	if max <= 0 {
		max = 15
	}
	return &NewsAPISource{
		apiKey:   apiKey,
		country:  country,
		category: category,
		max:      max,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (n *NewsAPISource) Name() string { return "newsapi" }

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (n *NewsAPISource) Fetch(ctx context.Context) ([]news.Article, error) {
	q := url.Values{}
	q.Set("country", n.country)
	if n.category != "" {
		q.Set("category", n.category)
	}
	q.Set("pageSize", fmt.Sprint(n.max))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, newsAPIEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", n.apiKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("newsapi %d: %s", resp.StatusCode, string(b))
	}

	var nr newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("decoding newsapi response: %w", err)
	}
	if nr.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q: %s", nr.Status, nr.Message)
	}

	articles := make([]news.Article, 0, len(nr.Articles))
	for i, raw := range nr.Articles {
		if raw.Title == "" || raw.Description == "" {
			continue
		}
		if len(articles) >= n.max {
			break
		}

		published := "just now"
		if t, err := time.Parse(time.RFC3339, raw.PublishedAt); err == nil {
			published = relativeTime(t)
		}

		body := raw.Content
		if body == "" {
			body = raw.Description
		}
		label, score := analyze.Sentiment(raw.Title + " " + raw.Description)

		articles = append(articles, news.Article{
			ID:          i + 1,
			Title:       raw.Title,
			Summary:     analyze.Summarize(stripHTML(body), 40),
			Category:    analyze.Categorize(raw.Title, raw.Description),
			Sentiment:   label,
			Score:       score,
			Source:      raw.Source.Name,
			URL:         raw.URL,
			PublishedAt: published,
		})
	}
	return articles, nil
}
