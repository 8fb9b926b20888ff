package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/report"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/source"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/speech"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/stats"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a plain-text news summary",
	Long:  "report fetches articles from the configured source and prints a summary grouped by category with per-article sentiment and overall totals.",
	RunE:  runReport,
}

var speakCmd = &cobra.Command{
	Use:   "speak",
	Short: "Read the news summary aloud",
	RunE:  runSpeakReport,
}

var flagSearch string

func init() {
	reportCmd.PersistentFlags().StringVar(&flagSearch, "search", "", "only include articles whose title or summary contains the term")
	reportCmd.AddCommand(speakCmd)
}

// fetchReport pulls articles through the sqlite store and renders the
// summary text.
func fetchReport() (string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}

	sources, err := buildSources(cfg)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := source.FetchAll(ctx, sources)
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "[warn] %v\n", e)
	}
	if result.Dropped > 0 {
		fmt.Fprintf(os.Stderr, "[warn] dropped %d malformed articles\n", result.Dropped)
	}

	db, err := store.Open()
	if err != nil {
		return "", err
	}
	defer db.Close()

	if err := db.Replace(result.Articles); err != nil {
		return "", err
	}
	articles, err := loadArticles(db, flagSearch)
	if err != nil {
		return "", err
	}

	return report.Build(articles, stats.Categories(news.Fixture())), nil
}

// loadArticles reads the stored set back, narrowed by the search term.
func loadArticles(db *store.Store, term string) ([]news.Article, error) {
	if term == "" {
		return db.All()
	}
	matched, err := db.Search(term)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		n, err := db.Len()
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("no articles match %q (%d loaded)", term, n)
	}
	return matched, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	text, err := fetchReport()
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func runSpeakReport(cmd *cobra.Command, args []string) error {
	text, err := fetchReport()
	if err != nil {
		return err
	}

	speaker := speech.New()
	if !speaker.Available() {
		fmt.Println(text)
		return fmt.Errorf("no text-to-speech command found")
	}

	speaker.Say(speech.CleanForSpeech(text))
	return nil
}
