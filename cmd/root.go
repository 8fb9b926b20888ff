package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/config"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/source"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/speech"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagSource string
	flagDelay  string
)

var rootCmd = &cobra.Command{
	Use:   "newsdash",
	Short: "TUI news dashboard with sentiment filtering",
	Long:  "newsdash loads news articles into an interactive terminal dashboard with category, search, and sentiment filters, live aggregates, and spoken playback.",
	RunE:  runTUI,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&flagSource, "source", "", "article source: fixture, newsapi, or rss")
	rootCmd.Flags().StringVar(&flagDelay, "delay", "", "fixture fetch latency (e.g., 1s, 500ms)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(reportCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newsdash %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sources, err := buildSources(cfg)
	if err != nil {
		return err
	}

	speaker := buildSpeaker(cfg)
	if !speaker.Available() {
		fmt.Fprintln(os.Stderr, "[warn] no text-to-speech command found; s key will do nothing")
	}

	return tui.Run(tui.RunOpts{
		Sources: sources,
		Speaker: speaker,
	})
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagSource != "" {
		cfg.Source = flagSource
	}
	if flagDelay != "" {
		d, err := parseDelay(flagDelay)
		if err != nil {
			return nil, err
		}
		cfg.FetchDelay = d.String()
	}
	return cfg, nil
}

// buildSources maps the configured source to concrete DataSources.
func buildSources(cfg *config.Config) ([]source.DataSource, error) {
	switch cfg.Source {
	case "fixture":
		return []source.DataSource{source.NewFixtureSource(cfg.FetchDelayDuration())}, nil

	case "newsapi":
		key := cfg.APIKey()
		if key == "" {
			return nil, fmt.Errorf("newsapi source requires an API key (set newsapi.api_key or NEWSDASH_API_KEY)")
		}
		country, category := "us", ""
		if cfg.NewsAPI != nil {
			if cfg.NewsAPI.Country != "" {
				country = cfg.NewsAPI.Country
			}
			category = cfg.NewsAPI.Category
		}
		return []source.DataSource{source.NewNewsAPISource(key, country, category, cfg.GetMaxArticles())}, nil

	case "rss":
		enabled := cfg.EnabledFeeds()
		if len(enabled) == 0 {
			return nil, fmt.Errorf("rss source requires at least one enabled feed")
		}
		feeds := make([]source.Feed, 0, len(enabled))
		for _, f := range enabled {
			feeds = append(feeds, source.Feed{Name: f.Name, URL: f.URL})
		}
		return source.FromFeeds(feeds, cfg.GetMaxArticles()), nil

	default:
		return nil, fmt.Errorf("unknown source %q (valid: fixture, newsapi, rss)", cfg.Source)
	}
}

func buildSpeaker(cfg *config.Config) *speech.Speaker {
	if !cfg.Speech.Enabled {
		return &speech.Speaker{}
	}
	if cfg.Speech.Command != "" {
		return speech.NewWithCommand(cfg.Speech.Command)
	}
	return speech.New()
}

// parseDelay accepts a Go duration string or a bare number of seconds.
func parseDelay(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("delay must be non-negative, got %d", n)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid delay %q: use a duration like 1s or 500ms", s)
	}
	if d < 0 {
		return 0, fmt.Errorf("delay must be non-negative, got %s", d)
	}
	return d, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
