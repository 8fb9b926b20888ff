package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Feed is one configured RSS feed.
type Feed struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

// NewsAPIConfig holds the newsapi.org source settings.
type NewsAPIConfig struct {
	APIKey   string `yaml:"api_key"`
	Country  string `yaml:"country"`
	Category string `yaml:"category"`
}

// SpeechConfig holds text-to-speech settings.
type SpeechConfig struct {
	Enabled bool   `yaml:"enabled"`
	Command string `yaml:"command,omitempty"`
}

type Config struct {
	Source      string         `yaml:"source"`
	FetchDelay  string         `yaml:"fetch_delay,omitempty"`
	MaxArticles int            `yaml:"max_articles,omitempty"`
	NewsAPI     *NewsAPIConfig `yaml:"newsapi,omitempty"`
	Feeds       []Feed         `yaml:"feeds,omitempty"`
	Speech      SpeechConfig   `yaml:"speech,omitempty"`
}

// FetchDelayDuration returns the simulated fixture latency, defaulting
// to one second.
func (c *Config) FetchDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.FetchDelay)
	if err != nil || d < 0 {
		return time.Second
	}
	return d
}

// GetMaxArticles returns the per-source article cap, defaulting to 15.
func (c *Config) GetMaxArticles() int {
	if c.MaxArticles <= 0 {
		return 15
	}
	return c.MaxArticles
}

// APIKey returns the resolved NewsAPI key (config or env var).
func (c *Config) APIKey() string {
	if c.NewsAPI != nil && c.NewsAPI.APIKey != "" {
		return c.NewsAPI.APIKey
	}
	return os.Getenv("NEWSDASH_API_KEY")
}

// EnabledFeeds returns the feeds selected for the rss source.
func (c *Config) EnabledFeeds() []Feed {
	var out []Feed
	for _, f := range c.Feeds {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsdash", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to the config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Source == "" {
		cfg.Source = defaults.Source
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	switch cfg.Source {
	case "fixture", "newsapi", "rss":
	default:
		return fmt.Errorf("unknown source %q (valid: fixture, newsapi, rss)", cfg.Source)
	}

	for i, f := range cfg.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feed %d: name is required", i)
		}
		if f.URL == "" {
			return fmt.Errorf("feed %q: url is required", f.Name)
		}
		u, err := url.Parse(f.URL)
		if err != nil {
			return fmt.Errorf("feed %q: invalid url: %w", f.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed %q: url scheme must be http or https, got %q", f.Name, u.Scheme)
		}
	}
	return nil
}
