package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for a trendscribe run.
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	Sources SourcesConfig `mapstructure:"sources"`
	LLM     LLMConfig     `mapstructure:"llm"`
	History HistoryConfig `mapstructure:"history"`
	Output  OutputConfig  `mapstructure:"output"`
}

// GeneralConfig contains general application settings.
type GeneralConfig struct {
	Debug        bool          `mapstructure:"debug"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// SourcesConfig groups the per-source fetch settings.
type SourcesConfig struct {
	MaxCombined   int                 `mapstructure:"max_combined"`
	StackOverflow StackOverflowConfig `mapstructure:"stackoverflow"`
	Devto         DevtoConfig         `mapstructure:"devto"`
	Reddit        RedditConfig        `mapstructure:"reddit"`
}

// StackOverflowConfig configures the Stack Exchange questions fetch.
type StackOverflowConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Site     string `mapstructure:"site"`
	Tag      string `mapstructure:"tag"`
	PageSize int    `mapstructure:"page_size"`
	Key      string `mapstructure:"key"`
}

// DevtoConfig configures the Dev.to articles fetch.
type DevtoConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Tag      string `mapstructure:"tag"`
	PageSize int    `mapstructure:"page_size"`
	APIKey   string `mapstructure:"api_key"`
}

// RedditConfig configures the subreddit top-posts fetch.
type RedditConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	Subreddit string `mapstructure:"subreddit"`
	PageSize  int    `mapstructure:"page_size"`
	UserAgent string `mapstructure:"user_agent"`
}

// LLMConfig configures the OpenAI-compatible generative backend.
type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func (l LLMConfig) Validate() error {
	if strings.TrimSpace(l.APIKey) == "" {
		return fmt.Errorf("llm.api_key is required (set TRENDSCRIBE_LLM_API_KEY)")
	}
	if strings.TrimSpace(l.Model) == "" {
		return fmt.Errorf("llm.model is required")
	}
	return nil
}

// HistoryConfig configures the usage ledger and the recency window.
type HistoryConfig struct {
	LedgerPath string `mapstructure:"ledger_path"`
	WindowDays int    `mapstructure:"window_days"`
}

func (h HistoryConfig) Validate() error {
	if strings.TrimSpace(h.LedgerPath) == "" {
		return fmt.Errorf("history.ledger_path is required")
	}
	if h.WindowDays < 0 {
		return fmt.Errorf("history.window_days must be >= 0")
	}
	return nil
}

// OutputConfig configures where posts are written.
type OutputConfig struct {
	PostsDir string `mapstructure:"posts_dir"`
}

func (o OutputConfig) Validate() error {
	if strings.TrimSpace(o.PostsDir) == "" {
		return fmt.Errorf("output.posts_dir is required")
	}
	return nil
}

// Load reads configuration from the given file (or a config.json found on
// the default search path) with TRENDSCRIBE_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")

	v.SetDefault("general.debug", false)
	v.SetDefault("general.fetch_timeout", 15*time.Second)
	v.SetDefault("sources.max_combined", 30)
	v.SetDefault("sources.stackoverflow.site", "stackoverflow")
	v.SetDefault("sources.stackoverflow.tag", "dotnet")
	v.SetDefault("sources.stackoverflow.page_size", 30)
	v.SetDefault("sources.devto.tag", "dotnet")
	v.SetDefault("sources.devto.page_size", 30)
	v.SetDefault("sources.reddit.subreddit", "dotnet")
	v.SetDefault("sources.reddit.page_size", 30)
	v.SetDefault("sources.reddit.user_agent", "trendscribe/1.0")
	v.SetDefault("sources.stackoverflow.key", "")
	v.SetDefault("sources.devto.api_key", "")
	// Registering the key lets AutomaticEnv feed it through Unmarshal.
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 4096)
	v.SetDefault("llm.timeout", 2*time.Minute)
	v.SetDefault("history.ledger_path", "data/history.json")
	v.SetDefault("history.window_days", 30)
	v.SetDefault("output.posts_dir", "posts")

	if path == "" {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("TRENDSCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional: env vars and defaults can carry a run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.LLM.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.History.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Output.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
