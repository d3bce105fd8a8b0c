package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime configuration for the scraper.
type Config struct {
	Provider   string         `yaml:"provider"`
	OutputMode string         `yaml:"output_mode"`
	DataDir    string         `yaml:"data_dir"`
	RunLogPath string         `yaml:"run_log_path"`
	Scrape     ScrapeConfig   `yaml:"scrape"`
	Upstream   UpstreamConfig `yaml:"upstream"`
	Log        LogConfig      `yaml:"log"`
	Metrics    MetricsConfig  `yaml:"metrics"`
}

// ScrapeConfig controls orchestration pacing and concurrency.
type ScrapeConfig struct {
	Pace    Duration `yaml:"pace"`
	Workers int      `yaml:"workers"`
	Retries int      `yaml:"retries"`
	Backoff Duration `yaml:"backoff"`
}

// UpstreamConfig controls how we talk to the statistics CDN.
type UpstreamConfig struct {
	NBABaseURL  string   `yaml:"nba_base_url"`
	WNBABaseURL string   `yaml:"wnba_base_url"`
	Timeout     Duration `yaml:"timeout"`
	UserAgent   string   `yaml:"user_agent"`
}

// LogConfig selects slog level and handler format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns configuration populated with defaults only.
func Default() Config {
	return Config{
		Provider:   defaultProvider,
		OutputMode: defaultOutputMode,
		DataDir:    homeDir(),
		Scrape: ScrapeConfig{
			Pace:    defaultPace,
			Workers: defaultWorkers,
			Retries: defaultRetries,
			Backoff: defaultBackoff,
		},
		Upstream: UpstreamConfig{
			NBABaseURL:  defaultNBABaseURL,
			WNBABaseURL: defaultWNBABaseURL,
			Timeout:     defaultHTTPTimeout,
			UserAgent:   defaultUserAgent,
		},
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Metrics: defaultMetrics(),
	}
}

// Load builds configuration from defaults, an optional YAML file, then environment overrides.
func Load() (Config, error) {
	cfg := Default()
	if err := cfg.loadFile(); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Provider = envOrDefault(envProvider, c.Provider)
	c.OutputMode = envOrDefault(envOutputMode, c.OutputMode)
	c.DataDir = envOrDefault(envDataDir, c.DataDir)
	c.RunLogPath = envOrDefault(envRunLogPath, c.RunLogPath)

	c.Scrape.Pace = nonNegativeDurationEnvOrDefault(envPace, c.Scrape.Pace)
	c.Scrape.Workers = intEnvOrDefault(envWorkers, c.Scrape.Workers)
	c.Scrape.Retries = intEnvOrDefault(envRetries, c.Scrape.Retries)
	c.Scrape.Backoff = durationEnvOrDefault(envBackoff, c.Scrape.Backoff)

	c.Upstream.NBABaseURL = envOrDefault(envNBABaseURL, c.Upstream.NBABaseURL)
	c.Upstream.WNBABaseURL = envOrDefault(envWNBABaseURL, c.Upstream.WNBABaseURL)
	c.Upstream.Timeout = durationEnvOrDefault(envHTTPTimeout, c.Upstream.Timeout)
	c.Upstream.UserAgent = envOrDefault(envUserAgent, c.Upstream.UserAgent)

	c.Log.Level = envOrDefault(envLogLevel, c.Log.Level)
	c.Log.Format = envOrDefault(envLogFormat, c.Log.Format)

	c.Metrics = c.Metrics.withEnv()
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func searchPaths() []string {
	paths := []string{".nba-scraper.yaml", ".nba-scraper.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "nba-scraper", "config.yaml"),
			filepath.Join(home, ".config", "nba-scraper", "config.yml"),
		)
	}
	return paths
}
