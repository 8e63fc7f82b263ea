package model

import "time"

// Config is the full runtime configuration tree
type Config struct {
	Recognizer  RecognizerConfig  `yaml:"recognizer" json:"recognizer"`
	Matcher     MatcherConfig     `yaml:"matcher" json:"matcher"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// RecognizerConfig configures the entity recognition backend
type RecognizerConfig struct {
	// Backend name: "prose" (local, default) or "openai" (remote)
	Backend string `yaml:"backend" json:"backend"`

	// Model name for remote backends (e.g. gpt-4o-mini)
	Model string `yaml:"model" json:"model"`

	// APIKey for remote backends (prefer the OPENAI_API_KEY env var)
	APIKey string `yaml:"api_key,omitempty" json:"api_key,omitempty"`

	// BaseURL overrides the remote endpoint (e.g. a local proxy)
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`

	// Timeout per recognition call for remote backends
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// RateLimit caps remote recognition calls per second; Burst allows
	// short spikes above the sustained rate
	RateLimit float64 `yaml:"rate_limit" json:"rate_limit"`
	Burst     int     `yaml:"burst" json:"burst"`
}

// MatcherConfig configures fuzzy name matching
type MatcherConfig struct {
	// Metric name: "levenshtein" (default) or "jaro-winkler"
	Metric string `yaml:"metric" json:"metric"`

	// NameThreshold is the minimum confidence (0-100) below which a
	// supplied name raises a mismatch issue
	NameThreshold int `yaml:"name_threshold" json:"name_threshold"`
}

// ConcurrencyConfig configures parallel extraction
type ConcurrencyConfig struct {
	// ExtractionWorkers bounds concurrent per-block recognition.
	// 1 keeps extraction fully sequential.
	ExtractionWorkers int `yaml:"extraction_workers" json:"extraction_workers"`
}

// CacheConfig configures caching of remote recognizer responses
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// OutputConfig configures report output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Recognizer: RecognizerConfig{
			Backend:   "prose",
			Model:     "gpt-4o-mini",
			Timeout:   30 * time.Second,
			RateLimit: 2,
			Burst:     5,
		},
		Matcher: MatcherConfig{
			Metric:        "levenshtein",
			NameThreshold: 85,
		},
		Concurrency: ConcurrencyConfig{
			ExtractionWorkers: 1,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Output: OutputConfig{},
	}
}
