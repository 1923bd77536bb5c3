package model

import "time"

// Config holds the complete scour configuration.
type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	LLM          LLMConfig          `yaml:"llm"`
	Search       SearchConfig       `yaml:"search"`
	Fetch        FetchConfig        `yaml:"fetch"`
	Research     ResearchConfig     `yaml:"research"`
	Cache        CacheConfig        `yaml:"cache"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	Output       OutputConfig       `yaml:"output"`
}

// HTTPConfig controls outbound HTTP behavior for direct page fetches.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// LLMConfig selects and configures the completion provider.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // openai, anthropic, ollama
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// SearchConfig configures the web-search provider.
type SearchConfig struct {
	Provider string `yaml:"provider"` // serpapi
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Timeout  int    `yaml:"timeout"` // seconds
}

// FetchConfig configures the page-content fetch provider. When no
// ScrapingAnt API key is set the direct fetcher is used instead.
type FetchConfig struct {
	Provider string `yaml:"provider"` // scrapingant, direct
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Timeout  int    `yaml:"timeout"` // seconds
}

// ResearchConfig bounds the shape of a single research run.
type ResearchConfig struct {
	MaxQueries      int `yaml:"max_queries"`       // Search queries per prompt
	MaxSources      int `yaml:"max_sources"`       // Source cap after search
	MinParagraphLen int `yaml:"min_paragraph_len"` // Paragraphs shorter than this are noise
	ExcerptLimit    int `yaml:"excerpt_limit"`     // Runes of content sent per extraction call
}

// CacheConfig controls the fetched-page cache used by the direct fetcher.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// RateLimitingConfig controls per-domain request pacing.
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// ConcurrencyConfig controls batch-mode parallelism. Individual runs are
// always sequential.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool   `yaml:"verbose"`
	Dir     string `yaml:"dir"`
}

// DefaultConfig returns sensible defaults. Temperature and token budgets for
// the three completion call types live in the pipeline, not here.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Scour/0.2 (+https://github.com/scourhq/scour)",
			MaxBodyBytes: 2_000_000,
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			Timeout:   60,
			MaxTokens: 16000,
		},
		Search: SearchConfig{
			Provider: "serpapi",
			Timeout:  20,
		},
		Fetch: FetchConfig{
			Provider: "direct",
			Timeout:  30,
		},
		Research: ResearchConfig{
			MaxQueries:      5,
			MaxSources:      5,
			MinParagraphLen: 50,
			ExcerptLimit:    8000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Dir: "./scour-reports",
		},
	}
}
