package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/scourhq/scour/internal/llm"
	"github.com/scourhq/scour/internal/model"
	"github.com/scourhq/scour/internal/pipeline"
	"github.com/scourhq/scour/internal/search"
	"github.com/scourhq/scour/internal/webfetch"
)

// resolveCredentials pulls API keys from the environment into the config.
// Keys never live in the config file.
func resolveCredentials(cfg *model.Config) error {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("AIML_API_KEY")
			if base := os.Getenv("AIML_BASE_URL"); base != "" && cfg.LLM.BaseURL == "" {
				cfg.LLM.BaseURL = base
			}
		}
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY (or AIML_API_KEY) environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	cfg.Search.APIKey = os.Getenv("SERP_API_KEY")
	if cfg.Search.APIKey == "" {
		return fmt.Errorf("SERP_API_KEY environment variable not set")
	}

	// ScrapingAnt is optional: without a key, pages are fetched directly.
	if key := os.Getenv("SCRAPINGANT_API_KEY"); key != "" {
		cfg.Fetch.APIKey = key
		if cfg.Fetch.Provider == "" || cfg.Fetch.Provider == "direct" {
			cfg.Fetch.Provider = "scrapingant"
		}
	}

	return nil
}

// buildPipeline wires the three collaborators and returns a ready pipeline.
func buildPipeline(cfg *model.Config, log *zap.Logger) (*pipeline.Pipeline, error) {
	completer, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM, cfg.HTTP))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	if completer == nil {
		return nil, fmt.Errorf("an LLM provider is required (--llm-provider openai|anthropic|ollama)")
	}

	searcher, err := search.NewSerpAPIClient(cfg.Search.APIKey, cfg.Search.BaseURL, time.Duration(cfg.Search.Timeout)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("initialize search provider: %w", err)
	}

	fetcher, err := webfetch.NewFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize fetch provider: %w", err)
	}

	return pipeline.New(completer, searcher, fetcher, cfg, log), nil
}

// newLogger builds the CLI logger: warnings only by default, everything in
// verbose mode, always to stderr so artifacts on stdout stay clean.
func newLogger(verbose bool) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zapCfg.Encoding = "console"
	} else {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return zapCfg.Build()
}

// sanitizeFilename turns a prompt into a safe file slug
func sanitizeFilename(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > 80 {
		slug = slug[:80]
	}
	if slug == "" {
		slug = "research"
	}
	return slug
}
