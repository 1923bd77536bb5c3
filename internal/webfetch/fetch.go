// Package webfetch wraps the page-content fetch collaborator: a URL in, raw
// markup out. Two implementations exist, a scraping-API client and a direct
// HTTP fetcher with crawl politeness.
package webfetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/scourhq/scour/internal/model"
)

// Fetcher defines the interface for fetch providers.
type Fetcher interface {
	// Name returns the provider name
	Name() string

	// Fetch retrieves the raw markup of a page
	Fetch(ctx context.Context, url string) (string, error)
}

// FetchError wraps a transport or status failure from a fetch provider.
type FetchError struct {
	Provider string
	URL      string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s fetch of %s failed: %v", e.Provider, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewFetcher creates a fetch provider based on configuration. An explicit
// scrapingant provider without an API key is an error; the default falls
// back to the direct fetcher.
func NewFetcher(cfg *model.Config) (Fetcher, error) {
	provider := strings.ToLower(cfg.Fetch.Provider)

	switch provider {
	case "scrapingant":
		return NewScrapingAntClient(cfg.Fetch.APIKey, cfg.Fetch.BaseURL, time.Duration(cfg.Fetch.Timeout)*time.Second)

	case "direct", "":
		return NewDirectFetcher(cfg), nil

	default:
		return nil, fmt.Errorf("unknown fetch provider: %s (supported: scrapingant, direct)", cfg.Fetch.Provider)
	}
}
