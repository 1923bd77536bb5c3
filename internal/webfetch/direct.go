package webfetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/scourhq/scour/internal/cache"
	"github.com/scourhq/scour/internal/model"
	"github.com/scourhq/scour/internal/util"
	"github.com/scourhq/scour/internal/worker"
)

// DirectFetcher fetches page markup straight from the origin with crawl
// politeness: robots.txt compliance, per-domain rate limiting, and a layered
// body cache. Used when no scraping-API key is configured.
type DirectFetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	cache      cache.Cache
	cacheTTL   model.CacheConfig
}

// NewDirectFetcher creates a new direct fetcher from configuration.
func NewDirectFetcher(cfg *model.Config) *DirectFetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var pageCache cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			pageCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			pageCache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
		}
	}

	return &DirectFetcher{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		robots:    util.NewRobotsChecker(util.NormalizeUserAgent(cfg.HTTP.UserAgent), cfg.HTTP.Timeout),
		limiter:   worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		cache:     pageCache,
		cacheTTL:  cfg.Cache,
	}
}

// Name returns the provider name
func (f *DirectFetcher) Name() string {
	return "direct"
}

// Fetch retrieves raw markup from the given URL.
func (f *DirectFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.cache != nil {
		if body, found := f.cache.Get(cache.Key(rawURL)); found {
			return string(body), nil
		}
	}

	allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return "", &FetchError{Provider: f.Name(), URL: rawURL, Err: err}
	}
	if !allowed {
		return "", &FetchError{Provider: f.Name(), URL: rawURL, Err: fmt.Errorf("disallowed by robots.txt")}
	}

	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return "", &FetchError{Provider: f.Name(), URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{Provider: f.Name(), URL: rawURL, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{Provider: f.Name(), URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{
			Provider: f.Name(),
			URL:      rawURL,
			Err:      fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status),
		}
	}

	// Read body with size limit
	limitedReader := io.LimitReader(resp.Body, f.maxBytes)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return "", &FetchError{Provider: f.Name(), URL: rawURL, Err: fmt.Errorf("read body: %w", err)}
	}

	if f.cache != nil {
		_ = f.cache.Set(cache.Key(rawURL), body, f.cacheTTL.MemoryTTL)
	}

	return string(body), nil
}
