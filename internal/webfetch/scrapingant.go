package webfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const scrapingAntBaseURL = "https://api.scrapingant.com/v2/general"

// ScrapingAntClient implements Fetcher against the ScrapingAnt general
// endpoint. The service renders and returns the page markup; browser mode is
// disabled to keep responses fast and cheap.
type ScrapingAntClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type scrapingAntResponse struct {
	Content string `json:"content"`
}

// NewScrapingAntClient creates a new ScrapingAnt client. baseURL is
// overridable for tests; pass "" for the production endpoint.
func NewScrapingAntClient(apiKey, baseURL string, timeout time.Duration) (*ScrapingAntClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ScrapingAnt API key is required")
	}
	if baseURL == "" {
		baseURL = scrapingAntBaseURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &ScrapingAntClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Name returns the provider name
func (c *ScrapingAntClient) Name() string {
	return "scrapingant"
}

// Fetch retrieves the raw markup of a page through the scraping API.
func (c *ScrapingAntClient) Fetch(ctx context.Context, pageURL string) (string, error) {
	params := url.Values{}
	params.Set("url", pageURL)
	params.Set("x-api-key", c.apiKey)
	params.Set("browser", "false")

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", &FetchError{Provider: c.Name(), URL: pageURL, Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{Provider: c.Name(), URL: pageURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Provider: c.Name(), URL: pageURL, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{
			Provider: c.Name(),
			URL:      pageURL,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var parsed scrapingAntResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &FetchError{Provider: c.Name(), URL: pageURL, Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	return parsed.Content, nil
}
