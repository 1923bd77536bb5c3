package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const serpAPIBaseURL = "https://serpapi.com/search"

// SerpAPIClient implements Searcher against the SerpAPI Google endpoint.
type SerpAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// serpAPIResponse is the subset of the SerpAPI payload we consume.
type serpAPIResponse struct {
	OrganicResults []serpAPIOrganicResult `json:"organic_results"`
	Error          string                 `json:"error,omitempty"`
}

type serpAPIOrganicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
}

// NewSerpAPIClient creates a new SerpAPI client. baseURL is overridable for
// tests; pass "" for the production endpoint.
func NewSerpAPIClient(apiKey, baseURL string, timeout time.Duration) (*SerpAPIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("SerpAPI key is required")
	}
	if baseURL == "" {
		baseURL = serpAPIBaseURL
	}
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	return &SerpAPIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Name returns the provider name
func (c *SerpAPIClient) Name() string {
	return "serpapi"
}

// Search requests the single top organic result for a query.
func (c *SerpAPIClient) Search(ctx context.Context, query string) (*Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", "1")

	reqURL := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &SearchError{Provider: c.Name(), Query: query, Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SearchError{Provider: c.Name(), Query: query, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SearchError{Provider: c.Name(), Query: query, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &SearchError{
			Provider: c.Name(),
			Query:    query,
			Err:      fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var parsed serpAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &SearchError{Provider: c.Name(), Query: query, Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	if parsed.Error != "" {
		return nil, &SearchError{Provider: c.Name(), Query: query, Err: fmt.Errorf("api error: %s", parsed.Error)}
	}

	if len(parsed.OrganicResults) == 0 {
		return nil, nil
	}

	top := parsed.OrganicResults[0]
	return &Result{
		Title:   top.Title,
		URL:     top.Link,
		Snippet: top.Snippet,
	}, nil
}
