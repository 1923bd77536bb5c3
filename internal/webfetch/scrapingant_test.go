package webfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestScrapingAntClient_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("url") != "https://example.com/article" {
			t.Errorf("Expected url param, got %q", q.Get("url"))
		}
		if q.Get("x-api-key") != "test-key" {
			t.Errorf("Expected x-api-key param, got %q", q.Get("x-api-key"))
		}
		if q.Get("browser") != "false" {
			t.Errorf("Expected browser=false, got %q", q.Get("browser"))
		}

		_, _ = w.Write([]byte(`{"content": "<html><body><p>article body</p></body></html>"}`))
	}))
	defer server.Close()

	client, err := NewScrapingAntClient("test-key", server.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	got, err := client.Fetch(context.Background(), "https://example.com/article")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got != "<html><body><p>article body</p></body></html>" {
		t.Errorf("Unexpected content: %q", got)
	}
}

func TestScrapingAntClient_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail": "wrong api key"}`))
	}))
	defer server.Close()

	client, err := NewScrapingAntClient("bad-key", server.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = client.Fetch(context.Background(), "https://example.com")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if _, ok := err.(*FetchError); !ok {
		t.Errorf("Expected FetchError, got %T", err)
	}
}

func TestScrapingAntClient_Fetch_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{malformed`))
	}))
	defer server.Close()

	client, err := NewScrapingAntClient("test-key", server.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = client.Fetch(context.Background(), "https://example.com")
	if err == nil {
		t.Fatal("Expected error for malformed JSON, got nil")
	}
}

func TestScrapingAntClient_RequiresAPIKey(t *testing.T) {
	_, err := NewScrapingAntClient("", "", 0)
	if err == nil {
		t.Fatal("Expected error without API key")
	}
}

func TestNewFetcher_Selection(t *testing.T) {
	cfg := testFetchConfig()

	cfg.Fetch.Provider = "direct"
	f, err := NewFetcher(cfg)
	if err != nil {
		t.Fatalf("Expected direct fetcher, got %v", err)
	}
	if f.Name() != "direct" {
		t.Errorf("Expected direct, got %s", f.Name())
	}

	cfg.Fetch.Provider = "scrapingant"
	cfg.Fetch.APIKey = "test-key"
	f, err = NewFetcher(cfg)
	if err != nil {
		t.Fatalf("Expected scrapingant fetcher, got %v", err)
	}
	if f.Name() != "scrapingant" {
		t.Errorf("Expected scrapingant, got %s", f.Name())
	}

	cfg.Fetch.Provider = "nonsense"
	if _, err := NewFetcher(cfg); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
