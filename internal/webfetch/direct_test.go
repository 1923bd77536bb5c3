package webfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scourhq/scour/internal/model"
)

func testFetchConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.RateLimiting.RequestsPerSecond = 100
	cfg.RateLimiting.BurstSize = 100
	return cfg
}

func TestDirectFetcher_Fetch_Success(t *testing.T) {
	page := "<html><body><p>direct page body</p></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			w.WriteHeader(http.StatusNotFound)
		case "/page":
			if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Scour") {
				t.Errorf("Expected Scour user agent, got %q", ua)
			}
			_, _ = w.Write([]byte(page))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	f := NewDirectFetcher(testFetchConfig())
	got, err := f.Fetch(context.Background(), server.URL+"/page")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got != page {
		t.Errorf("Unexpected body: %q", got)
	}
}

func TestDirectFetcher_Fetch_RobotsDisallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		_, _ = w.Write([]byte("should not be reached"))
	}))
	defer server.Close()

	f := NewDirectFetcher(testFetchConfig())
	_, err := f.Fetch(context.Background(), server.URL+"/private/page")
	if err == nil {
		t.Fatal("Expected robots.txt denial, got nil")
	}
	if !strings.Contains(err.Error(), "robots.txt") {
		t.Errorf("Expected robots error, got %v", err)
	}
}

func TestDirectFetcher_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewDirectFetcher(testFetchConfig())
	_, err := f.Fetch(context.Background(), server.URL+"/broken")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if _, ok := err.(*FetchError); !ok {
		t.Errorf("Expected FetchError, got %T", err)
	}
}

func TestDirectFetcher_Fetch_BodySizeCapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer server.Close()

	cfg := testFetchConfig()
	cfg.HTTP.MaxBodyBytes = 100

	f := NewDirectFetcher(cfg)
	got, err := f.Fetch(context.Background(), server.URL+"/big")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 100 {
		t.Errorf("Expected body capped at 100 bytes, got %d", len(got))
	}
}

func TestDirectFetcher_Fetch_CacheHit(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		requests++
		_, _ = w.Write([]byte("cached page body"))
	}))
	defer server.Close()

	cfg := testFetchConfig()
	cfg.Cache.Enabled = true

	f := NewDirectFetcher(cfg)
	for i := 0; i < 2; i++ {
		got, err := f.Fetch(context.Background(), server.URL+"/page")
		if err != nil {
			t.Fatalf("Fetch %d failed: %v", i, err)
		}
		if got != "cached page body" {
			t.Errorf("Unexpected body on fetch %d: %q", i, got)
		}
	}

	if requests != 1 {
		t.Errorf("Expected 1 origin request, got %d", requests)
	}
}
