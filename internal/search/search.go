// Package search wraps the web-search collaborator: one query in, at most
// one top result out.
package search

import (
	"context"
	"fmt"
)

// Result is a single search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Searcher defines the interface for search providers.
type Searcher interface {
	// Name returns the provider name
	Name() string

	// Search returns the top result for a query, or nil when the engine
	// finds nothing
	Search(ctx context.Context, query string) (*Result, error)
}

// SearchError wraps a transport, auth, or quota failure from a search provider.
type SearchError struct {
	Provider string
	Query    string
	Err      error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%s search for %q failed: %v", e.Provider, e.Query, e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }
