package model

// Source represents a single retrieved document candidate for one research run.
// Content stays empty until the fetch step succeeds; a source with empty
// content is skipped by claim extraction but still counts toward the source
// total reported to the caller.
type Source struct {
	URL     string `json:"url"`               // Unique within a run
	Title   string `json:"title"`             // Search-result title
	Snippet string `json:"snippet,omitempty"` // Search-engine preview, may be empty
	Content string `json:"content,omitempty"` // Cleaned full-text body
}
