package model

import "strings"

// Sentinel date values used when no concrete date could be determined.
const (
	DateUndated = "undated"
	DateRecent  = "recent"
)

// Claim represents a single dated factual statement extracted from a source.
type Claim struct {
	Text      string `json:"point"`  // Normalized claim statement, trimmed and non-empty
	Date      string `json:"date"`   // ISO date, coarse period label, "recent", or "undated"
	SourceURL string `json:"source"` // URL of the originating Source (lookup only)
}

// Key returns the deduplication key for the claim: lower-cased, trimmed text.
// Claims sharing a key are assumed to restate the same fact.
func (c Claim) Key() string {
	return strings.ToLower(strings.TrimSpace(c.Text))
}

// HasSentinelDate reports whether the claim carries a non-calendar date value.
func (c Claim) HasSentinelDate() bool {
	return c.Date == DateUndated || c.Date == DateRecent
}
