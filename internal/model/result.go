package model

import "time"

// Result is the externally visible output of one research run. It is created
// once per invocation and never mutated afterwards; persistence is the
// caller's concern.
type Result struct {
	Prompt      string    `json:"prompt"`       // Original research prompt
	Queries     []string  `json:"queries"`      // Generated search queries (run context)
	EvidenceMD  string    `json:"evidence_md"`  // Evidence log markdown
	SummaryMD   string    `json:"summary_md"`   // Narrative summary markdown
	SourceCount int       `json:"source_count"` // Sources found (fetched or not)
	ClaimCount  int       `json:"claim_count"`  // Claims surviving reconciliation
	StartedAt   time.Time `json:"started_at"`
}
