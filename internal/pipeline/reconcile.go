package pipeline

import (
	"github.com/araddon/dateparse"

	"github.com/scourhq/scour/internal/model"
)

// reconcile deduplicates the claim pool down to one survivor per key,
// preferring the most recent verifiably-dated restatement of each fact.
// Iteration follows pool order, so the output is deterministic given a
// deterministic pool; survivors are returned in first-seen key order.
//
// Merge policy when a key is already occupied:
//   - a sentinel-dated newcomer ("undated"/"recent") never replaces the
//     resident; sentinels only win an empty slot
//   - a concretely-dated newcomer replaces a sentinel-dated resident
//     unconditionally
//   - with two concrete dates the strictly later one wins; if either date
//     fails to parse the resident stays — keep what we have rather than guess
//
// Matching is exact on the normalized key. Paraphrased restatements of the
// same fact do not merge; that is a known precision limitation, not a bug.
func reconcile(pool []model.Claim) []model.Claim {
	byKey := make(map[string]int, len(pool))
	var reconciled []model.Claim

	for _, claim := range pool {
		key := claim.Key()
		if key == "" {
			continue
		}

		idx, exists := byKey[key]
		if !exists {
			byKey[key] = len(reconciled)
			reconciled = append(reconciled, claim)
			continue
		}

		if supersedes(claim, reconciled[idx]) {
			reconciled[idx] = claim
		}
	}

	return reconciled
}

// supersedes reports whether the newcomer should replace the resident claim
// occupying the same key.
func supersedes(newcomer, resident model.Claim) bool {
	if newcomer.HasSentinelDate() {
		return false
	}
	if resident.HasSentinelDate() {
		return true
	}

	newDate, err := dateparse.ParseAny(newcomer.Date)
	if err != nil {
		return false
	}
	residentDate, err := dateparse.ParseAny(resident.Date)
	if err != nil {
		return false
	}

	return newDate.After(residentDate)
}
