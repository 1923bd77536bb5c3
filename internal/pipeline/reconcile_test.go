package pipeline

import (
	"reflect"
	"testing"

	"github.com/scourhq/scour/internal/model"
)

func TestReconcile_LaterDateWins(t *testing.T) {
	pool := []model.Claim{
		{Text: "solar capacity reached 100GW", Date: "2024-01-01", SourceURL: "https://a.example"},
		{Text: "solar capacity reached 100GW", Date: "2024-06-01", SourceURL: "https://b.example"},
	}

	got := reconcile(pool)
	if len(got) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(got))
	}
	if got[0].Date != "2024-06-01" {
		t.Errorf("Expected later date to win, got %q", got[0].Date)
	}
	if got[0].SourceURL != "https://b.example" {
		t.Errorf("Expected winning claim's source, got %q", got[0].SourceURL)
	}
}

func TestReconcile_EarlierDateLoses(t *testing.T) {
	pool := []model.Claim{
		{Text: "fact", Date: "2024-06-01"},
		{Text: "fact", Date: "2024-01-01"},
	}

	got := reconcile(pool)
	if len(got) != 1 || got[0].Date != "2024-06-01" {
		t.Errorf("Expected resident with later date to survive, got %v", got)
	}
}

func TestReconcile_ConcreteBeatsSentinel(t *testing.T) {
	// Order must not matter: the concretely dated claim wins either way.
	cases := [][]model.Claim{
		{{Text: "fact", Date: model.DateUndated}, {Text: "fact", Date: "2023-05-01"}},
		{{Text: "fact", Date: "2023-05-01"}, {Text: "fact", Date: model.DateUndated}},
		{{Text: "fact", Date: model.DateRecent}, {Text: "fact", Date: "2023-05-01"}},
		{{Text: "fact", Date: "2023-05-01"}, {Text: "fact", Date: model.DateRecent}},
	}

	for i, pool := range cases {
		got := reconcile(pool)
		if len(got) != 1 {
			t.Fatalf("case %d: expected 1 claim, got %d", i, len(got))
		}
		if got[0].Date != "2023-05-01" {
			t.Errorf("case %d: expected concrete date to win, got %q", i, got[0].Date)
		}
	}
}

func TestReconcile_SentinelNeverReplacesSentinel(t *testing.T) {
	pool := []model.Claim{
		{Text: "fact", Date: model.DateUndated, SourceURL: "https://first.example"},
		{Text: "fact", Date: model.DateRecent, SourceURL: "https://second.example"},
	}

	got := reconcile(pool)
	if len(got) != 1 || got[0].SourceURL != "https://first.example" {
		t.Errorf("Expected first resident kept, got %v", got)
	}
}

func TestReconcile_UnparsableDateKeepsResident(t *testing.T) {
	pool := []model.Claim{
		{Text: "fact", Date: "2024-01-01"},
		{Text: "fact", Date: "sometime last spring"},
	}

	got := reconcile(pool)
	if len(got) != 1 || got[0].Date != "2024-01-01" {
		t.Errorf("Expected resident kept on unparsable newcomer, got %v", got)
	}

	// Resident unparsable too: still no replacement.
	pool = []model.Claim{
		{Text: "fact", Date: "circa the nineties"},
		{Text: "fact", Date: "2024-01-01"},
	}
	got = reconcile(pool)
	if len(got) != 1 || got[0].Date != "circa the nineties" {
		t.Errorf("Expected resident kept when its date is unparsable, got %v", got)
	}
}

func TestReconcile_KeyIsCaseAndSpaceInsensitive(t *testing.T) {
	pool := []model.Claim{
		{Text: "  Wind Power Is Growing  ", Date: model.DateUndated},
		{Text: "wind power is growing", Date: "2024-02-02"},
	}

	got := reconcile(pool)
	if len(got) != 1 {
		t.Fatalf("Expected variants to collapse to 1 claim, got %d", len(got))
	}
	if got[0].Date != "2024-02-02" {
		t.Errorf("Expected dated variant to win, got %q", got[0].Date)
	}
}

func TestReconcile_PreservesFirstSeenOrder(t *testing.T) {
	pool := []model.Claim{
		{Text: "alpha", Date: model.DateUndated},
		{Text: "beta", Date: model.DateUndated},
		{Text: "alpha", Date: "2024-03-03"},
		{Text: "gamma", Date: model.DateUndated},
	}

	got := reconcile(pool)
	var texts []string
	for _, c := range got {
		texts = append(texts, c.Text)
	}
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("Expected order %v, got %v", want, texts)
	}
	if got[0].Date != "2024-03-03" {
		t.Errorf("Expected alpha upgraded in place, got %q", got[0].Date)
	}
}

func TestReconcile_EmptyKeySkipped(t *testing.T) {
	pool := []model.Claim{
		{Text: "   ", Date: "2024-01-01"},
		{Text: "real claim", Date: model.DateUndated},
	}

	got := reconcile(pool)
	if len(got) != 1 || got[0].Text != "real claim" {
		t.Errorf("Expected blank-text claim dropped, got %v", got)
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	pool := []model.Claim{
		{Text: "a", Date: "2024-01-01"},
		{Text: "a", Date: "2024-06-01"},
		{Text: "b", Date: model.DateUndated},
	}

	once := reconcile(pool)
	twice := reconcile(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Expected reconcile to be idempotent, got %v then %v", once, twice)
	}
}

func TestReconcile_Empty(t *testing.T) {
	if got := reconcile(nil); len(got) != 0 {
		t.Errorf("Expected no claims, got %v", got)
	}
}
