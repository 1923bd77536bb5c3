package extract

import (
	"reflect"
	"testing"

	"github.com/scourhq/scour/internal/model"
)

func TestNormalizeClaims_BareArray(t *testing.T) {
	parsed, err := JSON(`[{"point": "wind capacity doubled", "date": "2024-03-01"}]`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims := NormalizeClaims(parsed, "")
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if claims[0].Text != "wind capacity doubled" {
		t.Errorf("Expected claim text, got %q", claims[0].Text)
	}
	if claims[0].Date != "2024-03-01" {
		t.Errorf("Expected date 2024-03-01, got %q", claims[0].Date)
	}
}

func TestNormalizeClaims_WrapperEqualsBareArray(t *testing.T) {
	// An object wrapping the payload and the bare payload normalize to
	// identical claim sequences.
	bare, err := JSON(`[{"point": "a fact", "date": "2023-01-01"}, {"point": "another fact"}]`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	wrapped, err := JSON(`{"key_points": [{"point": "a fact", "date": "2023-01-01"}, {"point": "another fact"}]}`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	bareClaims := NormalizeClaims(bare, "")
	wrappedClaims := NormalizeClaims(wrapped, "")

	if !reflect.DeepEqual(bareClaims, wrappedClaims) {
		t.Errorf("Expected identical claims, got %v vs %v", bareClaims, wrappedClaims)
	}
	if len(bareClaims) != 2 {
		t.Fatalf("Expected 2 claims, got %d", len(bareClaims))
	}
	if bareClaims[1].Date != model.DateUndated {
		t.Errorf("Expected undated default, got %q", bareClaims[1].Date)
	}
}

func TestNormalizeClaims_TextSynonyms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`[{"point": "from point"}]`, "from point"},
		{`[{"text": "from text"}]`, "from text"},
		{`[{"summary": "from summary"}]`, "from summary"},
		{`[{"content": "from content"}]`, "from content"},
		{`[{"point": "point wins", "text": "text loses"}]`, "point wins"},
	}

	for _, tc := range cases {
		parsed, err := JSON(tc.raw)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", tc.raw, err)
		}
		claims := NormalizeClaims(parsed, "")
		if len(claims) != 1 {
			t.Fatalf("Expected 1 claim for %s, got %d", tc.raw, len(claims))
		}
		if claims[0].Text != tc.want {
			t.Errorf("Expected %q for %s, got %q", tc.want, tc.raw, claims[0].Text)
		}
	}
}

func TestNormalizeClaims_DateSynonyms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`[{"point": "p", "date": "2024-05-01"}]`, "2024-05-01"},
		{`[{"point": "p", "timestamp": "2024-05-02"}]`, "2024-05-02"},
		{`[{"point": "p", "published_at": "2024-05-03"}]`, "2024-05-03"},
		{`[{"point": "p", "time": "2024-05-04"}]`, "2024-05-04"},
		{`[{"point": "p"}]`, model.DateUndated},
		{`[{"point": "p", "date": "none"}]`, model.DateUndated},
		{`[{"point": "p", "date": "N/A"}]`, model.DateUndated},
		{`[{"point": "p", "date": "recent"}]`, "recent"},
	}

	for _, tc := range cases {
		parsed, err := JSON(tc.raw)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", tc.raw, err)
		}
		claims := NormalizeClaims(parsed, "")
		if len(claims) != 1 {
			t.Fatalf("Expected 1 claim for %s, got %d", tc.raw, len(claims))
		}
		if claims[0].Date != tc.want {
			t.Errorf("Expected date %q for %s, got %q", tc.want, tc.raw, claims[0].Date)
		}
	}
}

func TestNormalizeClaims_StringElements(t *testing.T) {
	parsed, err := JSON(`["a plain claim", "  another one  ", ""]`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims := NormalizeClaims(parsed, "")
	if len(claims) != 2 {
		t.Fatalf("Expected 2 claims (empty dropped), got %d", len(claims))
	}
	if claims[1].Text != "another one" {
		t.Errorf("Expected trimmed text, got %q", claims[1].Text)
	}
	for _, c := range claims {
		if c.Date != model.DateUndated {
			t.Errorf("Expected undated for string element, got %q", c.Date)
		}
	}
}

func TestNormalizeClaims_EmptyTextDropped(t *testing.T) {
	parsed, err := JSON(`[{"point": "   "}, {"date": "2024-01-01"}, {"point": "kept"}]`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims := NormalizeClaims(parsed, "")
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if claims[0].Text != "kept" {
		t.Errorf("Expected kept claim, got %q", claims[0].Text)
	}
}

func TestNormalizeClaims_BulletFallback(t *testing.T) {
	raw := `Here are the findings:
- solar installations rose sharply in 2024
- grid storage remains the main bottleneck`

	claims := NormalizeClaims(nil, raw)
	if len(claims) != 2 {
		t.Fatalf("Expected 2 claims from bullets, got %d", len(claims))
	}
	for _, c := range claims {
		if c.Date != model.DateUndated {
			t.Errorf("Expected undated fallback claims, got %q", c.Date)
		}
	}
}

func TestNormalizeClaims_LooseLineFallback(t *testing.T) {
	// No proper bullets, but enumerated lines without trailing dots still
	// salvage something.
	raw := "1 offshore wind projects doubled since last year\n2 tiny"

	claims := NormalizeClaims(nil, raw)
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim from loose scan, got %d", len(claims))
	}
	if claims[0].Text != "offshore wind projects doubled since last year" {
		t.Errorf("Unexpected claim text %q", claims[0].Text)
	}
}

func TestNormalizeClaims_NothingUsable(t *testing.T) {
	claims := NormalizeClaims(nil, "plain prose with no list structure at all")
	if len(claims) != 0 {
		t.Errorf("Expected no claims, got %v", claims)
	}
}

func TestNormalizeClaims_EmptyParsedArrayFallsBack(t *testing.T) {
	claims := NormalizeClaims([]any{}, "- salvaged from raw text instead")
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}
	if claims[0].Text != "salvaged from raw text instead" {
		t.Errorf("Unexpected claim text %q", claims[0].Text)
	}
}
