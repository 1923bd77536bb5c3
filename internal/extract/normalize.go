package extract

import (
	"strings"

	"github.com/scourhq/scour/internal/model"
)

// textKeys are the recognized property names for the claim statement,
// probed in this exact order.
var textKeys = []string{"point", "text", "summary", "content"}

// dateKeys are the recognized property names for the claim date.
var dateKeys = []string{"date", "timestamp", "published_at", "time"}

// minLooseItemLen filters noise out of the last-resort line scan.
const minLooseItemLen = 10

// NormalizeClaims maps the output of JSON recovery onto canonical claims.
// The parsed value may be an array of objects or strings, an object wrapping
// such an array under a recognized property name, or nothing usable at all —
// in which case the raw text is segmented into bullets, then loosely scanned
// line by line. Elements with empty claim text after trimming are dropped.
// SourceURL is left for the caller to stamp.
func NormalizeClaims(parsed any, raw string) []model.Claim {
	elements := payloadArray(parsed)

	if len(elements) == 0 {
		for _, s := range fallbackItems(raw) {
			elements = append(elements, s)
		}
	}

	claims := make([]model.Claim, 0, len(elements))
	for _, el := range elements {
		if c, ok := normalizeElement(el); ok {
			claims = append(claims, c)
		}
	}
	return claims
}

// payloadArray extracts the element array from a parsed value, probing
// wrapper objects for recognized array properties.
func payloadArray(parsed any) []any {
	switch v := parsed.(type) {
	case []any:
		if len(v) > 0 {
			return v
		}
	case map[string]any:
		for _, key := range arrayKeys {
			if arr, ok := v[key].([]any); ok && len(arr) > 0 {
				return arr
			}
		}
	}
	return nil
}

func fallbackItems(raw string) []string {
	if items := Bullets(raw); len(items) > 0 {
		return items
	}
	return LooseLines(raw, minLooseItemLen)
}

// normalizeElement maps one array element onto a claim. Plain strings become
// undated claims; objects are probed for recognized text and date keys.
func normalizeElement(el any) (model.Claim, bool) {
	switch v := el.(type) {
	case string:
		text := strings.TrimSpace(v)
		if text == "" {
			return model.Claim{}, false
		}
		return model.Claim{Text: text, Date: model.DateUndated}, true

	case map[string]any:
		var text string
		for _, key := range textKeys {
			if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
				text = strings.TrimSpace(s)
				break
			}
		}
		if text == "" {
			return model.Claim{}, false
		}
		return model.Claim{Text: text, Date: normalizeDate(v)}, true
	}
	return model.Claim{}, false
}

// normalizeDate probes the recognized date keys and maps "nothing found"
// sentinels onto the undated sentinel.
func normalizeDate(obj map[string]any) string {
	for _, key := range dateKeys {
		s, ok := obj[key].(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		switch strings.ToLower(s) {
		case "none", "n/a", "unknown", "no date":
			return model.DateUndated
		}
		return s
	}
	return model.DateUndated
}
