package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// MalformedDataError indicates that every recovery strategy failed to find a
// parseable JSON value in a text blob.
type MalformedDataError struct {
	Excerpt string // Short excerpt of the offending text for diagnostics
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("no valid JSON found in response: %q", e.Excerpt)
}

// arrayKeys are the recognized property names an object may use to wrap its
// payload array. Probed in this exact order.
var arrayKeys = []string{
	"points", "key_points", "keyPoints", "items",
	"data", "results", "extracted_points", "extractedPoints",
}

var fencedBlockRe = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")

// JSON recovers a JSON value from model output that may be wrapped in prose,
// markdown fences, or stray text. Strategies are attempted in a fixed order
// and the first success wins; none of them ever invents data, they only
// narrow the search window:
//
//  1. parse the trimmed text directly
//  2. parse the contents of a fenced code block
//  3. parse the substring from the first '[' to the last ']'
//  4. parse the substring from the first '{' to the last '}'; if the object
//     wraps its payload in a recognized array property, return that array
//  5. strip everything before the first bracket and after the last, retry
//
// Exhausting all strategies returns a *MalformedDataError.
func JSON(text string) (any, error) {
	trimmed := strings.TrimSpace(text)

	if v, err := decode(trimmed); err == nil {
		return v, nil
	}

	if m := fencedBlockRe.FindStringSubmatch(trimmed); m != nil {
		if v, err := decode(strings.TrimSpace(m[1])); err == nil {
			return v, nil
		}
	}

	if inner, ok := bracketSpan(trimmed, '[', ']'); ok {
		if v, err := decode(inner); err == nil {
			return v, nil
		}
	}

	if inner, ok := bracketSpan(trimmed, '{', '}'); ok {
		if v, err := decode(inner); err == nil {
			return unwrapArray(v), nil
		}
	}

	if inner, ok := stripSurrounding(trimmed); ok {
		if v, err := decode(inner); err == nil {
			return v, nil
		}
	}

	return nil, &MalformedDataError{Excerpt: excerpt(trimmed)}
}

func decode(s string) (any, error) {
	if s == "" {
		return nil, fmt.Errorf("empty input")
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// unwrapArray returns the first recognized array-valued property of an
// object, or the value unchanged.
func unwrapArray(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return v
	}
	for _, key := range arrayKeys {
		if arr, ok := obj[key].([]any); ok {
			return arr
		}
	}
	return v
}

// bracketSpan returns the substring from the first open bracket to the last
// close bracket, if both exist in that order.
func bracketSpan(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// stripSurrounding drops leading characters before the first '['/'{' and
// trailing characters after the last ']'/'}'.
func stripSurrounding(s string) (string, bool) {
	start := strings.IndexAny(s, "[{")
	end := strings.LastIndexAny(s, "]}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func excerpt(s string) string {
	const max = 120
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
