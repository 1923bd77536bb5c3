package extract

import (
	"regexp"
	"strings"
)

// markerRe matches a bullet marker (dash, asterisk, bullet glyph, plus) or a
// short enumerator (1-3 digits or a letter followed by '.' or ')') at the
// start of a line, capturing the rest of the line.
var markerRe = regexp.MustCompile(`^\s*(?:[-*•+]|[0-9]{1,3}[.)]|[A-Za-z][.)])\s+(.*)$`)

// Bullets heuristically segments free text into discrete items. A marker-led
// line starts a new item; subsequent non-blank, non-marker lines are treated
// as soft-wrap continuations and joined with a space; a blank line closes the
// current item. Never fails: input without markers yields no items.
func Bullets(text string) []string {
	if text == "" {
		return nil
	}

	var items []string
	var current string

	flush := func() {
		if s := strings.TrimSpace(current); s != "" {
			items = append(items, s)
		}
		current = ""
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if m := markerRe.FindStringSubmatch(line); m != nil {
			flush()
			current = strings.TrimSpace(m[1])
		} else if strings.TrimSpace(line) != "" {
			if current != "" {
				current += " " + strings.TrimSpace(line)
			}
		} else {
			flush()
		}
	}
	flush()

	return items
}

// looseMarkerRe matches lines that merely begin with something list-like: a
// digit enumerator, dash, bullet glyph, asterisk, or a letter-paren marker.
var looseMarkerRe = regexp.MustCompile(`^\s*(?:[0-9]{1,3}[.)]?|[-•*]|[A-Za-z]\))\s*`)

// LooseLines is the last-resort segmentation used when neither structured
// data nor proper bullets exist. Lines that begin with a loose marker
// survive with the marker stripped; anything shorter than minLen is
// discarded as noise.
func LooseLines(text string, minLen int) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		loc := looseMarkerRe.FindStringIndex(line)
		if loc == nil || loc[1] == 0 {
			continue
		}
		trimmed := strings.TrimSpace(line[loc[1]:])
		if len(trimmed) < minLen {
			continue
		}
		items = append(items, trimmed)
	}
	return items
}
