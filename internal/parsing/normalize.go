// Package parsing provides text normalization and section segmentation
// for OCR output. Both are pure functions of their input: the same text
// always yields the same lines and the same section buffers.
package parsing

import (
	"regexp"
	"strings"
)

var (
	hyphenBreakRe = regexp.MustCompile(`([A-Za-z])-\n\s*([a-z])`)
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
	pageMarkerRe  = regexp.MustCompile(`(?i)^(--- ?page \d+|page \d+( of \d+)?)\b`)
)

// NormalizeText cleans common OCR artifacts: carriage returns, control
// characters, words hyphenated across line breaks, and runs of
// spaces/tabs. Newlines are preserved so the segmenter sees the
// document's line structure.
func NormalizeText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Drop control characters except newline and tab.
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || r >= 0x20 {
			b.WriteRune(r)
		}
	}
	text = b.String()

	// Re-join words the OCR split across a line break ("co-\nordination").
	text = hyphenBreakRe.ReplaceAllString(text, "$1$2")

	return spaceRunRe.ReplaceAllString(text, " ")
}

// Lines splits normalized text into ordered trimmed lines, dropping
// empties and OCR page markers.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" || pageMarkerRe.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}
