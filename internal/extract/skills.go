package extract

import (
	"regexp"
	"sort"
	"strings"
)

// MatchTerms matches every lexicon term against the full normalized text
// using case-insensitive word-boundary matching, returning the matched
// terms in the lexicon's display casing, sorted for determinism.
func MatchTerms(text string, terms []string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{}, len(terms))
	var found []string

	for _, term := range terms {
		t := strings.TrimSpace(term)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, dup := seen[key]; dup {
			continue
		}
		if termBoundaryRe(key).MatchString(lower) {
			seen[key] = struct{}{}
			found = append(found, t)
		}
	}

	sort.Strings(found)
	return found
}

// termBoundaryRe builds a word-boundary pattern for one lowercase term.
// Terms ending in a non-word rune (like "c++" or "g+") cannot use \b on
// the right, so the boundary degrades to end-of-token matching.
func termBoundaryRe(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(term)
	left, right := `\b`, `\b`
	if !isWordRune(rune(term[0])) {
		left = ``
	}
	if !isWordRune(rune(term[len(term)-1])) {
		right = `(?:\s|$|[,.;)])`
	}
	return regexp.MustCompile(left + quoted + right)
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
