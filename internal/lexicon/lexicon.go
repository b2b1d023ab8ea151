// Package lexicon provides the configured term sets consumed by the
// extractors and the section segmenter. Lexicons are read-only after
// construction; callers own their lifecycle and may reload between runs.
package lexicon

import "strings"

// Lexicons bundles the named term sets. All matching against them is
// case-insensitive; display casing is taken from the lexicon entry.
type Lexicons struct {
	Skills             []string            `json:"skills"`
	Tools              []string            `json:"tools"`
	Locations          []string            `json:"locations"`
	BuildingTypes      []string            `json:"building_types"`
	FalsePositiveNames []string            `json:"false_positive_names"`
	RoleEquivalents    map[string][]string `json:"role_equivalents,omitempty"`
	GCCKeywords        []string            `json:"gcc_keywords,omitempty"`
	ActionVerbs        []string            `json:"action_verbs,omitempty"`
}

// ContainsTerm reports whether any of the terms occurs in the line,
// case-insensitively, as a plain substring.
func ContainsTerm(line string, terms []string) bool {
	return FindTerm(line, terms) != ""
}

// FindTerm returns the first term (in lexicon order) occurring in the
// line, preserving the lexicon's casing, or the empty string.
func FindTerm(line string, terms []string) string {
	lower := strings.ToLower(line)
	for _, t := range terms {
		if t == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(t)) {
			return t
		}
	}
	return ""
}

// Merge overlays non-empty sets from other onto a copy of l. Used when a
// configuration file supplies only some of the named lexicons.
func (l Lexicons) Merge(other Lexicons) Lexicons {
	out := l
	if len(other.Skills) > 0 {
		out.Skills = other.Skills
	}
	if len(other.Tools) > 0 {
		out.Tools = other.Tools
	}
	if len(other.Locations) > 0 {
		out.Locations = other.Locations
	}
	if len(other.BuildingTypes) > 0 {
		out.BuildingTypes = other.BuildingTypes
	}
	if len(other.FalsePositiveNames) > 0 {
		out.FalsePositiveNames = other.FalsePositiveNames
	}
	if len(other.RoleEquivalents) > 0 {
		out.RoleEquivalents = other.RoleEquivalents
	}
	if len(other.GCCKeywords) > 0 {
		out.GCCKeywords = other.GCCKeywords
	}
	if len(other.ActionVerbs) > 0 {
		out.ActionVerbs = other.ActionVerbs
	}
	return out
}
