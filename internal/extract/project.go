package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/types"
)

var (
	projectLabelRe  = regexp.MustCompile(`(?i)^project(?:\s+name)?[:\s]\s*(.+)$`)
	siteLabelRe     = regexp.MustCompile(`(?i)^(?:location|site)[:\s]\s*(.+)$`)
	roleLabelRe     = regexp.MustCompile(`(?i)^(?:role|position)[:\s]\s*(.+)$`)
	durationLabelRe = regexp.MustCompile(`(?i)^duration[:\s]\s*(.+)$`)

	ordinalPrefixRe = regexp.MustCompile(`^\d+\s*[.)]\s*`)
	bulletPrefixRe  = regexp.MustCompile(`^[-•●*]\s*`)

	// NAME — TYPE, LOCATION header form. The separator may be an em/en
	// dash or a spaced hyphen.
	headerPatternRe = regexp.MustCompile(`^(.{3,}?)\s+[—–-]\s+(.+?),\s*(.+)$`)
)

// ProjectExtraction is the outcome of scanning one projects buffer.
// DiscardedBlocks counts candidate blocks that failed validation; they
// are dropped silently, never surfaced as errors.
type ProjectExtraction struct {
	Projects        []types.Project
	DiscardedBlocks int
}

// ExtractProjects identifies project blocks in the buffer and recovers
// their fields. insideProjectsSection widens block detection to numbered
// list items, which are only trustworthy inside an announced PROJECTS
// section.
func ExtractProjects(lines []string, lex lexicon.Lexicons, insideProjectsSection bool) ProjectExtraction {
	starts := make([]int, 0, len(lines))
	for i, line := range lines {
		if isProjectBlockStart(line, lex, insideProjectsSection) {
			starts = append(starts, i)
		}
	}

	var result ProjectExtraction
	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		project := parseProjectBlock(lines[start:end], lex)
		if validateProject(project, lex.FalsePositiveNames) {
			result.Projects = append(result.Projects, project)
		} else {
			result.DiscardedBlocks++
		}
	}
	return result
}

// isProjectBlockStart applies the three detection rules: a domain
// keyword paired with a gazetteer hit or header pattern, an explicit
// Project: label, or a numbered item inside a PROJECTS buffer.
func isProjectBlockStart(line string, lex lexicon.Lexicons, insideProjectsSection bool) bool {
	if projectLabelRe.MatchString(line) {
		return true
	}
	// Site, role and duration labels belong to the current block even
	// when their value trips the gazetteer. So do responsibility bullets
	// that happen to mention a site.
	if isLabelLine(line) || bulletPrefixRe.MatchString(line) {
		return false
	}
	stripped := ordinalPrefixRe.ReplaceAllString(line, "")
	if insideProjectsSection && stripped != line && len(strings.Fields(stripped)) >= 2 {
		return true
	}
	if lexicon.ContainsTerm(line, lex.BuildingTypes) {
		if lexicon.ContainsTerm(line, lex.Locations) || headerPatternRe.MatchString(line) {
			return true
		}
	}
	return false
}

// parseProjectBlock recovers each field through its ordered pattern
// list; the first successful pattern wins and no backtracking occurs.
func parseProjectBlock(block []string, lex lexicon.Lexicons) types.Project {
	var p types.Project

	p.Name = firstMatch(block,
		nameFromLabel,
		nameFromHeaderPattern,
		nameFromCapitalizedLine,
	)
	p.SiteName = extractSite(block, lex)
	p.Role = extractRole(block, p.Name, lex)
	p.DurationStart, p.DurationEnd = extractDuration(block)
	p.Responsibilities = extractResponsibilities(block, lex.ActionVerbs)
	return p
}

// fieldPattern is one pure text->field attempt in a priority list.
type fieldPattern func(block []string) (string, bool)

func firstMatch(block []string, patterns ...fieldPattern) string {
	for _, pattern := range patterns {
		if value, ok := pattern(block); ok {
			return value
		}
	}
	return ""
}

func nameFromLabel(block []string) (string, bool) {
	for _, line := range block {
		if m := projectLabelRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

func nameFromHeaderPattern(block []string) (string, bool) {
	line := ordinalPrefixRe.ReplaceAllString(block[0], "")
	if m := headerPatternRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// nameFromCapitalizedLine accepts the first line whose leading token is
// capitalized and whose length is inside the 3-15 word detection bound.
func nameFromCapitalizedLine(block []string) (string, bool) {
	for _, raw := range block {
		line := ordinalPrefixRe.ReplaceAllString(raw, "")
		if bulletPrefixRe.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 3 || len(words) > 15 {
			continue
		}
		first := words[0][0]
		if first >= 'A' && first <= 'Z' {
			return line, true
		}
	}
	return "", false
}

// extractSite recovers the site through the priority list: explicit
// label, gazetteer hit with forward-scan parenthesis balancing, then a
// contextual City, Country token.
func extractSite(block []string, lex lexicon.Lexicons) string {
	for i, line := range block {
		if m := siteLabelRe.FindStringSubmatch(line); m != nil {
			return normalizeSite(balanceParens(strings.TrimSpace(m[1]), block[i+1:]))
		}
	}
	for i, line := range block[1:] {
		// Labels were already handled by the siteLabelRe pass; a Role: or
		// Duration: value mentioning a site must not become the site.
		if bulletPrefixRe.MatchString(line) || isLabelLine(line) {
			continue
		}
		if lexicon.ContainsTerm(line, lex.Locations) {
			return normalizeSite(balanceParens(line, block[i+2:]))
		}
	}
	for _, line := range block {
		if m := cityCountryRe.FindStringSubmatch(line); m != nil {
			return m[1] + ", " + m[2]
		}
	}
	return ""
}

// balanceParens continues consuming lines while the site fragment has an
// unmatched opening parenthesis, concatenating until balance or a hard
// boundary (bullet line, label line, or end of block).
func balanceParens(fragment string, rest []string) string {
	for _, line := range rest {
		if parenDepth(fragment) <= 0 {
			break
		}
		if bulletPrefixRe.MatchString(line) || isLabelLine(line) {
			break
		}
		fragment += " " + line
	}
	return fragment
}

func parenDepth(s string) int {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth
}

func isLabelLine(line string) bool {
	return projectLabelRe.MatchString(line) || siteLabelRe.MatchString(line) ||
		roleLabelRe.MatchString(line) || durationLabelRe.MatchString(line)
}

func normalizeSite(site string) string {
	site = spaceRunFold(site)
	return strings.Trim(site, " ,")
}

func spaceRunFold(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// extractRole prefers an explicit label, then a standalone line of 2-7
// words that is not a bullet, does not open with an action verb and
// does not look like a degree line.
func extractRole(block []string, name string, lex lexicon.Lexicons) string {
	for _, line := range block {
		if m := roleLabelRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	for _, raw := range block {
		line := strings.TrimSpace(raw)
		if line == "" || line == name || bulletPrefixRe.MatchString(line) {
			continue
		}
		if containsDateRange(line) || isLabelLine(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 7 {
			continue
		}
		first := strings.ToLower(words[0])
		if containsWord(lex.ActionVerbs, first) {
			continue
		}
		if lexicon.ContainsTerm(line, lex.FalsePositiveNames) {
			continue
		}
		// Roles are title-ish lines; require a role-like keyword so
		// ordinary prose does not qualify.
		if containsAnyToken(strings.ToLower(line), roleKeywords) {
			return line
		}
	}
	return ""
}

func containsWord(words []string, target string) bool {
	for _, w := range words {
		if strings.EqualFold(w, target) {
			return true
		}
	}
	return false
}

// extractDuration applies the duration priority list across the block:
// explicit label, full date range, bare year range, then a single bare
// year which sets both markers.
func extractDuration(block []string) (start, end string) {
	for _, line := range block {
		if m := durationLabelRe.FindStringSubmatch(line); m != nil {
			if s, e, ok := parseDateRange(m[1]); ok {
				return s, e
			}
		}
	}
	for _, line := range block {
		if isLabelLine(line) {
			continue
		}
		if m := dateRangeRe.FindStringSubmatch(line); m != nil {
			return canonicalDate(m[1]), canonicalDate(m[2])
		}
		if m := hybridRangeRe.FindStringSubmatch(line); m != nil {
			return canonicalDate(m[1]), canonicalDate(m[2])
		}
	}
	for _, line := range block {
		if isLabelLine(line) {
			continue
		}
		if m := yearRangeRe.FindStringSubmatch(line); m != nil {
			return m[1], m[2]
		}
	}
	for _, line := range block {
		if isLabelLine(line) || bulletPrefixRe.MatchString(line) {
			continue
		}
		if m := bareYearRe.FindStringSubmatch(line); m != nil {
			// A lone year closes on itself unless a range said otherwise.
			return m[1], m[1]
		}
	}
	return "", ""
}

// extractResponsibilities collects bullet lines and long sentences that
// open with a past-tense action verb, stripping bullet/ordinal tokens
// and dropping duplicates while preserving first-seen order.
func extractResponsibilities(block []string, actionVerbs []string) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		key := strings.ToLower(line)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, line)
	}

	for _, raw := range block {
		line := strings.TrimSpace(raw)
		if bulletPrefixRe.MatchString(line) {
			add(bulletPrefixRe.ReplaceAllString(line, ""))
			continue
		}
		stripped := ordinalPrefixRe.ReplaceAllString(line, "")
		words := strings.Fields(stripped)
		if len(words) >= 8 && containsWord(actionVerbs, words[0]) {
			add(stripped)
		}
	}
	return out
}

// validateProject applies the acceptance invariant: a usable name that
// is not a known false positive, plus at least one supporting field.
func validateProject(p types.Project, falsePositives []string) bool {
	if p.Name == "" {
		return false
	}
	words := len(strings.Fields(p.Name))
	if words < 2 || words > 25 {
		return false
	}
	if lexicon.ContainsTerm(p.Name, falsePositives) {
		return false
	}
	if p.SiteName == "" && p.Role == "" && p.DurationStart == "" && len(p.Responsibilities) == 0 {
		return false
	}
	return true
}
