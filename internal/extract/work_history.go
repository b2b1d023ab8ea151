package extract

import (
	"strings"
	"time"

	"github.com/jonathan/cv-screener/internal/types"
)

// roleKeywords identify job-title lines inside experience blocks.
var roleKeywords = []string{
	"engineer", "manager", "modeler", "technician", "designer",
	"supervisor", "coordinator", "specialist", "architect", "draftsman",
	"developer", "consultant", "analyst", "lead",
}

// companyKeywords identify company-name lines.
var companyKeywords = []string{
	"llc", "ltd", "private", "pvt", "consult", "consultancy", "contracting",
	"engineering", "infrastructure", "services", "global", "solutions",
	"group", "international", "company",
}

// ExtractWorkHistory splits the experience buffer into employment blocks
// and recovers title, company, dates and description for each. A block
// begins at a line carrying a date range, or at a mixed-format header
// ("Role | Company") containing a role keyword. Blocks without a start
// date are dropped. now anchors open-ended entries.
func ExtractWorkHistory(lines []string, now time.Time) []types.WorkHistoryEntry {
	blocks := splitWorkBlocks(lines)

	entries := make([]types.WorkHistoryEntry, 0, len(blocks))
	for _, block := range blocks {
		entry := parseWorkBlock(block, now)
		if entry.StartDate != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// splitWorkBlocks opens a new block at every mixed-format header line.
// A date-range line also opens one, but only when the current block
// already carries a date, so a header is never severed from the date
// line beneath it.
func splitWorkBlocks(lines []string) [][]string {
	var blocks [][]string
	var current []string
	currentHasDate := false

	for _, line := range lines {
		isDate := containsDateRange(line)
		if len(current) > 0 && (isWorkHeader(line) || (isDate && currentHasDate)) {
			blocks = append(blocks, current)
			current = nil
			currentHasDate = false
		}
		current = append(current, line)
		if isDate {
			currentHasDate = true
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func isWorkHeader(line string) bool {
	mixedFormat := strings.Contains(line, "|") ||
		strings.Contains(line, " - ") || strings.Contains(line, " — ")
	return mixedFormat && !containsDateRange(line) &&
		containsAnyToken(strings.ToLower(line), roleKeywords)
}

func parseWorkBlock(block []string, now time.Time) types.WorkHistoryEntry {
	var entry types.WorkHistoryEntry

	// Mixed-format header: "Job Title | Company".
	header := block[0]
	pipeHeader := false
	if left, right, found := strings.Cut(header, "|"); found {
		entry.JobTitle = strings.TrimSpace(left)
		entry.Company = strings.TrimSpace(stripDateRange(right))
		pipeHeader = true
	}

	scan := min(len(block), 3)

	if entry.JobTitle == "" {
		for _, line := range block[:scan] {
			lower := strings.ToLower(line)
			if containsAnyToken(lower, roleKeywords) && len(strings.Fields(line)) <= 7 {
				entry.JobTitle = strings.TrimSpace(stripDateRange(line))
				break
			}
		}
	}

	if entry.Company == "" {
		for _, line := range block[:scan] {
			if line == entry.JobTitle {
				continue
			}
			if containsAnyToken(strings.ToLower(line), companyKeywords) {
				entry.Company = strings.TrimSpace(stripDateRange(line))
				break
			}
		}
	}

	for _, line := range block[:scan] {
		if start, end, ok := parseDateRange(line); ok {
			entry.StartDate = start
			entry.EndDate = end
			entry.DurationMonths = durationMonths(start, end, now)
			break
		}
	}

	for _, line := range block {
		if m := cityCountryRe.FindStringSubmatch(line); m != nil {
			entry.Location = m[1] + ", " + m[2]
			break
		}
	}

	for i, line := range block {
		if i == 0 && pipeHeader {
			continue
		}
		if containsDateRange(line) {
			continue
		}
		if line == entry.JobTitle || line == entry.Company {
			continue
		}
		if len(strings.Fields(line)) >= 6 {
			entry.Description = append(entry.Description, line)
		}
	}

	return entry
}

// stripDateRange removes an inline date range from a header line so the
// remaining text can serve as a title or company name.
func stripDateRange(line string) string {
	line = dateRangeRe.ReplaceAllString(line, "")
	line = yearRangeRe.ReplaceAllString(line, "")
	return strings.Trim(line, " |,-–—")
}
