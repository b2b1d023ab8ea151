package extract

import (
	"strings"

	"github.com/jonathan/cv-screener/internal/types"
)

var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "diploma",
	"b.sc", "m.sc", "b.tech", "m.tech", "mba", "bba", "b.arch", "m.arch", "b.e",
}

// ExtractEducation recovers degree entries from the education buffer. A
// degree line carries a degree keyword; the graduation year is taken
// from the line or the one after it, and a following non-degree line is
// treated as the institution.
func ExtractEducation(lines []string) []types.EducationEntry {
	var entries []types.EducationEntry

	for i, line := range lines {
		lower := strings.ToLower(line)
		if !containsAnyToken(lower, degreeKeywords) {
			continue
		}

		entry := types.EducationEntry{Degree: line}

		if m := bareYearRe.FindStringSubmatch(line); m != nil {
			entry.GraduationYear = m[1]
		} else if i+1 < len(lines) {
			if m := bareYearRe.FindStringSubmatch(lines[i+1]); m != nil {
				entry.GraduationYear = m[1]
			}
		}

		if i+1 < len(lines) {
			next := lines[i+1]
			if !containsAnyToken(strings.ToLower(next), degreeKeywords) {
				entry.University = strings.TrimSpace(stripTrailingYear(next))
			}
		}

		entries = append(entries, entry)
	}
	return entries
}

func stripTrailingYear(line string) string {
	line = bareYearRe.ReplaceAllString(line, "")
	return strings.Trim(line, " ,")
}

// ExtractCertifications collects certification lines from the
// certifications buffer and any line elsewhere carrying a certification
// marker, sorted and deduplicated by the caller via set assembly.
func ExtractCertifications(lines []string) []string {
	var certs []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
		if trimmed == "" {
			continue
		}
		certs = append(certs, trimmed)
	}
	return certs
}
