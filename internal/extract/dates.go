// Package extract recovers structured fields from segmented résumé text.
// Every extractor is a pure function of its input lines and the injected
// lexicons; fields that cannot be confidently recovered are omitted, never
// reported as errors.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthAlt = `jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec`

var (
	dateRangeRe = regexp.MustCompile(
		`(?i)((?:` + monthAlt + `)[a-z]*\.?\s+\d{4})\s*(?:[-–—]+|to)\s*((?:` + monthAlt + `)[a-z]*\.?\s+\d{4}|present|current|now)`)
	yearRangeRe = regexp.MustCompile(`\b((?:19|20)\d{2})\s*[-–—]+\s*((?:19|20)\d{2})\b`)
	bareYearRe  = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	monthYearRe = regexp.MustCompile(`(?i)^((?:` + monthAlt + `)[a-z]*)\.?\s+(\d{4})$`)
)

var monthNumbers = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// openEndMarker is the canonical marker for an ongoing engagement.
// "present", "current" and "now" all normalize to it.
const openEndMarker = "Present"

// canonicalDate normalizes a raw date token: month names collapse to
// their three-letter form ("September 2021" -> "Sep 2021"), bare years
// pass through, and open-end words become the Present marker.
func canonicalDate(token string) string {
	token = strings.TrimSpace(token)
	lower := strings.ToLower(token)
	switch lower {
	case "present", "current", "now":
		return openEndMarker
	}
	if m := monthYearRe.FindStringSubmatch(token); m != nil {
		abbr := strings.ToLower(m[1])
		if len(abbr) > 3 {
			abbr = abbr[:3]
		}
		return strings.Title(abbr) + " " + m[2] //nolint:staticcheck // three-letter ASCII month
	}
	if bareYearRe.MatchString(token) && len(token) == 4 {
		return token
	}
	return token
}

// parseDate resolves a canonical date marker to a point in time. The
// Present marker resolves against now so that open-ended durations are
// computed consistently across one run.
func parseDate(marker string, now time.Time) (time.Time, bool) {
	marker = strings.TrimSpace(marker)
	if marker == "" {
		return time.Time{}, false
	}
	if strings.EqualFold(marker, openEndMarker) {
		return now, true
	}
	if m := monthYearRe.FindStringSubmatch(marker); m != nil {
		abbr := strings.ToLower(m[1])
		if len(abbr) > 3 {
			abbr = abbr[:3]
		}
		month, ok := monthNumbers[abbr]
		if !ok {
			return time.Time{}, false
		}
		year, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
	}
	if len(marker) == 4 {
		if year, err := strconv.Atoi(marker); err == nil && year >= 1900 && year <= 2100 {
			return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// monthsBetween returns whole months from start to end, floored at zero.
func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// durationMonths computes the floored month span between two canonical
// date markers, resolving an open end against now.
func durationMonths(start, end string, now time.Time) int {
	s, ok := parseDate(start, now)
	if !ok {
		return 0
	}
	e, ok := parseDate(end, now)
	if !ok {
		e = now
	}
	return monthsBetween(s, e)
}

// parseDateRange extracts a (start, end) pair from a line, trying full
// month-year ranges first, then bare year ranges, then a single bare
// year which sets both markers to that year.
func parseDateRange(line string) (start, end string, ok bool) {
	if m := dateRangeRe.FindStringSubmatch(line); m != nil {
		return canonicalDate(m[1]), canonicalDate(m[2]), true
	}
	if m := yearRangeRe.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	// "Month YYYY - YYYY" and "YYYY - Present" hybrids.
	if m := hybridRangeRe.FindStringSubmatch(line); m != nil {
		return canonicalDate(m[1]), canonicalDate(m[2]), true
	}
	if m := bareYearRe.FindStringSubmatch(line); m != nil {
		return m[1], m[1], true
	}
	return "", "", false
}

var hybridRangeRe = regexp.MustCompile(
	`(?i)((?:` + monthAlt + `)[a-z]*\.?\s+\d{4}|\d{4})\s*(?:[-–—]+|to)\s*((?:` + monthAlt + `)[a-z]*\.?\s+\d{4}|\d{4}|present|current|now)`)

// containsDateRange reports whether the line carries an explicit date
// range (not merely a bare year).
func containsDateRange(line string) bool {
	return dateRangeRe.MatchString(line) || yearRangeRe.MatchString(line) || hybridRangeRe.MatchString(line)
}

// yearsFromMonths converts a month total to years rounded to one decimal.
func yearsFromMonths(months int) float64 {
	years := float64(months) / 12.0
	rounded, _ := strconv.ParseFloat(fmt.Sprintf("%.1f", years), 64)
	return rounded
}
