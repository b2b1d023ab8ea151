package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/types"
)

var (
	expectedSalaryRe = regexp.MustCompile(`(?i)(?:expected\s+salary|salary\s+expectation)[:\s]+(?:aed\s+)?(\d[,\d]*)`)
	noticePeriodRe   = regexp.MustCompile(`(?i)(?:notice\s+period|availability)[:\s]+(\d+)\s*(days?|weeks?|months?)`)
)

var (
	relocateKeywords = []string{"willing to relocate", "open to relocation", "ready to relocate"}
	travelKeywords   = []string{"willing to travel", "open to travel", "ready to travel"}
)

// ExtractEvaluation derives the recruitment metrics: experience totals
// from the recovered work history, GCC locality from keyword references
// in entries and projects, and salary/availability figures from
// labeled text.
func ExtractEvaluation(
	fullText string,
	history []types.WorkHistoryEntry,
	projects []types.Project,
	lex lexicon.Lexicons,
	now time.Time,
) types.EvaluationMetrics {
	var metrics types.EvaluationMetrics

	totalMonths := 0
	gccMonths := 0
	for _, entry := range history {
		totalMonths += entry.DurationMonths
		if entryReferencesGCC(entry, lex.GCCKeywords) {
			gccMonths += entry.DurationMonths
		}
	}
	for _, project := range projects {
		if projectReferencesGCC(project, lex.GCCKeywords) {
			gccMonths += durationMonths(project.DurationStart, project.DurationEnd, now)
		}
	}

	metrics.TotalExperienceYears = yearsFromMonths(totalMonths)
	metrics.GCCExperienceYears = yearsFromMonths(gccMonths)
	metrics.SeniorityLevel = seniorityForYears(metrics.TotalExperienceYears)

	lower := strings.ToLower(fullText)
	if m := expectedSalaryRe.FindStringSubmatch(fullText); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			metrics.ExpectedSalary = v
		}
	}
	if m := noticePeriodRe.FindStringSubmatch(fullText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			unit := strings.ToLower(m[2])
			switch {
			case strings.HasPrefix(unit, "week"):
				n *= 7
			case strings.HasPrefix(unit, "month"):
				n *= 30
			}
			metrics.NoticePeriodDays = n
		}
	}
	metrics.WillingToRelocate = containsAnyToken(lower, relocateKeywords)
	metrics.WillingToTravel = containsAnyToken(lower, travelKeywords)

	return metrics
}

func entryReferencesGCC(entry types.WorkHistoryEntry, gcc []string) bool {
	text := strings.ToLower(entry.Company + " " + entry.JobTitle + " " +
		entry.Location + " " + strings.Join(entry.Description, " "))
	return containsAnyToken(text, gcc)
}

func projectReferencesGCC(project types.Project, gcc []string) bool {
	text := strings.ToLower(project.Name + " " + project.SiteName + " " +
		strings.Join(project.Responsibilities, " "))
	return containsAnyToken(text, gcc)
}

// seniorityForYears bands total experience into a seniority label.
func seniorityForYears(years float64) string {
	switch {
	case years < 2:
		return "Junior"
	case years < 5:
		return "Mid-Level"
	case years < 8:
		return "Senior"
	case years < 12:
		return "Lead"
	default:
		return "Manager"
	}
}
