// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-screener/internal/logger"
	"github.com/jonathan/cv-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate outputs a human-readable summary of a parsed record.
func (p *Printer) PrintCandidate(record *types.CandidateRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", record.Email))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", record.Location))
	sb.WriteString(fmt.Sprintf("Seniority: %s (%.1f yrs, %.1f GCC)\n",
		record.Evaluation.SeniorityLevel,
		record.Evaluation.TotalExperienceYears,
		record.Evaluation.GCCExperienceYears))
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		skills := logger.TruncateForLog(strings.Join(record.Skills, ", "), 42)
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
	}

	if len(record.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("\nProjects (%d):\n", len(record.Projects)))
		count := min(len(record.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			project := record.Projects[i]
			sb.WriteString(fmt.Sprintf("  • %s", project.Name))
			if project.SiteName != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", project.SiteName))
			}
			sb.WriteString("\n")
		}
		if len(record.Projects) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Projects)-maxItemsToShow))
		}
	}

	if len(record.WorkHistory) > 0 {
		sb.WriteString(fmt.Sprintf("\nWork History (%d):\n", len(record.WorkHistory)))
		count := min(len(record.WorkHistory), 3)
		for i := 0; i < count; i++ {
			entry := record.WorkHistory[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.JobTitle))
			if entry.Company != "" {
				sb.WriteString(fmt.Sprintf(", %s", entry.Company))
			}
			if entry.StartDate != "" {
				sb.WriteString(fmt.Sprintf(" (%s - %s)", entry.StartDate, entry.EndDate))
			}
			sb.WriteString("\n")
		}
		if len(record.WorkHistory) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.WorkHistory)-3))
		}
	}

	p.printBox("PARSED CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the scored breakdown for one candidate.
func (p *Printer) PrintMatchResult(result *types.MatchResult, profile *types.JobProfile) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total Score: %d/100 (threshold %d)\n\n",
		result.TotalScore, profile.MinimumScoreThreshold))

	w := profile.Weights
	sb.WriteString(fmt.Sprintf("  Skills:     %5.1f / %d\n", result.SkillScore, w.Skill))
	sb.WriteString(fmt.Sprintf("  Role:       %5.1f / %d\n", result.RoleScore, w.Role))
	sb.WriteString(fmt.Sprintf("  Tools:      %5.1f / %d\n", result.ToolScore, w.Tool))
	sb.WriteString(fmt.Sprintf("  Experience: %5.1f / %d\n", result.ExperienceScore, w.Experience))
	sb.WriteString(fmt.Sprintf("  Portfolio:  %5.1f / %d\n", result.PortfolioScore, w.Portfolio))
	sb.WriteString(fmt.Sprintf("  Quality:    %5.1f / %d\n", result.QualityScore, w.Quality))

	if len(result.MatchedSkills) > 0 {
		matched := logger.TruncateForLog(strings.Join(result.MatchedSkills, ", "), 39)
		sb.WriteString(fmt.Sprintf("\nMatched: %s\n", matched))
	}
	if len(result.MissingSkills) > 0 {
		missing := logger.TruncateForLog(strings.Join(result.MissingSkills, ", "), 39)
		sb.WriteString(fmt.Sprintf("Missing: %s\n", missing))
	}

	switch {
	case result.IsShortlisted:
		sb.WriteString("\nStatus: SHORTLISTED")
	case result.IsRejected:
		sb.WriteString("\nStatus: REJECTED")
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs a compact ranked listing of match results.
func (p *Printer) PrintRanking(results []types.MatchResult, names map[string]string) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ranked %d candidates:\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		name := names[result.CandidateID.String()]
		if name == "" {
			name = result.CandidateID.String()[:8]
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %d/100\n", result.TotalScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}
