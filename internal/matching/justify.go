package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-screener/internal/types"
)

// Justification thresholds, as fractions of a sub-score's weight.
const (
	strongShare = 0.7
	weakShare   = 0.3
)

// buildJustification renders the template explanation for a scored
// result: one bullet per notably strong or weak sub-score, then the
// matched and missing skill enumerations. The output depends only on
// the result and profile, so identical inputs justify identically.
func buildJustification(result *types.MatchResult, profile *types.JobProfile) string {
	w := profile.Weights
	var lines []string

	components := []struct {
		label  string
		score  float64
		weight int
	}{
		{"skills", result.SkillScore, w.Skill},
		{"role fit", result.RoleScore, w.Role},
		{"tools", result.ToolScore, w.Tool},
		{"experience", result.ExperienceScore, w.Experience},
		{"portfolio", result.PortfolioScore, w.Portfolio},
		{"extraction quality", result.QualityScore, w.Quality},
	}

	for _, c := range components {
		if c.weight == 0 {
			continue
		}
		switch share := c.score / float64(c.weight); {
		case share >= strongShare:
			lines = append(lines, fmt.Sprintf("- Strong %s match (%.1f/%d)", c.label, c.score, c.weight))
		case share <= weakShare:
			lines = append(lines, fmt.Sprintf("- Weak %s match (%.1f/%d)", c.label, c.score, c.weight))
		}
	}

	if len(result.MatchedSkills) > 0 {
		lines = append(lines, "- Matched skills: "+strings.Join(result.MatchedSkills, ", "))
	}
	if len(result.MissingSkills) > 0 {
		lines = append(lines, "- Missing must-have skills: "+strings.Join(result.MissingSkills, ", "))
	}
	if len(result.MatchedTools) > 0 {
		lines = append(lines, "- Matched tools: "+strings.Join(result.MatchedTools, ", "))
	}

	lines = append(lines, fmt.Sprintf("- Total score %d/100 against threshold %d",
		result.TotalScore, profile.MinimumScoreThreshold))

	return strings.Join(lines, "\n")
}
