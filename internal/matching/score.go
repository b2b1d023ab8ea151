// Package matching scores candidate records against job profiles. All
// scoring is deterministic rule arithmetic over lexicon matches; the
// same record and profile always produce the same result.
package matching

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/types"
)

// Coefficients are the tunable constants inside the sub-score formulas.
// The weights on JobProfile decide how much each sub-score is worth;
// coefficients decide how each sub-score spends its weight.
type Coefficients struct {
	// MustHaveShare and NiceToHaveShare split the skill weight between
	// the two skill lists. They should sum to 1.
	MustHaveShare   float64 `json:"must_have_share"`
	NiceToHaveShare float64 `json:"nice_to_have_share"`

	// EquivalentCredit is the fraction of role weight granted when a
	// role keyword matches only through the role-equivalents lexicon.
	EquivalentCredit float64 `json:"equivalent_credit"`

	// FlatExperienceCredit applies when the profile names no required
	// years but the candidate has any experience at all.
	FlatExperienceCredit float64 `json:"flat_experience_credit"`

	// PortfolioURLShare and PortfolioOverlapShare split the portfolio
	// weight between link presence and description overlap.
	PortfolioURLShare     float64 `json:"portfolio_url_share"`
	PortfolioOverlapShare float64 `json:"portfolio_overlap_share"`
}

// DefaultCoefficients returns the standard scoring constants.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		MustHaveShare:         0.8,
		NiceToHaveShare:       0.2,
		EquivalentCredit:      0.75,
		FlatExperienceCredit:  0.7,
		PortfolioURLShare:     0.5,
		PortfolioOverlapShare: 0.5,
	}
}

// Scorer evaluates candidates against one set of lexicons and
// coefficients. It is safe for concurrent use.
type Scorer struct {
	lex   lexicon.Lexicons
	coeff Coefficients
}

// NewScorer constructs a Scorer with default coefficients.
func NewScorer(lex lexicon.Lexicons) *Scorer {
	return &Scorer{lex: lex, coeff: DefaultCoefficients()}
}

// WithCoefficients overrides the scoring constants.
func (s *Scorer) WithCoefficients(c Coefficients) *Scorer {
	s.coeff = c
	return s
}

// Score computes the six weighted sub-scores for one candidate against
// one profile. The profile is validated first; no partial result is
// produced for an invalid profile.
func (s *Scorer) Score(candidate *types.CandidateRecord, profile *types.JobProfile) (*types.MatchResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("score candidate %s: %w", candidate.ID, err)
	}

	w := profile.Weights
	result := &types.MatchResult{
		CandidateID: candidate.ID,
		JDID:        profile.ID,
	}

	var mustMatched, niceMatched []string
	result.SkillScore, mustMatched, niceMatched, result.MissingSkills =
		s.skillScore(candidate, profile, float64(w.Skill))
	result.MatchedSkills = append(mustMatched, niceMatched...)
	sort.Strings(result.MatchedSkills)

	result.RoleScore = s.roleScore(candidate, profile, float64(w.Role))
	result.ToolScore, result.MatchedTools = s.toolScore(candidate, profile, float64(w.Tool))
	result.ExperienceScore = s.experienceScore(candidate, profile, float64(w.Experience))
	result.PortfolioScore = s.portfolioScore(candidate, profile, float64(w.Portfolio))
	result.QualityScore = float64(w.Quality) * clampUnit(candidate.ExtractionQuality)

	sum := result.SkillScore + result.RoleScore + result.ToolScore +
		result.ExperienceScore + result.PortfolioScore + result.QualityScore
	result.TotalScore = clampScore(int(math.Round(sum)))

	result.Justification = buildJustification(result, profile)
	return result, nil
}

// skillScore splits the skill weight across the must-have and
// nice-to-have lists. An empty list scores as fully satisfied so a
// profile without nice-to-haves does not lose that share. Matched and
// missing enumerations carry the profile's canonical casing.
func (s *Scorer) skillScore(candidate *types.CandidateRecord, profile *types.JobProfile, weight float64) (score float64, mustMatched, niceMatched, missing []string) {
	have := lowerSet(candidate.Skills)

	mustMatched, missing = partitionTerms(profile.MustHaveSkills, have)
	niceMatched, _ = partitionTerms(profile.NiceToHaveSkills, have)

	mustFrac := setFraction(len(mustMatched), len(profile.MustHaveSkills))
	niceFrac := setFraction(len(niceMatched), len(profile.NiceToHaveSkills))

	score = weight * (mustFrac*s.coeff.MustHaveShare + niceFrac*s.coeff.NiceToHaveShare)
	return score, mustMatched, niceMatched, missing
}

// roleScore grants full weight when any role keyword appears in the
// candidate's job or project titles, the equivalent credit when only a
// lexicon equivalent appears, and otherwise the best token-overlap
// fraction across keywords. An empty keyword list is fully satisfied.
func (s *Scorer) roleScore(candidate *types.CandidateRecord, profile *types.JobProfile, weight float64) float64 {
	if len(profile.RoleKeywords) == 0 {
		return weight
	}

	titles := candidateTitles(candidate)
	if len(titles) == 0 {
		return 0
	}
	joined := strings.ToLower(strings.Join(titles, " "))

	best := 0.0
	for _, keyword := range profile.RoleKeywords {
		credit := s.roleCredit(keyword, joined)
		if credit > best {
			best = credit
		}
		if best == 1 {
			break
		}
	}
	return weight * best
}

func (s *Scorer) roleCredit(keyword, titles string) float64 {
	lower := strings.ToLower(keyword)
	if containsPhrase(titles, lower) {
		return 1
	}
	for canonical, equivalents := range s.lex.RoleEquivalents {
		if !strings.EqualFold(canonical, lower) {
			continue
		}
		for _, equivalent := range equivalents {
			if containsPhrase(titles, strings.ToLower(equivalent)) {
				return s.coeff.EquivalentCredit
			}
		}
	}
	return tokenOverlap(lower, titles)
}

// toolScore is the matched fraction of the required tools. A profile
// with no required tools spends no tool weight.
func (s *Scorer) toolScore(candidate *types.CandidateRecord, profile *types.JobProfile, weight float64) (float64, []string) {
	have := lowerSet(candidate.Tools)
	matched, _ := partitionTerms(profile.RequiredTools, have)

	denom := len(profile.RequiredTools)
	if denom < 1 {
		denom = 1
	}
	return weight * float64(len(matched)) / float64(denom), matched
}

// experienceScore caps at the required years when the profile names
// them; otherwise any experience earns the flat credit.
func (s *Scorer) experienceScore(candidate *types.CandidateRecord, profile *types.JobProfile, weight float64) float64 {
	years := candidate.Evaluation.TotalExperienceYears
	if required := profile.RequiredExperienceYears; required > 0 {
		return weight * math.Min(1, years/float64(required))
	}
	if years > 0 {
		return weight * s.coeff.FlatExperienceCredit
	}
	return 0
}

// portfolioScore rewards a published portfolio link and lexical overlap
// between the job description and the candidate's project text.
func (s *Scorer) portfolioScore(candidate *types.CandidateRecord, profile *types.JobProfile, weight float64) float64 {
	hasURL := 0.0
	if len(candidate.PortfolioURLs) > 0 {
		hasURL = 1
	}
	overlap := descriptionOverlap(profile.Description, candidate.Projects)
	return weight * (s.coeff.PortfolioURLShare*hasURL + s.coeff.PortfolioOverlapShare*overlap)
}

// descriptionOverlap is the fraction of distinct description tokens
// (length >= 4) found in the candidate's project text.
func descriptionOverlap(description string, projects []types.Project) float64 {
	tokens := overlapTokens(description)
	if len(tokens) == 0 || len(projects) == 0 {
		return 0
	}

	var sb strings.Builder
	for _, p := range projects {
		sb.WriteString(strings.ToLower(p.Name))
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(p.SiteName))
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(p.Role))
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(strings.Join(p.Responsibilities, " ")))
		sb.WriteByte(' ')
	}
	text := sb.String()

	found := 0
	for _, token := range tokens {
		if containsPhrase(text, token) {
			found++
		}
	}
	return float64(found) / float64(len(tokens))
}

var overlapTokenRe = regexp.MustCompile(`[a-z]{4,}`)

func overlapTokens(description string) []string {
	raw := overlapTokenRe.FindAllString(strings.ToLower(description), -1)
	seen := make(map[string]struct{}, len(raw))
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens
}

// candidateTitles gathers every title-like string the record carries.
func candidateTitles(candidate *types.CandidateRecord) []string {
	titles := make([]string, 0, len(candidate.WorkHistory)+len(candidate.Projects))
	for _, entry := range candidate.WorkHistory {
		if entry.JobTitle != "" {
			titles = append(titles, entry.JobTitle)
		}
	}
	for _, project := range candidate.Projects {
		if project.Role != "" {
			titles = append(titles, project.Role)
		}
	}
	return titles
}

// tokenOverlap is the fraction of keyword tokens present in the titles.
func tokenOverlap(keyword, titles string) float64 {
	words := strings.Fields(keyword)
	if len(words) == 0 {
		return 0
	}
	found := 0
	for _, word := range words {
		if containsPhrase(titles, word) {
			found++
		}
	}
	return float64(found) / float64(len(words))
}

// containsPhrase reports a word-bounded, case-normalized occurrence of
// phrase inside text. Both arguments must already be lowercased.
func containsPhrase(text, phrase string) bool {
	idx := 0
	for {
		at := strings.Index(text[idx:], phrase)
		if at < 0 {
			return false
		}
		at += idx
		before := at == 0 || !isWordByte(text[at-1])
		afterIdx := at + len(phrase)
		after := afterIdx >= len(text) || !isWordByte(text[afterIdx])
		if before && after {
			return true
		}
		idx = at + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= 'A' && b <= 'Z'
}

// partitionTerms splits the profile's terms into matched and missing
// against the candidate's lowercased set, preserving the profile's
// casing and returning both slices sorted.
func partitionTerms(terms []string, have map[string]struct{}) (matched, missing []string) {
	for _, term := range terms {
		if _, ok := have[strings.ToLower(term)]; ok {
			matched = append(matched, term)
		} else {
			missing = append(missing, term)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func setFraction(matched, total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(matched) / float64(total)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
