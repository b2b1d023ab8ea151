package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/types"
)

func testProfile() *types.JobProfile {
	return &types.JobProfile{
		ID:                      uuid.New(),
		Title:                   "BIM Engineer",
		Description:             "marina tower coordination",
		MustHaveSkills:          []string{"Revit", "Navisworks"},
		NiceToHaveSkills:        []string{"SQL"},
		RequiredTools:           []string{"Navisworks", "BIM 360"},
		RoleKeywords:            []string{"bim engineer"},
		RequiredExperienceYears: 5,
		Weights:                 types.DefaultWeights(),
		MinimumScoreThreshold:   50,
	}
}

func testCandidate() *types.CandidateRecord {
	return &types.CandidateRecord{
		ID:            uuid.New(),
		Name:          "Ahmed Hassan",
		Skills:        []string{"Navisworks", "Revit", "SQL"},
		Tools:         []string{"Navisworks"},
		PortfolioURLs: []string{"https://portfolio.example"},
		WorkHistory: []types.WorkHistoryEntry{
			{JobTitle: "Senior BIM Engineer"},
		},
		Projects: []types.Project{
			{Name: "Marina Gate Tower", Responsibilities: []string{"clash coordination"}},
		},
		Evaluation:        types.EvaluationMetrics{TotalExperienceYears: 6},
		ExtractionQuality: 0.9,
	}
}

func TestScore_FullBreakdown(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	candidate := testCandidate()

	result, err := scorer.Score(candidate, profile)
	require.NoError(t, err)

	assert.Equal(t, candidate.ID, result.CandidateID)
	assert.Equal(t, profile.ID, result.JDID)

	// All must-have and nice-to-have skills present.
	assert.InDelta(t, 40.0, result.SkillScore, 0.001)
	// Role keyword appears verbatim in the latest title.
	assert.InDelta(t, 20.0, result.RoleScore, 0.001)
	// One of two required tools.
	assert.InDelta(t, 7.5, result.ToolScore, 0.001)
	// Six years against five required caps at full weight.
	assert.InDelta(t, 15.0, result.ExperienceScore, 0.001)
	// Portfolio URL present and both description tokens occur in projects.
	assert.InDelta(t, 10.0, result.PortfolioScore, 0.001)
	assert.InDelta(t, 4.5, result.QualityScore, 0.001)

	assert.Equal(t, 97, result.TotalScore)
	assert.Equal(t, []string{"Navisworks", "Revit", "SQL"}, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, []string{"Navisworks"}, result.MatchedTools)
}

func TestScore_InvalidProfileProducesNoResult(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	profile.Weights.Skill = 10 // sum no longer 100

	result, err := scorer.Score(testCandidate(), profile)
	require.Error(t, err)
	assert.Nil(t, result)

	var sumErr *types.WeightSumError
	assert.ErrorAs(t, err, &sumErr)
}

func TestScore_MissingSkillsEnumerated(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	candidate := testCandidate()
	candidate.Skills = []string{"Revit"}

	result, err := scorer.Score(candidate, profile)
	require.NoError(t, err)

	// Half the must-haves: 40 * (0.5*0.8 + 1.0*0.2) without the nice-to-have.
	assert.InDelta(t, 16.0, result.SkillScore, 0.001)
	assert.Equal(t, []string{"Navisworks"}, result.MissingSkills)
}

func TestScore_ProfileCasingWinsInEnumerations(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	profile.MustHaveSkills = []string{"REVIT", "sql"}
	profile.NiceToHaveSkills = nil
	candidate := testCandidate()

	result, err := scorer.Score(candidate, profile)
	require.NoError(t, err)

	assert.Equal(t, []string{"REVIT", "sql"}, result.MatchedSkills)
}

func TestScore_MatchedSkillsSortedAcrossLists(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	profile.MustHaveSkills = []string{"Revit"}
	profile.NiceToHaveSkills = []string{"AutoCAD"}
	candidate := testCandidate()
	candidate.Skills = []string{"Revit", "AutoCAD"}

	result, err := scorer.Score(candidate, profile)
	require.NoError(t, err)

	// One sorted enumeration, not must-haves followed by nice-to-haves.
	assert.Equal(t, []string{"AutoCAD", "Revit"}, result.MatchedSkills)
}

func TestScore_EmptySkillListsFullySatisfied(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	profile.MustHaveSkills = nil
	profile.NiceToHaveSkills = nil
	candidate := testCandidate()
	candidate.Skills = nil

	result, err := scorer.Score(candidate, profile)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, result.SkillScore, 0.001)
}

func TestRoleScore_EquivalentCredit(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	candidate := testCandidate()
	candidate.WorkHistory = []types.WorkHistoryEntry{{JobTitle: "BIM Modeler"}}
	candidate.Projects = nil

	result, err := scorer.Score(candidate, profile)
	require.NoError(t, err)

	// "bim modeler" is a lexicon equivalent of "bim engineer".
	assert.InDelta(t, 20*0.75, result.RoleScore, 0.001)
}

func TestRoleScore_PartialTokenOverlap(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	profile.RoleKeywords = []string{"senior facade engineer"}
	candidate := testCandidate()
	candidate.WorkHistory = []types.WorkHistoryEntry{{JobTitle: "Senior Architect"}}
	candidate.Projects = nil

	result, err := scorer.Score(candidate, profile)
	require.NoError(t, err)

	// One of three keyword tokens matches.
	assert.InDelta(t, 20.0/3, result.RoleScore, 0.001)
}

func TestRoleScore_NoTitles(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	candidate := testCandidate()
	candidate.WorkHistory = nil
	candidate.Projects = nil

	result, err := scorer.Score(candidate, testProfile())
	require.NoError(t, err)
	assert.Zero(t, result.RoleScore)
}

func TestRoleScore_EmptyKeywordsFullCredit(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	profile.RoleKeywords = nil

	result, err := scorer.Score(testCandidate(), profile)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, result.RoleScore, 0.001)
}

func TestExperienceScore_FlatCreditWithoutRequirement(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	profile.RequiredExperienceYears = 0

	result, err := scorer.Score(testCandidate(), profile)
	require.NoError(t, err)
	assert.InDelta(t, 15*0.7, result.ExperienceScore, 0.001)
}

func TestExperienceScore_NoExperience(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	profile.RequiredExperienceYears = 0
	candidate := testCandidate()
	candidate.Evaluation.TotalExperienceYears = 0

	result, err := scorer.Score(candidate, profile)
	require.NoError(t, err)
	assert.Zero(t, result.ExperienceScore)
}

func TestExperienceScore_ProportionalBelowRequirement(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	candidate := testCandidate()
	candidate.Evaluation.TotalExperienceYears = 2.5

	result, err := scorer.Score(candidate, testProfile())
	require.NoError(t, err)
	assert.InDelta(t, 15*0.5, result.ExperienceScore, 0.001)
}

func TestScore_BoundsHold(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()

	empty := &types.CandidateRecord{ID: uuid.New()}
	result, err := scorer.Score(empty, profile)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.TotalScore, 0)
	assert.LessOrEqual(t, result.TotalScore, 100)

	result, err = scorer.Score(testCandidate(), profile)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.TotalScore, 0)
	assert.LessOrEqual(t, result.TotalScore, 100)
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewScorer(lexicon.Default())
	profile := testProfile()
	candidate := testCandidate()

	first, err := scorer.Score(candidate, profile)
	require.NoError(t, err)
	second, err := scorer.Score(candidate, profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWithCoefficients_Override(t *testing.T) {
	coeff := DefaultCoefficients()
	coeff.FlatExperienceCredit = 0.5
	scorer := NewScorer(lexicon.Default()).WithCoefficients(coeff)

	profile := testProfile()
	profile.RequiredExperienceYears = 0

	result, err := scorer.Score(testCandidate(), profile)
	require.NoError(t, err)
	assert.InDelta(t, 15*0.5, result.ExperienceScore, 0.001)
}
