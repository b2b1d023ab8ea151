package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/matching"
	"github.com/jonathan/cv-screener/internal/types"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func batchDocs() []Document {
	return []Document{
		{Name: "ahmed.txt", Text: "AHMED HASSAN\nEmail: ahmed@example.com", Quality: 0.9},
		{Name: "sara.txt", Text: "SARA ALI\nEmail: sara@example.com", Quality: 0.8},
		{Name: "omar.txt", Text: "OMAR KHALID\nEmail: omar@example.com", Quality: 0.7},
	}
}

func batchProfile() *types.JobProfile {
	return &types.JobProfile{
		ID:                    uuid.New(),
		Title:                 "BIM Engineer",
		MustHaveSkills:        []string{"Revit"},
		Weights:               types.DefaultWeights(),
		MinimumScoreThreshold: 50,
	}
}

func TestParseBatch_KeepsInputOrder(t *testing.T) {
	opts := Options{Logger: zaptest.NewLogger(t), Clock: fixedClock}

	records, err := ParseBatch(context.Background(), batchDocs(), lexicon.Default(), opts)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Ahmed Hassan", records[0].Name)
	assert.Equal(t, "Sara Ali", records[1].Name)
	assert.Equal(t, "Omar Khalid", records[2].Name)
	assert.Equal(t, 0.9, records[0].ExtractionQuality)
	assert.Equal(t, 0.8, records[1].ExtractionQuality)
	assert.Equal(t, 0.7, records[2].ExtractionQuality)
}

func TestParseBatch_DeterministicAcrossRunsAndWorkerCounts(t *testing.T) {
	docs := batchDocs()

	wide, err := ParseBatch(context.Background(), docs, lexicon.Default(), Options{Workers: 8, Clock: fixedClock})
	require.NoError(t, err)
	narrow, err := ParseBatch(context.Background(), docs, lexicon.Default(), Options{Workers: 1, Clock: fixedClock})
	require.NoError(t, err)

	assert.Equal(t, wide, narrow)
}

func TestParseBatch_EmptyInput(t *testing.T) {
	records, err := ParseBatch(context.Background(), nil, lexicon.Default(), Options{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseBatch(ctx, batchDocs(), lexicon.Default(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatchBatch_KeepsInputOrder(t *testing.T) {
	candidates := []*types.CandidateRecord{
		{ID: uuid.New(), Name: "Ahmed Hassan", Skills: []string{"Revit"}},
		{ID: uuid.New(), Name: "Sara Ali"},
	}
	opts := Options{Logger: zaptest.NewLogger(t)}

	results, err := MatchBatch(context.Background(), batchProfile(), candidates, lexicon.Default(), opts)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, candidates[0].ID, results[0].CandidateID)
	assert.Equal(t, candidates[1].ID, results[1].CandidateID)
	assert.Greater(t, results[0].TotalScore, results[1].TotalScore)
}

func TestMatchBatch_InvalidProfileFailsWholeBatch(t *testing.T) {
	profile := batchProfile()
	profile.Weights.Skill = 10

	results, err := MatchBatch(context.Background(), profile, []*types.CandidateRecord{{ID: uuid.New()}}, lexicon.Default(), Options{})
	require.Error(t, err)
	assert.Nil(t, results)

	var sumErr *types.WeightSumError
	assert.ErrorAs(t, err, &sumErr)
}

func TestMatchBatch_CoefficientOverride(t *testing.T) {
	coeff := matching.DefaultCoefficients()
	coeff.FlatExperienceCredit = 0.5

	candidate := &types.CandidateRecord{
		ID:         uuid.New(),
		Evaluation: types.EvaluationMetrics{TotalExperienceYears: 3},
	}

	results, err := MatchBatch(context.Background(), batchProfile(), []*types.CandidateRecord{candidate}, lexicon.Default(), Options{Coefficients: &coeff})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Experience weight 15 at the overridden flat credit.
	assert.InDelta(t, 7.5, results[0].ExperienceScore, 0.001)
}
