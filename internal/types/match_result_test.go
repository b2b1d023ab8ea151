package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortlist_ClearsReject(t *testing.T) {
	result := &MatchResult{IsRejected: true}

	result.Shortlist()

	assert.True(t, result.IsShortlisted)
	assert.False(t, result.IsRejected)
}

func TestReject_ClearsShortlist(t *testing.T) {
	result := &MatchResult{IsShortlisted: true}

	result.Reject()

	assert.True(t, result.IsRejected)
	assert.False(t, result.IsShortlisted)
}

func TestShortlist_Idempotent(t *testing.T) {
	result := &MatchResult{}

	result.Shortlist()
	first := *result
	result.Shortlist()

	assert.Equal(t, first, *result)
}

func TestReject_Idempotent(t *testing.T) {
	result := &MatchResult{}

	result.Reject()
	first := *result
	result.Reject()

	assert.Equal(t, first, *result)
}

func TestMeetsThreshold(t *testing.T) {
	profile := &JobProfile{MinimumScoreThreshold: 50}

	assert.True(t, (&MatchResult{TotalScore: 50}).MeetsThreshold(profile))
	assert.True(t, (&MatchResult{TotalScore: 73}).MeetsThreshold(profile))
	assert.False(t, (&MatchResult{TotalScore: 49}).MeetsThreshold(profile))
}
