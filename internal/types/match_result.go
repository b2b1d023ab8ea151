package types

import "github.com/google/uuid"

// MatchResult holds the scored outcome for one (candidate, job) pair.
// It is uniquely keyed by (CandidateID, JDID): re-running matching for
// the same pair overwrites the previous result rather than appending.
type MatchResult struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	JDID        uuid.UUID `json:"jd_id"`

	TotalScore int `json:"total_score"`

	SkillScore      float64 `json:"skill_score"`
	RoleScore       float64 `json:"role_score"`
	ToolScore       float64 `json:"tool_score"`
	ExperienceScore float64 `json:"experience_score"`
	PortfolioScore  float64 `json:"portfolio_score"`
	QualityScore    float64 `json:"quality_score"`

	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	MatchedTools  []string `json:"matched_tools,omitempty"`

	Justification string `json:"justification"`

	// IsShortlisted and IsRejected are mutually exclusive; setting one
	// clears the other.
	IsShortlisted bool `json:"is_shortlisted"`
	IsRejected    bool `json:"is_rejected"`
}

// Shortlist marks the result shortlisted. Applying it to an already
// shortlisted result is a no-op; it always clears any reject flag.
func (m *MatchResult) Shortlist() {
	m.IsShortlisted = true
	m.IsRejected = false
}

// Reject marks the result rejected and clears any shortlist flag.
func (m *MatchResult) Reject() {
	m.IsRejected = true
	m.IsShortlisted = false
}

// MeetsThreshold reports whether the total score reaches the profile's
// minimum score threshold.
func (m *MatchResult) MeetsThreshold(profile *JobProfile) bool {
	return m.TotalScore >= profile.MinimumScoreThreshold
}
