package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// JobProfile represents a job requirement profile that candidates are scored against.
type JobProfile struct {
	ID          uuid.UUID `json:"jd_id,omitempty"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`

	MustHaveSkills   []string `json:"must_have_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills,omitempty"`
	RequiredTools    []string `json:"required_tools,omitempty"`
	RoleKeywords     []string `json:"role_keywords,omitempty"`

	// RequiredExperienceYears of 0 means the profile carries no
	// required-years figure and experience scores on a flat credit.
	RequiredExperienceYears int `json:"required_experience_years,omitempty" validate:"gte=0"`

	Weights Weights `json:"weights"`

	MinimumScoreThreshold int `json:"minimum_score_threshold" validate:"gte=0,lte=100"`
}

// Weights holds the six named scoring weights. They must sum to exactly 100.
type Weights struct {
	Skill      int `json:"skill" validate:"gte=0"`
	Role       int `json:"role" validate:"gte=0"`
	Tool       int `json:"tool" validate:"gte=0"`
	Experience int `json:"experience" validate:"gte=0"`
	Portfolio  int `json:"portfolio" validate:"gte=0"`
	Quality    int `json:"quality" validate:"gte=0"`
}

// Sum returns the total of all six weights.
func (w Weights) Sum() int {
	return w.Skill + w.Role + w.Tool + w.Experience + w.Portfolio + w.Quality
}

// DefaultWeights returns the standard weight distribution.
func DefaultWeights() Weights {
	return Weights{Skill: 40, Role: 20, Tool: 15, Experience: 15, Portfolio: 10, Quality: 5}
}

var validate = validator.New()

// Validate checks the profile's field constraints and the weight-sum
// invariant. It must pass before any scoring executes; a zero sub-score
// during scoring is never a validation failure.
func (p *JobProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid job profile: %w", err)
	}
	if sum := p.Weights.Sum(); sum != 100 {
		return &WeightSumError{Sum: sum}
	}
	return nil
}

// WeightSumError reports a profile whose six weights do not sum to 100.
type WeightSumError struct {
	Sum int
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("job profile weights must sum to 100, got %d", e.Sum)
}
