// Package types provides type definitions for structured data used throughout the cv-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// CandidateRecord is the immutable snapshot produced per parsed document.
// A re-parse of the same text yields a new, identical record; nothing
// mutates a record after the assembler returns it.
type CandidateRecord struct {
	ID uuid.UUID `json:"candidate_id,omitempty"`

	// Contact
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`

	// Links
	LinkedInURL   string   `json:"linkedin_url,omitempty"`
	PortfolioURLs []string `json:"portfolio_urls,omitempty"`

	Summary string `json:"summary,omitempty"`

	// Set fields are sorted for deterministic output.
	Skills         []string `json:"skills"`
	Tools          []string `json:"tools"`
	Certifications []string `json:"certifications,omitempty"`

	WorkHistory []WorkHistoryEntry `json:"work_history"`
	Projects    []Project          `json:"projects"`
	Education   []EducationEntry   `json:"education,omitempty"`

	Evaluation EvaluationMetrics `json:"evaluation"`

	// ExtractionQuality is the OCR/extraction confidence in [0,1],
	// supplied by the OCR collaborator and carried through unchanged.
	ExtractionQuality float64 `json:"extraction_quality"`
}

// Project represents one itemized project block recovered from the document.
type Project struct {
	Name             string   `json:"name"`
	SiteName         string   `json:"site_name,omitempty"`
	Role             string   `json:"role,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"` // document order, deduplicated
	DurationStart    string   `json:"duration_start,omitempty"`
	DurationEnd      string   `json:"duration_end,omitempty"`
}

// WorkHistoryEntry represents one employment entry.
type WorkHistoryEntry struct {
	JobTitle       string   `json:"job_title"`
	Company        string   `json:"company,omitempty"`
	Location       string   `json:"location,omitempty"`
	StartDate      string   `json:"start_date,omitempty"` // "Jan 2020" / "2020"
	EndDate        string   `json:"end_date,omitempty"`   // "Dec 2023" / "2023" / "Present"
	DurationMonths int      `json:"duration_months"`
	Description    []string `json:"description,omitempty"`
}

// EducationEntry represents one degree or qualification.
type EducationEntry struct {
	Degree         string `json:"degree"`
	University     string `json:"university,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
}

// EvaluationMetrics holds derived recruitment metrics for a candidate.
type EvaluationMetrics struct {
	TotalExperienceYears float64 `json:"total_experience_years"`
	GCCExperienceYears   float64 `json:"gcc_experience_years"`
	SeniorityLevel       string  `json:"seniority_level,omitempty"`
	ExpectedSalary       float64 `json:"expected_salary,omitempty"`
	NoticePeriodDays     int     `json:"notice_period_days,omitempty"`
	WillingToRelocate    bool    `json:"willing_to_relocate"`
	WillingToTravel      bool    `json:"willing_to_travel"`
}

// HasContact reports whether the record carries the minimum identifying info.
func (c *CandidateRecord) HasContact() bool {
	return c.Name != "" && (c.Email != "" || c.Phone != "")
}

// LatestPosition returns the job title of the most recent work history
// entry, or the empty string when no history was recovered. Work history
// is kept in document order and resumes list newest first.
func (c *CandidateRecord) LatestPosition() string {
	if len(c.WorkHistory) == 0 {
		return ""
	}
	return c.WorkHistory[0].JobTitle
}
