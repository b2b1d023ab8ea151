package parsing

import "strings"

// Section identifies one segmenter state and its output buffer.
type Section int

// Segmenter states. Preamble is the initial state; Unknown receives
// lines that trip a stop keyword without announcing a new section.
const (
	SectionPreamble Section = iota
	SectionSummary
	SectionExperience
	SectionProjects
	SectionEducation
	SectionSkills
	SectionCertifications
	SectionUnknown
)

var sectionNames = map[Section]string{
	SectionPreamble:       "preamble",
	SectionSummary:        "summary",
	SectionExperience:     "experience",
	SectionProjects:       "projects",
	SectionEducation:      "education",
	SectionSkills:         "skills",
	SectionCertifications: "certifications",
	SectionUnknown:        "unknown",
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return "unknown"
}

// headerKeywords maps a target state to the header lines that trigger a
// transition into it. Longer keywords are listed first so "work
// experience" wins over "experience" style overlaps.
var headerKeywords = []struct {
	section  Section
	keywords []string
}{
	{SectionExperience, []string{
		"work experience", "professional experience", "employment history",
		"career history", "experience",
	}},
	{SectionProjects, []string{
		"key projects", "major projects", "selected projects",
		"project experience", "projects",
	}},
	{SectionCertifications, []string{
		"certifications", "certificates", "licenses", "training",
	}},
	{SectionSkills, []string{
		"technical skills", "core competencies", "software skills",
		"skills", "tools",
	}},
	{SectionEducation, []string{
		"education", "academic background", "academic qualifications",
		"qualifications",
	}},
	{SectionSummary, []string{
		"professional summary", "career objective", "summary",
		"profile", "objective", "about me",
	}},
}

// stopKeywords force a transition to Unknown when they appear in a line
// while the named state is active, preventing content from one section
// bleeding into another when the header was lost by the OCR.
var stopKeywords = map[Section][]string{
	SectionProjects: {
		"software", "technical skills", "certifications", "training",
		"education", "references",
	},
	SectionExperience: {
		"technical skills", "certifications", "references",
	},
	SectionSummary: {
		"references",
	},
}

// maxHeaderWords bounds how long a line may be and still count as a
// section header; prose never transitions the machine.
const maxHeaderWords = 4

// Segments holds the accumulated line buffer for each section.
type Segments map[Section][]string

// Segment partitions lines into labeled section buffers with a single
// forward pass. All buffers are returned at end of input regardless of
// the final state.
func Segment(lines []string) Segments {
	segments := make(Segments)
	state := SectionPreamble

	for _, line := range lines {
		if next, ok := matchHeader(line); ok {
			state = next
			continue // header lines label the buffer, they are not content
		}
		if hitsStopKeyword(state, line) {
			state = SectionUnknown
		}
		segments[state] = append(segments[state], line)
	}

	return segments
}

func matchHeader(line string) (Section, bool) {
	normalized := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	if len(strings.Fields(normalized)) > maxHeaderWords {
		return SectionUnknown, false
	}
	for _, entry := range headerKeywords {
		for _, kw := range entry.keywords {
			if normalized == kw {
				return entry.section, true
			}
		}
	}
	return SectionUnknown, false
}

func hitsStopKeyword(state Section, line string) bool {
	stops, ok := stopKeywords[state]
	if !ok {
		return false
	}
	lower := strings.ToLower(line)
	if len(strings.Fields(lower)) > maxHeaderWords+1 {
		return false
	}
	for _, stop := range stops {
		if strings.Contains(lower, stop) {
			return true
		}
	}
	return false
}
