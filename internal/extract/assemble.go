package extract

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/parsing"
	"github.com/jonathan/cv-screener/internal/types"
)

// Assembler runs the extractors over a document's section buffers and
// merges their outputs into one immutable CandidateRecord. Parsing is a
// pure function of the text and the injected lexicons, so the same text
// always assembles the same record.
type Assembler struct {
	lex lexicon.Lexicons
	now func() time.Time
}

// NewAssembler constructs an Assembler over the given lexicons.
func NewAssembler(lex lexicon.Lexicons) *Assembler {
	return &Assembler{lex: lex, now: time.Now}
}

// WithClock overrides the clock used to resolve open-ended durations.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// Parse normalizes and segments the raw text, fans the extractors out
// over their disjoint buffers, and joins their outputs. quality is the
// OCR confidence in [0,1], clamped and carried onto the record.
// Extractors cannot fail; missing fields are simply absent.
func (a *Assembler) Parse(ctx context.Context, rawText string, quality float64) (*types.CandidateRecord, error) {
	text := parsing.NormalizeText(rawText)
	lines := parsing.Lines(text)
	segments := parsing.Segment(lines)
	now := a.now().UTC()

	var (
		contact    Contact
		summary    string
		skills     []string
		tools      []string
		certs      []string
		history    []types.WorkHistoryEntry
		projects   ProjectExtraction
		education  []types.EducationEntry
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		contact = ExtractContact(segments[parsing.SectionPreamble], text)
		summary = a.extractSummary(segments)
		return nil
	})
	g.Go(func() error {
		skills = MatchTerms(text, a.lex.Skills)
		tools = MatchTerms(text, a.lex.Tools)
		certs = ExtractCertifications(segments[parsing.SectionCertifications])
		return nil
	})
	g.Go(func() error {
		history = ExtractWorkHistory(segments[parsing.SectionExperience], now)
		return nil
	})
	g.Go(func() error {
		projects = a.extractAllProjects(segments)
		return nil
	})
	g.Go(func() error {
		education = ExtractEducation(segments[parsing.SectionEducation])
		return nil
	})

	// Extractors only signal via their results; the group exists for the
	// fan-out/fan-in structure, not error propagation.
	_ = g.Wait()

	record := &types.CandidateRecord{
		Name:              contact.Name,
		Email:             contact.Email,
		Phone:             contact.Phone,
		Location:          contact.Location,
		LinkedInURL:       contact.LinkedInURL,
		PortfolioURLs:     contact.PortfolioURLs,
		Summary:           summary,
		Skills:            skills,
		Tools:             tools,
		Certifications:    dedupeSorted(certs),
		WorkHistory:       history,
		Projects:          projects.Projects,
		Education:         education,
		ExtractionQuality: clamp01(quality),
	}

	if record.Location == "" {
		record.Location = locationFromProjects(projects.Projects)
	}

	record.Evaluation = ExtractEvaluation(text, history, projects.Projects, a.lex, now)

	return record, nil
}

// extractSummary prefers the announced summary section and falls back
// to long preamble lines.
func (a *Assembler) extractSummary(segments parsing.Segments) string {
	if buf := segments[parsing.SectionSummary]; len(buf) > 0 {
		return strings.Join(buf[:min(len(buf), 3)], " ")
	}
	return ExtractSummary(segments[parsing.SectionPreamble])
}

// extractAllProjects scans the projects buffer with numbered-item
// detection enabled, then the experience and unknown buffers with the
// stricter rules, deduplicating by name.
func (a *Assembler) extractAllProjects(segments parsing.Segments) ProjectExtraction {
	primary := ExtractProjects(segments[parsing.SectionProjects], a.lex, true)

	result := primary
	seen := make(map[string]struct{}, len(primary.Projects))
	for _, p := range primary.Projects {
		seen[strings.ToLower(p.Name)] = struct{}{}
	}

	for _, section := range []parsing.Section{parsing.SectionExperience, parsing.SectionUnknown} {
		extra := ExtractProjects(segments[section], a.lex, false)
		result.DiscardedBlocks += extra.DiscardedBlocks
		for _, p := range extra.Projects {
			key := strings.ToLower(p.Name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			result.Projects = append(result.Projects, p)
		}
	}
	return result
}

// locationFromProjects falls back to the first project site when no
// dedicated location field exists elsewhere in the document.
func locationFromProjects(projects []types.Project) string {
	for _, p := range projects {
		if p.SiteName != "" {
			return p.SiteName
		}
	}
	return ""
}

func dedupeSorted(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
