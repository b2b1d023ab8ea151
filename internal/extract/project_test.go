package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/types"
)

func defaultLex() lexicon.Lexicons {
	return lexicon.Default()
}

func TestExtractProjects_HeaderPatternBlock(t *testing.T) {
	lines := []string{
		"Marina Gate Tower — Residential, Dubai",
		"Role: BIM Coordinator",
		"Duration: Jan 2021 - Dec 2022",
		"- Coordinated architectural and structural models",
		"- Resolved clash reports with subcontractors",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	require.Len(t, result.Projects, 1)
	assert.Zero(t, result.DiscardedBlocks)

	p := result.Projects[0]
	assert.Equal(t, "Marina Gate Tower", p.Name)
	assert.Equal(t, "BIM Coordinator", p.Role)
	assert.Equal(t, "Jan 2021", p.DurationStart)
	assert.Equal(t, "Dec 2022", p.DurationEnd)
	assert.Equal(t, []string{
		"Coordinated architectural and structural models",
		"Resolved clash reports with subcontractors",
	}, p.Responsibilities)
}

func TestExtractProjects_ExplicitLabels(t *testing.T) {
	lines := []string{
		"Project: Lusail Stadium Expansion",
		"Location: Lusail, Qatar",
		"Role: Senior BIM Engineer",
		"Duration: 2019-2021",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	require.Len(t, result.Projects, 1)

	p := result.Projects[0]
	assert.Equal(t, "Lusail Stadium Expansion", p.Name)
	assert.Equal(t, "Lusail, Qatar", p.SiteName)
	assert.Equal(t, "Senior BIM Engineer", p.Role)
	assert.Equal(t, "2019", p.DurationStart)
	assert.Equal(t, "2021", p.DurationEnd)
}

func TestExtractProjects_NumberedItemsInsideProjectsSection(t *testing.T) {
	lines := []string{
		"1. Yas Island Hotel — Hospitality, Abu Dhabi",
		"Developed coordinated federated models for all hotel towers on schedule",
		"2. Downtown Dubai Mall Expansion — Retail, Dubai",
		"Managed the clash detection workflow across nine disciplines every week",
	}

	result := ExtractProjects(lines, defaultLex(), true)
	require.Len(t, result.Projects, 2)
	assert.Equal(t, "Yas Island Hotel", result.Projects[0].Name)
	assert.Equal(t, "Downtown Dubai Mall Expansion", result.Projects[1].Name)
}

func TestExtractProjects_NumberedItemsIgnoredOutsideSection(t *testing.T) {
	lines := []string{
		"1. Some ordinary numbered sentence here",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	assert.Empty(t, result.Projects)
	assert.Zero(t, result.DiscardedBlocks)
}

func TestExtractProjects_ParenthesisBalancedSite(t *testing.T) {
	lines := []string{
		"Project: AMANSAMAR Beachfront Residences",
		"Location: Al Maryah Island (Abu Dhabi",
		"UAE)",
		"- Modeled the full facade package",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	require.Len(t, result.Projects, 1)

	p := result.Projects[0]
	assert.Equal(t, "AMANSAMAR Beachfront Residences", p.Name)
	assert.Equal(t, "Al Maryah Island (Abu Dhabi UAE)", p.SiteName)
}

func TestExtractProjects_SiteIgnoresOtherLabelValues(t *testing.T) {
	// A Role: value that mentions a gazetteer site must not be taken as
	// the site, label prefix and all.
	lines := []string{
		"Project: Marina Gate Development",
		"Role: Dubai Metro BIM Coordinator",
		"- Coordinated structural and MEP models across all disciplines",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	require.Len(t, result.Projects, 1)

	p := result.Projects[0]
	assert.Equal(t, "Marina Gate Development", p.Name)
	assert.Equal(t, "Dubai Metro BIM Coordinator", p.Role)
	assert.Empty(t, p.SiteName)
}

func TestExtractProjects_BulletsOnlySupportAccepted(t *testing.T) {
	// A name plus responsibilities and nothing else still validates.
	lines := []string{
		"Project: AMANSAMAR Island Resort Development",
		"- Delivered LOD 400 models for the resort clusters",
		"- Supervised a team of six modelers on site",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	require.Len(t, result.Projects, 1)
	assert.Len(t, result.Projects[0].Responsibilities, 2)
}

func TestExtractProjects_FalsePositiveNameDiscarded(t *testing.T) {
	lines := []string{
		"1. Bachelor of Engineering — Civil, Cairo University",
		"Completed with distinction and graduated top of the class overall",
	}

	result := ExtractProjects(lines, defaultLex(), true)
	assert.Empty(t, result.Projects)
	assert.Equal(t, 1, result.DiscardedBlocks)
}

func TestExtractProjects_NameWithoutSupportDiscarded(t *testing.T) {
	lines := []string{
		"Project: Orphan Block Name",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	assert.Empty(t, result.Projects)
	assert.Equal(t, 1, result.DiscardedBlocks)
}

func TestExtractProjects_SingleWordNameDiscarded(t *testing.T) {
	lines := []string{
		"Project: Tower",
		"Duration: 2020-2021",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	assert.Empty(t, result.Projects)
	assert.Equal(t, 1, result.DiscardedBlocks)
}

func TestExtractProjects_SingleYearSetsBothMarkers(t *testing.T) {
	lines := []string{
		"Project: Jeddah Corniche Resort",
		"Completed 2023",
		"- Produced tender stage drawings for the marina",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	require.Len(t, result.Projects, 1)
	assert.Equal(t, "2023", result.Projects[0].DurationStart)
	assert.Equal(t, "2023", result.Projects[0].DurationEnd)
}

func TestExtractProjects_ResponsibilitiesDeduplicated(t *testing.T) {
	lines := []string{
		"Project: Riyadh Metro Station Package",
		"- Reviewed shop drawings for approval",
		"- Reviewed shop drawings for approval",
		"Coordinated the mechanical and electrical models for three stations weekly",
	}

	result := ExtractProjects(lines, defaultLex(), false)
	require.Len(t, result.Projects, 1)

	resp := result.Projects[0].Responsibilities
	assert.Equal(t, []string{
		"Reviewed shop drawings for approval",
		"Coordinated the mechanical and electrical models for three stations weekly",
	}, resp)
}

func TestIsProjectBlockStart_BuildingTypeNeedsContext(t *testing.T) {
	lex := defaultLex()

	// Building type plus gazetteer hit.
	assert.True(t, isProjectBlockStart("Marina Tower Dubai", lex, false))
	// Building type plus header pattern.
	assert.True(t, isProjectBlockStart("Crescent Hotel — Hospitality, Muscat", lex, false))
	// Building type alone is not enough.
	assert.False(t, isProjectBlockStart("worked on a tower once", lex, false))
	assert.False(t, isProjectBlockStart("responsible for tower maintenance", lex, false))
}

func TestValidateProject_WordBounds(t *testing.T) {
	falsePositives := defaultLex().FalsePositiveNames

	ok := types.Project{Name: "Marina Gate Complex", SiteName: "Dubai, UAE"}
	assert.True(t, validateProject(ok, falsePositives))

	short := types.Project{Name: "Gateway", SiteName: "Dubai, UAE"}
	assert.False(t, validateProject(short, falsePositives))

	long := types.Project{
		Name: "one two three four five six seven eight nine ten eleven twelve thirteen" +
			" fourteen fifteen sixteen seventeen eighteen nineteen twenty alpha beta gamma delta epsilon zeta",
		SiteName: "Dubai, UAE",
	}
	assert.False(t, validateProject(long, falsePositives))
}
