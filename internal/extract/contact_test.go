package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact_FullPreamble(t *testing.T) {
	preamble := []string{
		"AHMED HASSAN",
		"Senior BIM Engineer",
		"Email: ahmed.hassan@example.com | Phone: +971 50 123 4567",
		"Location: Dubai, UAE",
		"https://linkedin.com/in/ahmedhassan",
		"https://ahmedhassan.portfolio.example",
	}
	fullText := joinLines(preamble)

	c := ExtractContact(preamble, fullText)

	assert.Equal(t, "Ahmed Hassan", c.Name)
	assert.Equal(t, "ahmed.hassan@example.com", c.Email)
	assert.Equal(t, "+971501234567", c.Phone)
	assert.Equal(t, "Dubai, UAE", c.Location)
	assert.Equal(t, "https://linkedin.com/in/ahmedhassan", c.LinkedInURL)
	assert.Equal(t, []string{"https://ahmedhassan.portfolio.example"}, c.PortfolioURLs)
}

func TestExtractContact_FirstEmailWins(t *testing.T) {
	text := "primary@example.com and later secondary@example.com"
	c := ExtractContact(nil, text)
	assert.Equal(t, "primary@example.com", c.Email)
}

func TestExtractContact_ShortNumberRejected(t *testing.T) {
	c := ExtractContact(nil, "Ref no. 1234-5678 only")
	assert.Empty(t, c.Phone)
}

func TestExtractName_SkipsHeadersAndTitles(t *testing.T) {
	preamble := []string{
		"CURRICULUM VITAE",
		"Senior BIM Engineer",
		"Fatima Al Mansoori",
	}
	assert.Equal(t, "Fatima Al Mansoori", extractName(preamble))
}

func TestExtractName_RequiresTwoToFiveWords(t *testing.T) {
	assert.Empty(t, extractName([]string{"Ahmed"}))
	assert.Empty(t, extractName([]string{"one two three four five six seven"}))
}

func TestExtractLocation_LabelBeatsCityCountry(t *testing.T) {
	preamble := []string{"Based in: Abu Dhabi, UAE"}
	got := extractLocation(preamble, "mentions Riyadh, Saudi somewhere")
	assert.Equal(t, "Abu Dhabi, UAE", got)
}

func TestExtractLocation_CityCountryFallback(t *testing.T) {
	got := extractLocation(nil, "worked on a tower in Doha, Qatar last year")
	assert.Equal(t, "Doha, Qatar", got)
}

func TestExtractSummary_CollectsLongLines(t *testing.T) {
	preamble := []string{
		"Ahmed Hassan",
		"Email: ahmed@example.com",
		"Experienced BIM engineer with over ten years delivering large projects.",
		"Skilled in coordination, clash detection and multidisciplinary model management.",
	}

	summary := ExtractSummary(preamble)

	assert.Contains(t, summary, "Experienced BIM engineer")
	assert.Contains(t, summary, "clash detection")
	assert.NotContains(t, summary, "ahmed@example.com")
}

func TestExtractSummary_EmptyPreamble(t *testing.T) {
	assert.Empty(t, ExtractSummary(nil))
}

func joinLines(lines []string) string {
	out := ""
	for _, line := range lines {
		out += line + "\n"
	}
	return out
}
