package extract

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`[+(]?\d[\d\-\s()]{7,}\d`)
	urlRe   = regexp.MustCompile(`https?://[^\s<>"']+`)

	// "City, Country" or "City, ST" with title-cased tokens.
	cityCountryRe = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)*),\s*([A-Z]{2}|[A-Z][a-z]+(?: [A-Z][a-z]+)*)\b`)
	locationLabel = regexp.MustCompile(`(?i)^(?:location|address|based in)[:\s]+(.+)$`)

	alphaWordRe = regexp.MustCompile(`^[A-Za-z][A-Za-z.\-]*$`)
)

// Contact holds the recovered contact fields. Every field is optional;
// an unrecoverable field is left empty.
type Contact struct {
	Name          string
	Email         string
	Phone         string
	Location      string
	LinkedInURL   string
	PortfolioURLs []string
}

// nameFalsePositives are tokens that disqualify a line from being the
// candidate's name: document headers, job titles and contact labels.
var nameFalsePositives = []string{
	"resume", "curriculum", "vitae", "cv", "profile", "personal information",
	"engineer", "architect", "developer", "consultant", "manager", "director",
	"technician", "specialist", "surveyor", "modeler", "designer", "coordinator",
	"university", "school", "college", "institute",
	"address", "phone", "email", "contact", "linkedin",
}

// ExtractContact recovers contact fields. Name detection scans the
// preamble lines; email, phone and URLs scan the full text since OCR
// frequently relocates them.
func ExtractContact(preamble []string, fullText string) Contact {
	c := Contact{
		Email: extractEmail(fullText),
		Phone: extractPhone(fullText),
	}
	c.Name = extractName(preamble)
	c.Location = extractLocation(preamble, fullText)

	for _, url := range urlRe.FindAllString(fullText, -1) {
		lower := strings.ToLower(url)
		switch {
		case strings.Contains(lower, "linkedin.com"):
			if c.LinkedInURL == "" {
				c.LinkedInURL = url
			}
		default:
			c.PortfolioURLs = append(c.PortfolioURLs, url)
		}
	}
	return c
}

// extractEmail returns the first syntactically valid address; on
// ambiguity the first match wins.
func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhone returns the first plausible phone number, reduced to
// digits plus an optional leading international prefix.
func extractPhone(text string) string {
	for _, raw := range phoneRe.FindAllString(text, -1) {
		var b strings.Builder
		for i, r := range raw {
			if r >= '0' && r <= '9' || (r == '+' && i == 0 && b.Len() == 0) {
				b.WriteRune(r)
			}
		}
		cleaned := b.String()
		if len(strings.TrimPrefix(cleaned, "+")) >= 10 {
			return cleaned
		}
	}
	return ""
}

// extractName returns the first preamble line that looks like a person's
// name: 2-5 words, mostly alphabetic, free of header and job-title
// tokens. The result is title-cased for consistency across documents.
func extractName(preamble []string) string {
	limit := min(len(preamble), 15)
	for _, line := range preamble[:limit] {
		if len(line) == 0 || len(line) >= 60 {
			continue
		}
		lower := strings.ToLower(line)
		if containsAnyToken(lower, nameFalsePositives) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 5 {
			continue
		}
		alpha := make([]string, 0, len(words))
		for _, w := range words {
			if alphaWordRe.MatchString(w) {
				alpha = append(alpha, w)
			}
		}
		if len(alpha) >= 2 {
			return titleCaseWords(strings.Join(alpha, " "))
		}
	}
	return ""
}

// extractLocation prefers an explicit label, then the first
// "City, Country" pattern anywhere in the text.
func extractLocation(preamble []string, fullText string) string {
	for _, line := range preamble {
		if m := locationLabel.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if m := cityCountryRe.FindStringSubmatch(fullText); m != nil {
		return m[1] + ", " + m[2]
	}
	return ""
}

func containsAnyToken(lower string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func titleCaseWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ExtractSummary collects up to three preamble lines of at least eight
// words, skipping contact noise, and joins them into a summary string.
func ExtractSummary(preamble []string) string {
	var summary []string
	ignore := []string{"phone", "email", "linkedin", "dob", "nationality"}

	limit := min(len(preamble), 15)
	for _, line := range preamble[:limit] {
		lower := strings.ToLower(line)
		if containsAnyToken(lower, ignore) {
			continue
		}
		if len(strings.Fields(line)) >= 8 {
			summary = append(summary, line)
		}
		if len(summary) >= 3 {
			break
		}
	}
	return strings.Join(summary, " ")
}
