package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// requiredYearsPatterns are tried in order; the first pattern that matches decides the requirement.
var requiredYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years|yrs)(?:\s*of)?\s*experience`),
	regexp.MustCompile(`(?i)experience\s*(?:of)?\s*(\d+)\+?\s*(?:years|yrs)`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years|yrs)(?:\s*of)?\s*work\s*experience`),
	regexp.MustCompile(`(?i)minimum\s*(?:of)?\s*(\d+)\s*(?:years|yrs)`),
}

var yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// YearsExtractor finds the minimum years of experience stated in a job description
type YearsExtractor struct {
	patterns []*regexp.Regexp
}

// NewYearsExtractor creates a YearsExtractor with the default pattern table.
func NewYearsExtractor() *YearsExtractor {
	return &YearsExtractor{patterns: requiredYearsPatterns}
}

// Extract returns the year counts captured by every pattern that matches, in pattern order.
func (e *YearsExtractor) Extract(text string) []string {
	candidates := []string{}
	for _, re := range e.patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			candidates = append(candidates, m[1])
		}
	}
	return candidates
}

// RequiredYears returns the first stated experience requirement, or 0 when none is stated.
func (e *YearsExtractor) RequiredYears(text string) int {
	for _, candidate := range e.Extract(text) {
		if years, err := strconv.Atoi(candidate); err == nil {
			return years
		}
	}
	return 0
}

// ExtractYear returns the first 4-digit year (19xx or 20xx) in s.
func ExtractYear(s string) (int, bool) {
	match := yearPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}

// EntryYears returns the duration of an experience entry in years.
// A precomputed DurationYears wins; otherwise the end year minus the start year is used,
// with "Present" (or no end date) meaning currentYear. Entries without a start year count as 0.
func EntryYears(entry types.ExperienceEntry, currentYear int) float64 {
	if entry.DurationYears != nil {
		return *entry.DurationYears
	}

	if strings.TrimSpace(entry.StartDate) == "" {
		return 0.0
	}
	startYear, ok := ExtractYear(entry.StartDate)
	if !ok {
		return 0.0
	}

	endYear := currentYear
	if end := strings.TrimSpace(entry.EndDate); end != "" && !strings.EqualFold(end, types.PresentEndDate) {
		endYear, ok = ExtractYear(end)
		if !ok {
			return 0.0
		}
	}

	if endYear < startYear {
		return 0.0
	}
	return float64(endYear - startYear)
}

// TotalYears sums EntryYears over a work history.
func TotalYears(entries []types.ExperienceEntry, currentYear int) float64 {
	total := 0.0
	for _, entry := range entries {
		total += EntryYears(entry, currentYear)
	}
	return total
}
