package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Degree levels, matching the keys of the degree table
const (
	DegreeNone      = ""
	DegreeAssociate = "associate"
	DegreeBachelor  = "bachelor"
	DegreeMaster    = "master"
	DegreePhD       = "phd"
)

// degreeRank orders degrees for sufficiency comparison only
var degreeRank = map[string]int{
	DegreeNone:      0,
	DegreeAssociate: 1,
	DegreeBachelor:  2,
	DegreeMaster:    3,
	DegreePhD:       4,
}

type degreePatterns struct {
	degree   string
	patterns []*regexp.Regexp
}

// degreeTable is tried in order during extraction; the order carries no seniority.
var degreeTable = []degreePatterns{
	{DegreeBachelor, compileWordPatterns(`bachelor'?s?`, `ba`, `bs`, `b\.a`, `b\.s`, `undergraduate`)},
	{DegreeMaster, compileWordPatterns(`master'?s?`, `ma`, `ms`, `m\.a`, `m\.s`, `graduate`)},
	{DegreePhD, compileWordPatterns(`ph\.?d`, `doctorate`, `doctoral`)},
	{DegreeAssociate, compileWordPatterns(`associate'?s?`, `a\.a`, `a\.s`)},
}

func compileWordPatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)\b` + p + `\b`)
	}
	return compiled
}

// DegreeExtractor recognises degree levels in free text
type DegreeExtractor struct {
	table []degreePatterns
}

// NewDegreeExtractor creates a DegreeExtractor with the default degree table.
func NewDegreeExtractor() *DegreeExtractor {
	return &DegreeExtractor{table: degreeTable}
}

// Extract returns every degree level mentioned in text, in table order.
func (e *DegreeExtractor) Extract(text string) []string {
	degrees := []string{}
	for _, entry := range e.table {
		if matchesAny(entry.patterns, text) {
			degrees = append(degrees, entry.degree)
		}
	}
	return degrees
}

// RequiredDegree returns the first degree level in table order mentioned in a job description,
// or DegreeNone when no degree is mentioned.
func (e *DegreeExtractor) RequiredDegree(description string) string {
	for _, entry := range e.table {
		if matchesAny(entry.patterns, description) {
			return entry.degree
		}
	}
	return DegreeNone
}

// HighestDegree returns the highest ranked degree held across the education entries.
func (e *DegreeExtractor) HighestDegree(education []types.EducationEntry) string {
	highest := DegreeNone
	for _, edu := range education {
		text := strings.ToLower(edu.Degree)
		if strings.TrimSpace(text) == "" {
			continue
		}
		for _, entry := range e.table {
			if degreeRank[entry.degree] <= degreeRank[highest] {
				continue
			}
			if strings.Contains(text, entry.degree) || matchesAny(entry.patterns, text) {
				highest = entry.degree
			}
		}
	}
	return highest
}

// DegreeRank returns the position of a degree in the hierarchy; unknown degrees rank as none.
func DegreeRank(degree string) int {
	return degreeRank[strings.ToLower(strings.TrimSpace(degree))]
}

// DegreeSufficient reports whether the candidate's degree meets the required one.
// No requirement is always met.
func DegreeSufficient(candidate, required string) bool {
	return DegreeRank(candidate) >= DegreeRank(required)
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
