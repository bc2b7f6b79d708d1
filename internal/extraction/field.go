package extraction

import (
	"regexp"
	"strings"
)

// commonFields are the fields of study a requirement can name; order decides ties.
var commonFields = []string{
	"computer science", "information technology", "software engineering",
	"data science", "mathematics", "statistics", "business",
	"engineering", "economics", "finance", "accounting",
	"marketing", "psychology", "biology", "chemistry", "physics",
}

var fieldPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)degree in ([\w\s]+)`),
	regexp.MustCompile(`(?i)([\w\s]+) degree`),
	regexp.MustCompile(`(?i)background in ([\w\s]+)`),
	regexp.MustCompile(`(?i)([\w\s]+) background`),
}

// FieldExtractor finds the field of study a job description asks for
type FieldExtractor struct {
	patterns []*regexp.Regexp
	fields   []string
}

// NewFieldExtractor creates a FieldExtractor with the default patterns and field list.
func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{patterns: fieldPatterns, fields: commonFields}
}

// Extract returns the required field as a single candidate, or an empty slice.
func (e *FieldExtractor) Extract(text string) []string {
	if field := e.RequiredField(text); field != "" {
		return []string{field}
	}
	return []string{}
}

// RequiredField returns a known field of study named by a "degree in X" style phrase,
// falling back to any known field mentioned anywhere in the description.
func (e *FieldExtractor) RequiredField(description string) string {
	for _, re := range e.patterns {
		m := re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		phrase := strings.ToLower(m[1])
		for _, field := range e.fields {
			if strings.Contains(phrase, field) {
				return field
			}
		}
	}

	lower := strings.ToLower(description)
	for _, field := range e.fields {
		if strings.Contains(lower, field) {
			return field
		}
	}
	return ""
}
