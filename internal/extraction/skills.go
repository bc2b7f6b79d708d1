package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/job-matcher/internal/types"
)

// maxSkillBulletWords is the longest bullet accepted verbatim as a skill
const maxSkillBulletWords = 5

// skillSectionHeaders are tried in order; the first header found starts the skills section.
var skillSectionHeaders = []string{
	"skills required",
	"required skills",
	"technical skills",
	"qualifications",
	"requirements",
	"you have",
	"you should have",
	"what you'll need",
	"what we're looking for",
}

// techVocabulary is matched against the whole description regardless of section.
var techVocabulary = []string{
	"Python", "Java", "JavaScript", "C#", "C++", "Ruby", "PHP", "Swift",
	"SQL", "HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Django",
	"Flask", "Spring", "ASP.NET", "Express", "TensorFlow", "PyTorch",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Git", "REST", "GraphQL",
}

var (
	bulletLinePattern = regexp.MustCompile(`(?m)^[ \t]*[•\-*][ \t]*(.*?)[ \t]*$`)
	skillCuePattern   = regexp.MustCompile(`(?i)(?:knowledge of|experience with|proficiency in|familiar with)\s+([\w\s,/&+#]+)`)
)

type vocabularyTerm struct {
	name    string
	pattern *regexp.Regexp
}

// SkillExtractor finds required skills in a job description
type SkillExtractor struct {
	sections   []*regexp.Regexp
	vocabulary []vocabularyTerm
}

// NewSkillExtractor creates a SkillExtractor with the default header and technology tables.
func NewSkillExtractor() *SkillExtractor {
	return NewSkillExtractorWithTables(skillSectionHeaders, techVocabulary)
}

// NewSkillExtractorWithTables creates a SkillExtractor with custom section headers and vocabulary.
func NewSkillExtractorWithTables(headers, vocabulary []string) *SkillExtractor {
	e := &SkillExtractor{
		sections:   make([]*regexp.Regexp, 0, len(headers)),
		vocabulary: make([]vocabularyTerm, 0, len(vocabulary)),
	}
	for _, header := range headers {
		e.sections = append(e.sections, regexp.MustCompile(`(?is)`+regexp.QuoteMeta(header)+`:?(.*?)(?:\n\n|\z)`))
	}
	for _, name := range vocabulary {
		e.vocabulary = append(e.vocabulary, vocabularyTerm{name: name, pattern: wordPattern(name)})
	}
	return e
}

// SkillsFor returns the listing's explicit skills when present, otherwise the skills extracted from its description.
// An explicit empty list is authoritative and yields no skills.
func (e *SkillExtractor) SkillsFor(job *types.JobListing) []string {
	if job.Skills != nil {
		return job.Skills
	}
	return e.Extract(job.Description)
}

// Extract returns the de-duplicated union of bullet skills found in the skills section
// and known technology names found anywhere in the description.
func (e *SkillExtractor) Extract(description string) []string {
	if strings.TrimSpace(description) == "" {
		return []string{}
	}

	section := e.skillsSection(description)

	var skills []string
	for _, m := range bulletLinePattern.FindAllStringSubmatch(section, -1) {
		item := strings.TrimSpace(m[1])
		if !hasAlphanumeric(item) {
			continue
		}
		if len(strings.Fields(item)) <= maxSkillBulletWords {
			skills = append(skills, item)
			continue
		}
		// Long bullets only contribute the phrase after a cue like "experience with"
		for _, phrase := range skillCuePattern.FindAllStringSubmatch(item, -1) {
			skills = append(skills, strings.TrimSpace(phrase[1]))
		}
	}

	for _, term := range e.vocabulary {
		if term.pattern.MatchString(description) {
			skills = append(skills, term.name)
		}
	}

	return dedupe(skills)
}

// skillsSection returns the text after the first matching section header, or the whole description.
func (e *SkillExtractor) skillsSection(description string) string {
	for _, re := range e.sections {
		m := re.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		if strings.TrimSpace(m[1]) == "" {
			break
		}
		return m[1]
	}
	return description
}

// wordPattern builds a case-insensitive whole-word pattern for a term that may start or end
// with a symbol (C#, C++, Node.js), where \b alone would never match.
func wordPattern(term string) *regexp.Regexp {
	runes := []rune(term)
	start, end := `\b`, `\b`
	if !isWordRune(runes[0]) {
		start = `(?:^|\W)`
	}
	if !isWordRune(runes[len(runes)-1]) {
		end = `(?:\W|$)`
	}
	return regexp.MustCompile(`(?i)` + start + regexp.QuoteMeta(term) + end)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func hasAlphanumeric(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
