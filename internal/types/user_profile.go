// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// PresentEndDate is the literal end date used for a position that is still held.
const PresentEndDate = "Present"

// UserProfile represents a parsed candidate profile. It is read-only to the matcher.
type UserProfile struct {
	PersonalInfo map[string]any    `json:"personal_info,omitempty"`
	Summary      string            `json:"summary,omitempty"`
	Skills       []Skill           `json:"skills" validate:"dive"`
	Experience   []ExperienceEntry `json:"experience" validate:"dive"`
	Education    []EducationEntry  `json:"education" validate:"dive"`
}

// Skill represents a single declared skill
type Skill struct {
	Name            string   `json:"name" validate:"required"`
	Proficiency     *int     `json:"proficiency,omitempty" validate:"omitempty,min=1,max=5"` // 1-5 scale
	YearsExperience *float64 `json:"years_experience,omitempty" validate:"omitempty,gte=0"`
}

// ExperienceEntry represents one position in the candidate's work history
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"` // "Present" allowed; empty is treated the same way
	// DurationYears overrides the duration derived from StartDate/EndDate when set.
	DurationYears *float64 `json:"duration_years,omitempty" validate:"omitempty,gte=0"`
}

// EducationEntry represents one degree or program in the candidate's education history
type EducationEntry struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"` // Free text, e.g. "Master of Science in Computer Science"
	FieldOfStudy string   `json:"field_of_study,omitempty"`
	GPA          *float64 `json:"gpa,omitempty" validate:"omitempty,gte=0"`
}

// SkillNames returns the declared skill names in profile order.
func (p *UserProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}

// Validate validates the UserProfile using the validator.
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
