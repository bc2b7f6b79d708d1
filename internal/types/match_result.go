// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchType distinguishes exact from partial skill matches
type MatchType string

const (
	// MatchTypeExact is a case-insensitive equality match
	MatchTypeExact MatchType = "exact"
	// MatchTypePartial is a case-insensitive substring match in either direction
	MatchTypePartial MatchType = "partial"
)

// Fixed confidence per match type.
const (
	ExactMatchScore   = 1.0
	PartialMatchScore = 0.7
)

// Experience and education match record kinds
const (
	ExperienceMatchYears = "years_of_experience"
	ExperienceMatchTitle = "title_match"
	EducationMatchDegree = "degree_match"
	EducationMatchField  = "field_match"
)

// SkillMatchRecord records how one required job skill was covered by the profile
type SkillMatchRecord struct {
	Skill     string    `json:"skill"`
	MatchType MatchType `json:"match_type"`
	Score     float64   `json:"score"`
}

// TitleMatch is a past job title that is similar to the listing's title
type TitleMatch struct {
	UserTitle  string  `json:"user_title"`
	Similarity float64 `json:"similarity"`
}

// ExperienceMatch is one contributing record of the experience score.
// Years records fill JobRequirement/UserExperience; title records fill Matches.
type ExperienceMatch struct {
	Type           string       `json:"type"`
	JobRequirement float64      `json:"job_requirement"`
	UserExperience float64      `json:"user_experience"`
	Matches        []TitleMatch `json:"matches,omitempty"`
	Score          float64      `json:"score"`
	Match          bool         `json:"match"`
}

// FieldSimilarity is the similarity of one education entry's field to the required field
type FieldSimilarity struct {
	Field      string  `json:"field"`
	Similarity float64 `json:"similarity"`
}

// EducationMatch is one contributing record of the education score
type EducationMatch struct {
	Type           string            `json:"type"`
	JobRequirement string            `json:"job_requirement"`
	UserDegree     string            `json:"user_degree,omitempty"`
	UserFields     []FieldSimilarity `json:"user_fields,omitempty"`
	Score          float64           `json:"score"`
	Match          bool              `json:"match"`
}

// MatchDetail explains a match score component by component
type MatchDetail struct {
	SkillScore        float64            `json:"skill_score"`
	SkillMatches      []SkillMatchRecord `json:"skill_matches"`
	ExperienceScore   float64            `json:"experience_score"`
	ExperienceMatches []ExperienceMatch  `json:"experience_matches"`
	EducationScore    float64            `json:"education_score"`
	EducationMatches  []EducationMatch   `json:"education_matches"`
	SemanticScore     float64            `json:"semantic_score"`
	Notes             string             `json:"notes,omitempty"`
}

// MatchResult is a scored copy of a JobListing
type MatchResult struct {
	JobListing
	MatchScore   float64     `json:"match_score"`
	MatchDetails MatchDetail `json:"match_details"`
}

// MatchReport is the envelope written by the match command
type MatchReport struct {
	RunID       string        `json:"run_id"`
	GeneratedAt string        `json:"generated_at"` // RFC3339 format
	Embeddings  bool          `json:"embeddings"`
	TotalJobs   int           `json:"total_jobs"`
	Results     []MatchResult `json:"results"`
}
