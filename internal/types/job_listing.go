// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// JobListing represents a job posting to be scored against a profile.
// When Skills is present, even as an empty list, it is authoritative and no skills are extracted from Description.
// A nil Skills means the listing declared none.
type JobListing struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location,omitempty"`
	Description    string   `json:"description"`
	Skills         []string `json:"skills" validate:"omitempty,dive,required"`
	JobType        string   `json:"job_type,omitempty"`
	Salary         string   `json:"salary,omitempty"`
	SourcePlatform string   `json:"source_platform,omitempty"`
	URL            string   `json:"url,omitempty" validate:"omitempty,url"`
}

// Clone returns a deep copy of the listing so results never alias caller data.
func (j JobListing) Clone() JobListing {
	clone := j
	if j.Skills != nil {
		clone.Skills = make([]string, len(j.Skills))
		copy(clone.Skills, j.Skills)
	}
	return clone
}

// Validate validates the JobListing using the validator.
func (j *JobListing) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
