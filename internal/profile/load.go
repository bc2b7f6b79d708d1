package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-matcher/internal/types"
)

// jobListingsEnvelope is the object form of a job listings file
type jobListingsEnvelope struct {
	Jobs []types.JobListing `json:"jobs"`
}

// LoadUserProfile loads and validates a candidate profile from a JSON file
func LoadUserProfile(path string) (*types.UserProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var profile types.UserProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := profile.Validate(); err != nil {
		return nil, &LoadError{
			Message: "invalid user profile",
			Cause:   err,
		}
	}

	return &profile, nil
}

// LoadJobListings loads job listings from a JSON file holding either an array
// of listings or an object with a "jobs" array. Every listing is validated.
func LoadJobListings(path string) ([]types.JobListing, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	jobs, err := decodeJobListings(content)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("invalid job listing at index %d", i),
				Cause:   err,
			}
		}
	}

	return jobs, nil
}

func decodeJobListings(content []byte) ([]types.JobListing, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope jobListingsEnvelope
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		if envelope.Jobs == nil {
			return []types.JobListing{}, nil
		}
		return envelope.Jobs, nil
	}

	var jobs []types.JobListing
	if err := json.Unmarshal(trimmed, &jobs); err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []types.JobListing{}
	}
	return jobs, nil
}
