package profile

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/ingestion"
	"github.com/jonathan/job-matcher/internal/types"
)

// generatedIDLength is the number of hash characters used for generated listing IDs
const generatedIDLength = 12

// NormalizeJob cleans a listing in place: HTML descriptions are converted to text,
// skills are canonicalised and deduplicated, and a stable ID is derived from the content when missing.
func NormalizeJob(job *types.JobListing) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)

	if ingestion.LooksLikeHTML(job.Description) {
		text, err := ingestion.HTMLToText(job.Description)
		if err != nil {
			return &NormalizationError{
				Message: fmt.Sprintf("failed to convert HTML description of %q", job.Title),
				Cause:   err,
			}
		}
		job.Description = text
	} else {
		job.Description = ingestion.CleanText(job.Description)
	}

	// Explicit skills are not passed through verbatim: aliases are rewritten and duplicates
	// dropped, so the skill score's denominator counts distinct canonical skills.
	job.Skills = normalizeSkillNames(job.Skills)

	if job.ID == "" {
		hash := ingestion.ContentHash(job.Title + "\n" + job.Company + "\n" + job.Description)
		job.ID = "job_" + hash[:generatedIDLength]
	}

	return nil
}

// NormalizeJobs applies NormalizeJob to every listing
func NormalizeJobs(jobs []types.JobListing) error {
	for i := range jobs {
		if err := NormalizeJob(&jobs[i]); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeProfile canonicalises skill names and drops blank or duplicate skills, keeping the first occurrence.
func NormalizeProfile(profile *types.UserProfile) {
	skills := make([]types.Skill, 0, len(profile.Skills))
	seen := make(map[string]struct{})
	for _, skill := range profile.Skills {
		skill.Name = CanonicalSkill(skill.Name)
		key := strings.ToLower(skill.Name)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, skill)
	}
	profile.Skills = skills
}

// normalizeSkillNames canonicalises names and removes empty and case-insensitive duplicates.
// A nil input stays nil so listings without explicit skills keep falling back to extraction;
// an explicit empty list stays empty and non-nil.
func normalizeSkillNames(names []string) []string {
	if names == nil {
		return nil
	}
	normalized := make([]string, 0, len(names))
	seen := make(map[string]struct{})
	for _, name := range names {
		name = CanonicalSkill(name)
		key := strings.ToLower(name)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; !exists {
			normalized = append(normalized, name)
			seen[key] = struct{}{}
		}
	}
	return normalized
}
