package similarity

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// ProfileText aggregates the summary, every experience description and every skill name.
func ProfileText(profile *types.UserProfile) string {
	parts := make([]string, 0, 2+len(profile.Experience))
	if profile.Summary != "" {
		parts = append(parts, profile.Summary)
	}
	for _, exp := range profile.Experience {
		if exp.Description != "" {
			parts = append(parts, exp.Description)
		}
	}
	parts = append(parts, strings.Join(profile.SkillNames(), " "))
	return strings.Join(parts, " ")
}

// JobText aggregates the job title and description.
func JobText(job *types.JobListing) string {
	return strings.TrimSpace(job.Title + " " + job.Description)
}
