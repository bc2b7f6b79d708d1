package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// generateNotes creates a brief explanation of a match.
func generateNotes(detail *types.MatchDetail) string {
	var parts []string

	// Skill match description
	matched := make([]string, 0, len(detail.SkillMatches))
	for _, m := range detail.SkillMatches {
		matched = append(matched, m.Skill)
	}
	switch {
	case len(matched) == 0:
		parts = append(parts, "No skill matches")
	case detail.SkillScore >= 0.7:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(matched, ", ")))
	case detail.SkillScore >= 0.4:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(matched, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(matched, ", ")))
	}

	for _, m := range detail.ExperienceMatches {
		switch m.Type {
		case types.ExperienceMatchYears:
			if m.Match {
				parts = append(parts, "Meets experience requirement")
			} else {
				parts = append(parts, fmt.Sprintf("Below experience requirement (%.1f of %.0f years)", m.UserExperience, m.JobRequirement))
			}
		case types.ExperienceMatchTitle:
			parts = append(parts, "Relevant past title")
		}
	}

	for _, m := range detail.EducationMatches {
		switch {
		case m.Type == types.EducationMatchDegree && !m.Match:
			parts = append(parts, fmt.Sprintf("Degree below %s requirement", m.JobRequirement))
		case m.Type == types.EducationMatchField && m.Match:
			parts = append(parts, fmt.Sprintf("Field matches %s", m.JobRequirement))
		}
	}

	return strings.Join(parts, ". ")
}
