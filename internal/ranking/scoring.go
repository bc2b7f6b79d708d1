package ranking

import (
	"context"
	"strings"

	"github.com/jonathan/job-matcher/internal/extraction"
	"github.com/jonathan/job-matcher/internal/similarity"
	"github.com/jonathan/job-matcher/internal/types"
)

// computeSkillScore compares the profile's skills with the job's required skills.
// Returns the fraction of required skills covered, weighted by match confidence, and the match records.
func computeSkillScore(profileSkills []types.Skill, jobSkills []string) (float64, []types.SkillMatchRecord) {
	matches := []types.SkillMatchRecord{}

	// Lower-cased profile skills, in profile order for partial matching
	userSkills := make([]string, 0, len(profileSkills))
	userSkillSet := make(map[string]bool, len(profileSkills))
	for _, skill := range profileSkills {
		name := strings.ToLower(strings.TrimSpace(skill.Name))
		if name == "" || userSkillSet[name] {
			continue
		}
		userSkills = append(userSkills, name)
		userSkillSet[name] = true
	}

	required := make([]string, 0, len(jobSkills))
	for _, skill := range jobSkills {
		if s := strings.TrimSpace(skill); s != "" {
			required = append(required, s)
		}
	}

	if len(required) == 0 || len(userSkills) == 0 {
		return 0.0, matches
	}

	total := 0.0
	for _, jobSkill := range required {
		jobSkillLower := strings.ToLower(jobSkill)

		if userSkillSet[jobSkillLower] {
			matches = append(matches, types.SkillMatchRecord{
				Skill:     jobSkill,
				MatchType: types.MatchTypeExact,
				Score:     types.ExactMatchScore,
			})
			total += types.ExactMatchScore
			continue
		}

		for _, userSkill := range userSkills {
			if strings.Contains(userSkill, jobSkillLower) || strings.Contains(jobSkillLower, userSkill) {
				matches = append(matches, types.SkillMatchRecord{
					Skill:     jobSkill,
					MatchType: types.MatchTypePartial,
					Score:     types.PartialMatchScore,
				})
				total += types.PartialMatchScore
				break
			}
		}
	}

	return clampScore(total / float64(len(required))), matches
}

// computeExperienceScore scores accumulated years against the stated requirement and past titles against the job title.
func (m *Matcher) computeExperienceScore(ctx context.Context, experience []types.ExperienceEntry, job *types.JobListing) (float64, []types.ExperienceMatch) {
	if len(experience) == 0 {
		return 0.0, []types.ExperienceMatch{}
	}

	requiredYears := float64(m.years.RequiredYears(job.Description))
	totalYears := extraction.TotalYears(experience, m.config.CurrentYear)

	yearsMatch := types.ExperienceMatch{
		Type:           types.ExperienceMatchYears,
		JobRequirement: requiredYears,
		UserExperience: totalYears,
		Score:          1.0,
		Match:          true,
	}
	if requiredYears > 0 && totalYears < requiredYears {
		// Linear partial credit below the requirement
		yearsMatch.Score = clampScore(totalYears / requiredYears)
		yearsMatch.Match = false
	}

	matches := []types.ExperienceMatch{yearsMatch}

	// Title relevance
	jobTitle := strings.ToLower(strings.TrimSpace(job.Title))
	if jobTitle != "" {
		var titleMatches []types.TitleMatch
		best := 0.0
		for _, exp := range experience {
			userTitle := strings.ToLower(strings.TrimSpace(exp.Title))
			if userTitle == "" {
				continue
			}
			sim := m.scorer.Similarity(ctx, userTitle, jobTitle)
			if sim > m.config.TitleMatchThreshold {
				titleMatches = append(titleMatches, types.TitleMatch{UserTitle: exp.Title, Similarity: sim})
				best = max(best, sim)
			}
		}
		if len(titleMatches) > 0 {
			matches = append(matches, types.ExperienceMatch{
				Type:    types.ExperienceMatchTitle,
				Matches: titleMatches,
				Score:   best,
				Match:   true,
			})
		}
	}

	return meanExperienceScore(matches), matches
}

// computeEducationScore scores the candidate's highest degree and fields of study against the job description.
func (m *Matcher) computeEducationScore(ctx context.Context, education []types.EducationEntry, description string) (float64, []types.EducationMatch) {
	if len(education) == 0 {
		return 0.0, []types.EducationMatch{}
	}

	requiredDegree := m.degrees.RequiredDegree(description)
	requiredField := m.fields.RequiredField(description)
	highestDegree := m.degrees.HighestDegree(education)

	degreeMatch := types.EducationMatch{
		Type:           types.EducationMatchDegree,
		JobRequirement: requiredDegree,
		UserDegree:     highestDegree,
		Score:          1.0,
		Match:          true,
	}
	if requiredDegree != extraction.DegreeNone && !extraction.DegreeSufficient(highestDegree, requiredDegree) {
		degreeMatch.Score = 0.0
		degreeMatch.Match = false
	}

	matches := []types.EducationMatch{degreeMatch}

	if requiredField != "" {
		fieldMatch := types.EducationMatch{
			Type:           types.EducationMatchField,
			JobRequirement: requiredField,
			UserFields:     []types.FieldSimilarity{},
		}
		for _, edu := range education {
			userField := strings.ToLower(strings.TrimSpace(edu.FieldOfStudy))
			if userField == "" {
				continue
			}
			sim := m.scorer.Similarity(ctx, userField, requiredField)
			fieldMatch.UserFields = append(fieldMatch.UserFields, types.FieldSimilarity{
				Field:      edu.FieldOfStudy,
				Similarity: sim,
			})
			fieldMatch.Score = max(fieldMatch.Score, sim)
		}
		fieldMatch.Match = fieldMatch.Score > m.config.FieldMatchThreshold
		matches = append(matches, fieldMatch)
	}

	total := 0.0
	for _, match := range matches {
		total += match.Score
	}
	return clampScore(total / float64(len(matches))), matches
}

// computeSemanticScore compares the aggregated profile text with the job's title and description.
func (m *Matcher) computeSemanticScore(ctx context.Context, profileText string, job *types.JobListing) float64 {
	return clampScore(m.scorer.ProfileSimilarity(ctx, profileText, similarity.JobText(job)))
}

func meanExperienceScore(matches []types.ExperienceMatch) float64 {
	if len(matches) == 0 {
		return 0.0
	}
	total := 0.0
	for _, match := range matches {
		total += match.Score
	}
	return clampScore(total / float64(len(matches)))
}
