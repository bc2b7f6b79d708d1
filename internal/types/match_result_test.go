package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceMatch_ZeroYearsAreSerialised(t *testing.T) {
	match := ExperienceMatch{Type: ExperienceMatchYears, Score: 1.0, Match: true}

	data, err := json.Marshal(match)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Contains(t, fields, "job_requirement")
	assert.Contains(t, fields, "user_experience")
	assert.Equal(t, 0.0, fields["job_requirement"])
}

func TestJobListing_CloneKeepsEmptySkills(t *testing.T) {
	job := JobListing{Title: "Developer", Skills: []string{}}

	clone := job.Clone()
	assert.NotNil(t, clone.Skills)
	assert.Empty(t, clone.Skills)

	assert.Nil(t, JobListing{Title: "Developer"}.Clone().Skills)
}
