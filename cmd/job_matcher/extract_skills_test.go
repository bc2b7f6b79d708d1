package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetExtractSkills(t *testing.T) {
	t.Helper()
	resetFlags(t, extractSkillsCmd)
}

func TestExtractSkillsCommand_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	jobsPath := writeFixture(t, dir, "jobs.json", testJobsJSON)
	outPath := filepath.Join(dir, "skills.json")

	resetExtractSkills(t)
	setFlags(t, extractSkillsCmd, "jobs", jobsPath, "out", outPath)
	output := captureOutput(extractSkillsCmd)

	require.NoError(t, runExtractSkills(extractSkillsCmd, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var entries []jobSkills
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 3)

	assert.Equal(t, "disjoint", entries[0].ID)
	assert.True(t, entries[0].Explicit)
	assert.Equal(t, []string{"Rust", "Haskell", "Erlang", "Elixir"}, entries[0].Skills)

	assert.False(t, entries[2].Explicit)
	assert.NotEmpty(t, entries[2].ID)
	assert.Equal(t, []string{"Python", "SQL"}, entries[2].Skills)

	assert.Contains(t, output.String(), "Successfully extracted skills for 3 jobs")
}

func TestExtractSkillsCommand_PrintsToStdout(t *testing.T) {
	dir := t.TempDir()
	jobsPath := writeFixture(t, dir, "jobs.json", testJobsJSON)

	resetExtractSkills(t)
	setFlags(t, extractSkillsCmd, "jobs", jobsPath)
	output := captureOutput(extractSkillsCmd)

	require.NoError(t, runExtractSkills(extractSkillsCmd, nil))

	assert.Contains(t, output.String(), "match\tSoftware Engineer\t[Python JavaScript React Django]")
}

func TestExtractSkillsCommand_Verbose(t *testing.T) {
	dir := t.TempDir()
	jobsPath := writeFixture(t, dir, "jobs.json", testJobsJSON)

	resetExtractSkills(t)
	setFlags(t, extractSkillsCmd, "jobs", jobsPath, "verbose", "true")
	output := captureOutput(extractSkillsCmd)

	require.NoError(t, runExtractSkills(extractSkillsCmd, nil))

	assert.Contains(t, output.String(), "extracted from description")
	assert.Contains(t, output.String(), "• SQL")
}

func TestExtractSkillsCommand_MissingFile(t *testing.T) {
	resetExtractSkills(t)
	setFlags(t, extractSkillsCmd, "jobs", filepath.Join(t.TempDir(), "missing.json"))
	captureOutput(extractSkillsCmd)

	err := runExtractSkills(extractSkillsCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load job listings")
}
