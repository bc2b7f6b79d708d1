package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testProfileJSON = `{
	"summary": "Full stack developer building web applications",
	"skills": [
		{"name": "Python"}, {"name": "JavaScript"}, {"name": "React"}, {"name": "Django"},
		{"name": "Flask"}, {"name": "SQL"}, {"name": "Git"}
	],
	"experience": [
		{"title": "Software Engineer", "company": "Acme", "description": "Built Django services", "start_date": "2018", "end_date": "2024"}
	],
	"education": [
		{"institution": "State University", "degree": "Master of Science", "field_of_study": "Computer Science"}
	]
}`

const testJobsJSON = `[
	{
		"id": "disjoint",
		"title": "Software Engineer",
		"company": "Widgets Inc",
		"description": "We are hiring. 5+ years experience. Bachelor's degree required.",
		"skills": ["Rust", "Haskell", "Erlang", "Elixir"]
	},
	{
		"id": "match",
		"title": "Software Engineer",
		"company": "Widgets Inc",
		"description": "<p>We are hiring. 5+ years experience. Bachelor's degree required.</p>",
		"skills": ["Python", "JavaScript", "React", "Django"]
	},
	{
		"title": "Backend Developer",
		"company": "Gadgets",
		"description": "Requirements:\n- Python\n- SQL\n\nGreat benefits."
	}
]`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores every flag of cmd to its default and clears its changed state
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

// setFlags applies name/value pairs the way the command line would
func setFlags(t *testing.T, cmd *cobra.Command, pairs ...string) {
	t.Helper()
	require.Zero(t, len(pairs)%2, "flags must be name/value pairs")
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, cmd.Flags().Set(pairs[i], pairs[i+1]))
	}
}

// captureOutput points the command's output at a buffer
func captureOutput(cmd *cobra.Command) *bytes.Buffer {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	return &buf
}
