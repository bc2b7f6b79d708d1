package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"embedding_model": "text-embedding-004",
		"embedding_timeout": "3s",
		"weights": {"skill": 0.6, "experience": 0.2, "education": 0.2},
		"semantic_blend": 0.25,
		"current_year": 2026,
		"workers": 4,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.Equal(t, "3s", cfg.EmbeddingTimeout)
	require.NotNil(t, cfg.Weights)
	assert.Equal(t, 0.6, cfg.Weights.Skill)
	require.NotNil(t, cfg.SemanticBlend)
	assert.Equal(t, 0.25, *cfg.SemanticBlend)
	assert.Equal(t, 2026, cfg.CurrentYear)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{Workers: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workers")

	cfg = &Config{Top: -3}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "top")
}

func TestValidate_InvalidTimeout(t *testing.T) {
	cfg := &Config{EmbeddingTimeout: "soon"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{EmbeddingTimeout: "-2s"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_WeightsMustSumToOne(t *testing.T) {
	cfg := &Config{Weights: &ranking.Weights{Skill: 0.5, Experience: 0.5, Education: 0.5}}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestValidate_BlendOutOfRange(t *testing.T) {
	blend := 1.5
	cfg := &Config{SemanticBlend: &blend}

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Profile: "/nonexistent/profile.json"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "profile file not found")

	cfg = &Config{Jobs: "/nonexistent/jobs.json"}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jobs file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{Workers: 2, Top: 10, EmbeddingTimeout: "500ms"}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	blend := 0.1
	defaults := Config{
		Out:            "results.json",
		EmbeddingModel: "text-embedding-004",
		Workers:        8,
		SemanticBlend:  &blend,
	}

	partial := Config{
		Profile: "me.json",
		Workers: 2,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "me.json", merged.Profile)
	assert.Equal(t, 2, merged.Workers)

	// Default values should fill in empty fields
	assert.Equal(t, "results.json", merged.Out)
	assert.Equal(t, "text-embedding-004", merged.EmbeddingModel)
	require.NotNil(t, merged.SemanticBlend)
	assert.Equal(t, 0.1, *merged.SemanticBlend)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Jobs: "jobs.json", Top: 5}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "jobs.json", merged.Jobs)
	assert.Equal(t, 5, merged.Top)
	assert.Nil(t, merged.Weights)
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "from-env")

	assert.Equal(t, "from-env", (&Config{}).ResolveAPIKey())
	assert.Equal(t, "from-config", (&Config{APIKey: "from-config"}).ResolveAPIKey())
}

func TestTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, (&Config{}).Timeout(5*time.Second))
	assert.Equal(t, 2*time.Second, (&Config{EmbeddingTimeout: "2s"}).Timeout(5*time.Second))
	assert.Equal(t, 5*time.Second, (&Config{EmbeddingTimeout: "bad"}).Timeout(5*time.Second))
}

func TestRankingConfig(t *testing.T) {
	cfg, err := (&Config{}).RankingConfig()
	require.NoError(t, err)
	assert.Equal(t, ranking.DefaultConfig(), cfg)

	blend := 0.0
	cfg, err = (&Config{
		Weights:       &ranking.Weights{Skill: 1.0},
		SemanticBlend: &blend,
		CurrentYear:   2030,
	}).RankingConfig()
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Weights.Skill)
	assert.Equal(t, 0.0, cfg.SemanticBlend)
	assert.Equal(t, 2030, cfg.CurrentYear)
}
