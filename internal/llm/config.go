// Package llm provides centralized model configuration and the embedding provider used for semantic similarity.
// This package enables easy switching between embedding models and future multi-provider support.
package llm

import "github.com/google/generative-ai-go/genai"

// Provider represents an embedding provider
type Provider string

// Provider constants define supported embedding providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderNone disables embeddings; similarity runs in fallback mode
	ProviderNone Provider = "none"
)

// DefaultEmbeddingModel is the Gemini embedding model used when none is configured
const DefaultEmbeddingModel = "text-embedding-004"

// DefaultTaskType tunes embeddings for comparing texts with each other
const DefaultTaskType = genai.TaskTypeSemanticSimilarity

// Config holds the embedding model configuration for the application
type Config struct {
	Provider       Provider
	EmbeddingModel string
	TaskType       genai.TaskType
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:       ProviderGemini,
		EmbeddingModel: DefaultEmbeddingModel,
		TaskType:       DefaultTaskType,
	}
}

// GetEmbeddingModel returns the configured embedding model, falling back to the default
func (c *Config) GetEmbeddingModel() string {
	if c == nil || c.EmbeddingModel == "" {
		return DefaultEmbeddingModel
	}
	return c.EmbeddingModel
}

// GetTaskType returns the configured task type, falling back to the default
func (c *Config) GetTaskType() genai.TaskType {
	if c == nil || c.TaskType == genai.TaskTypeUnspecified {
		return DefaultTaskType
	}
	return c.TaskType
}

// WithEmbeddingModel returns a new Config with a specific embedding model
func (c *Config) WithEmbeddingModel(model string) *Config {
	return &Config{
		Provider:       c.Provider,
		EmbeddingModel: model,
		TaskType:       c.TaskType,
	}
}
