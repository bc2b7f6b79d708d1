package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmbeddingsDisabled is returned when the configuration turns embeddings off
var ErrEmbeddingsDisabled = errors.New("embeddings are disabled")

// contentEmbedder is the subset of *genai.EmbeddingModel used by GeminiEmbedder
type contentEmbedder interface {
	EmbedContent(ctx context.Context, parts ...genai.Part) (*genai.EmbedContentResponse, error)
}

// GeminiEmbedder encodes text with a Gemini embedding model.
// It is safe for concurrent use.
type GeminiEmbedder struct {
	client *genai.Client
	model  contentEmbedder
	name   string
}

// NewEmbedder creates an embedder based on configuration
func NewEmbedder(ctx context.Context, config *Config, apiKey string) (*GeminiEmbedder, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderNone:
		return nil, ErrEmbeddingsDisabled
	case ProviderGemini, "":
		return NewGeminiEmbedder(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %q", config.Provider)
	}
}

// NewGeminiEmbedder creates a new Gemini embedder
func NewGeminiEmbedder(ctx context.Context, config *Config, apiKey string) (*GeminiEmbedder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	name := config.GetEmbeddingModel()
	model := client.EmbeddingModel(name)
	model.TaskType = config.GetTaskType()

	return &GeminiEmbedder{
		client: client,
		model:  model,
		name:   name,
	}, nil
}

// Embed returns the embedding vector for text
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	resp, err := e.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}

	return extractValues(resp)
}

// ModelName returns the embedding model identifier for logging
func (e *GeminiEmbedder) ModelName() string {
	return e.name
}

// Close releases resources held by the embedder
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// extractValues pulls the vector out of a Gemini embedding response
func extractValues(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil || resp.Embedding == nil {
		return nil, fmt.Errorf("no embedding in response")
	}
	if len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}
	return resp.Embedding.Values, nil
}
