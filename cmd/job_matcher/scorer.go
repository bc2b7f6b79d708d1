package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/llm"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/similarity"
)

// embeddingCacheSize bounds the number of vectors kept per run
const embeddingCacheSize = 4096

// newScorer builds the similarity scorer for a run. Missing credentials or a provider that
// cannot be created put the scorer in fallback mode instead of failing the command.
// The returned close function is always safe to call.
func newScorer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*similarity.Scorer, func()) {
	opts := []similarity.Option{
		similarity.WithTimeout(cfg.Timeout(similarity.DefaultTimeout)),
		similarity.WithCache(similarity.NewCache(embeddingCacheSize)),
	}

	llmConfig := llm.DefaultConfig().WithEmbeddingModel(cfg.EmbeddingModel)
	apiKey := cfg.ResolveAPIKey()
	if cfg.DisableEmbeddings || apiKey == "" {
		llmConfig.Provider = llm.ProviderNone
	}
	log = logger.WithFields(log, logger.EmbeddingFields(string(llmConfig.Provider), llmConfig.GetEmbeddingModel())...)

	embedder, err := llm.NewEmbedder(ctx, llmConfig, apiKey)
	if err != nil {
		if errors.Is(err, llm.ErrEmbeddingsDisabled) {
			log.Info("embeddings disabled, semantic scores use the neutral value")
		} else {
			log.Warn("embedding provider unavailable, using fallback similarity", zap.Error(err))
		}
		return similarity.NewFallbackScorer(append(opts, similarity.WithLogger(log))...), func() {}
	}

	log.Debug("embedding provider ready")
	scorer := similarity.NewScorer(embedder, append(opts, similarity.WithLogger(log))...)
	return scorer, func() { _ = embedder.Close() }
}
