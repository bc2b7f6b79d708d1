// Package similarity scores text-to-text similarity using an injected embedding provider,
// degrading to lexical word overlap when the provider is missing or fails.
package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/logger"
)

const (
	// DefaultTimeout bounds a single embedding call
	DefaultTimeout = 5 * time.Second
	// NeutralScore is returned for whole-profile similarity when no embedder is configured
	NeutralScore = 0.5

	logTextLimit = 60
)

// Embedder encodes text into a vector. Implementations must be safe for concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Scorer computes similarity between texts
type Scorer struct {
	embedder Embedder
	cache    *Cache
	timeout  time.Duration
	neutral  float64
	logger   *zap.Logger
}

// Option configures a Scorer
type Option func(*Scorer)

// WithTimeout sets the per-call embedding timeout
func WithTimeout(timeout time.Duration) Option {
	return func(s *Scorer) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithLogger sets the logger used to report embedding failures
func WithLogger(log *zap.Logger) Option {
	return func(s *Scorer) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithCache memoises embeddings in the given cache
func WithCache(cache *Cache) Option {
	return func(s *Scorer) {
		s.cache = cache
	}
}

// WithNeutralScore overrides the whole-profile score used when no embedder is configured
func WithNeutralScore(score float64) Option {
	return func(s *Scorer) {
		s.neutral = clamp(score)
	}
}

// NewScorer creates a Scorer. A nil embedder puts the scorer in fallback mode for its lifetime.
func NewScorer(embedder Embedder, opts ...Option) *Scorer {
	s := &Scorer{
		embedder: embedder,
		timeout:  DefaultTimeout,
		neutral:  NeutralScore,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFallbackScorer creates a Scorer without an embedding provider.
func NewFallbackScorer(opts ...Option) *Scorer {
	return NewScorer(nil, opts...)
}

// Available reports whether an embedding provider is configured.
func (s *Scorer) Available() bool {
	return s != nil && s.embedder != nil
}

// Similarity returns the similarity of a and b in [0,1]. It uses embeddings when available
// and falls back to lexical overlap when they are not or when the provider fails.
func (s *Scorer) Similarity(ctx context.Context, a, b string) float64 {
	if !s.Available() {
		return Lexical(a, b)
	}

	score, err := s.embeddingSimilarity(ctx, a, b)
	if err != nil {
		s.logger.Warn("embedding similarity failed, using lexical overlap",
			zap.Error(err),
			zap.String("text_a", logger.TruncateForLog(a, logTextLimit)),
			zap.String("text_b", logger.TruncateForLog(b, logTextLimit)),
		)
		return Lexical(a, b)
	}
	return score
}

// ProfileSimilarity returns the similarity of the aggregated profile text and job text.
// Without an embedder it returns the neutral score rather than lexical overlap.
func (s *Scorer) ProfileSimilarity(ctx context.Context, profileText, jobText string) float64 {
	if !s.Available() {
		if s == nil {
			return NeutralScore
		}
		return s.neutral
	}
	return s.Similarity(ctx, profileText, jobText)
}

func (s *Scorer) embeddingSimilarity(ctx context.Context, a, b string) (float64, error) {
	va, err := s.embed(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("embed first text: %w", err)
	}
	vb, err := s.embed(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("embed second text: %w", err)
	}
	sim, err := Cosine(va, vb)
	if err != nil {
		return 0, err
	}
	return clamp(sim), nil
}

func (s *Scorer) embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := s.cache.Get(text); ok {
		return v, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	v, err := s.embedder.Embed(callCtx, text)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, errors.New("embedder returned an empty vector")
	}
	s.cache.Put(text, v)
	return v, nil
}

// Cosine returns the cosine similarity of two vectors.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimensions differ: %d vs %d", len(a), len(b))
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, errors.New("zero-norm vector")
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Lexical returns |A∩B| / max(|A|,|B|) over the lower-cased word sets of a and b,
// or 0 when either text has no words.
func Lexical(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}

	overlap := 0
	for w := range wordsA {
		if wordsB[w] {
			overlap++
		}
	}
	return float64(overlap) / float64(max(len(wordsA), len(wordsB)))
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}
