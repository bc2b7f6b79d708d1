package ranking

import (
	"context"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/extraction"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/similarity"
	"github.com/jonathan/job-matcher/internal/types"
)

// Matcher scores and ranks job listings against a profile.
// It holds no per-call state and is safe for concurrent use.
type Matcher struct {
	scorer  *similarity.Scorer
	skills  extraction.Extractor
	years   *extraction.YearsExtractor
	degrees *extraction.DegreeExtractor
	fields  *extraction.FieldExtractor
	config  Config
	workers int
	logger  *zap.Logger
}

// Option configures a Matcher
type Option func(*Matcher)

// WithConfig replaces the scoring policy. Invalid configs are ignored in favour of the defaults.
func WithConfig(config Config) Option {
	return func(m *Matcher) {
		if config.Validate() == nil {
			m.config = config
		}
	}
}

// WithWorkers bounds how many listings are scored concurrently
func WithWorkers(workers int) Option {
	return func(m *Matcher) {
		if workers > 0 {
			m.workers = workers
		}
	}
}

// WithLogger sets the logger for ranking progress
func WithLogger(log *zap.Logger) Option {
	return func(m *Matcher) {
		if log != nil {
			m.logger = log
		}
	}
}

// WithSkillExtractor replaces the strategy used to find skills in descriptions without an explicit skill list
func WithSkillExtractor(extractor extraction.Extractor) Option {
	return func(m *Matcher) {
		if extractor != nil {
			m.skills = extractor
		}
	}
}

// NewMatcher creates a Matcher. A nil scorer means fallback-only similarity.
func NewMatcher(scorer *similarity.Scorer, opts ...Option) *Matcher {
	if scorer == nil {
		scorer = similarity.NewFallbackScorer()
	}
	m := &Matcher{
		scorer:  scorer,
		skills:  extraction.NewSkillExtractor(),
		years:   extraction.NewYearsExtractor(),
		degrees: extraction.NewDegreeExtractor(),
		fields:  extraction.NewFieldExtractor(),
		config:  DefaultConfig(),
		workers: runtime.NumCPU(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MatchJobs ranks jobs against profile with the default policy and no embedding provider.
func MatchJobs(ctx context.Context, profile *types.UserProfile, jobs []types.JobListing) []types.MatchResult {
	return NewMatcher(nil).Rank(ctx, profile, jobs)
}

// Config returns the scoring policy in use
func (m *Matcher) Config() Config {
	return m.config
}

// Score computes the match result for a single listing.
func (m *Matcher) Score(ctx context.Context, profile *types.UserProfile, job *types.JobListing) types.MatchResult {
	if profile == nil {
		profile = &types.UserProfile{}
	}
	return m.score(ctx, profile, similarity.ProfileText(profile), job)
}

// Rank scores every listing and returns them sorted by match score, highest first.
// Equal scores keep their input order. The input listings are never modified.
func (m *Matcher) Rank(ctx context.Context, profile *types.UserProfile, jobs []types.JobListing) []types.MatchResult {
	if profile == nil {
		profile = &types.UserProfile{}
	}

	runID := uuid.NewString()
	start := time.Now()
	m.logger.Debug("ranking jobs",
		zap.String(logger.FieldRunID, runID),
		zap.Int("jobs", len(jobs)),
		zap.Bool("embeddings", m.scorer.Available()),
	)

	profileText := similarity.ProfileText(profile)
	results := make([]types.MatchResult, len(jobs))

	// Each goroutine writes only its own slot
	var g errgroup.Group
	g.SetLimit(m.workers)
	for i := range jobs {
		i := i // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			results[i] = m.score(ctx, profile, profileText, &jobs[i])
			return nil
		})
	}
	_ = g.Wait() // scoring never returns an error

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	m.logger.Info("ranked jobs",
		zap.String(logger.FieldRunID, runID),
		zap.Int("jobs", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return results
}

func (m *Matcher) score(ctx context.Context, profile *types.UserProfile, profileText string, job *types.JobListing) types.MatchResult {
	jobSkills := job.Skills
	if jobSkills == nil {
		jobSkills = m.skills.Extract(job.Description)
	}

	skillScore, skillMatches := computeSkillScore(profile.Skills, jobSkills)
	experienceScore, experienceMatches := m.computeExperienceScore(ctx, profile.Experience, job)
	educationScore, educationMatches := m.computeEducationScore(ctx, profile.Education, job.Description)
	semanticScore := m.computeSemanticScore(ctx, profileText, job)

	w := m.config.Weights
	base := w.Skill*skillScore + w.Experience*experienceScore + w.Education*educationScore
	final := clampScore(base*(1-m.config.SemanticBlend) + semanticScore*m.config.SemanticBlend)

	detail := types.MatchDetail{
		SkillScore:        skillScore,
		SkillMatches:      skillMatches,
		ExperienceScore:   experienceScore,
		ExperienceMatches: experienceMatches,
		EducationScore:    educationScore,
		EducationMatches:  educationMatches,
		SemanticScore:     semanticScore,
	}
	detail.Notes = generateNotes(&detail)

	return types.MatchResult{
		JobListing:   job.Clone(),
		MatchScore:   final,
		MatchDetails: detail,
	}
}
