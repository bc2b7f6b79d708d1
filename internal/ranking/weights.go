// Package ranking scores job listings against a candidate profile and ranks them by match score.
package ranking

import (
	"fmt"
	"math"
)

// Default weights for scoring components
const (
	defaultSkillWeight      = 0.5
	defaultExperienceWeight = 0.3
	defaultEducationWeight  = 0.2

	// defaultSemanticBlend is the share of the final score taken by whole-profile semantic similarity
	defaultSemanticBlend = 0.3

	// defaultMatchThreshold is the similarity above which a title or field counts as a match
	defaultMatchThreshold = 0.7

	// defaultCurrentYear stands in for "Present" when computing experience duration
	defaultCurrentYear = 2025

	weightSumTolerance = 1e-9
)

// Weights are the relative importance of the component scores. They must sum to 1.0.
type Weights struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// DefaultWeights returns skill=0.5, experience=0.3, education=0.2
func DefaultWeights() Weights {
	return Weights{
		Skill:      defaultSkillWeight,
		Experience: defaultExperienceWeight,
		Education:  defaultEducationWeight,
	}
}

// Validate checks that every weight is in [0,1] and that they sum to 1.0
func (w Weights) Validate() error {
	for name, v := range map[string]float64{"skill": w.Skill, "experience": w.Experience, "education": w.Education} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s weight must be between 0 and 1, got %v", name, v)
		}
	}
	if sum := w.Skill + w.Experience + w.Education; math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// Config holds the fixed scoring policy. It is read-only once a Matcher is built.
type Config struct {
	Weights Weights
	// SemanticBlend is applied as final = base*(1-SemanticBlend) + semantic*SemanticBlend
	SemanticBlend float64
	// TitleMatchThreshold and FieldMatchThreshold are exclusive lower bounds for a match
	TitleMatchThreshold float64
	FieldMatchThreshold float64
	CurrentYear         int
}

// DefaultConfig returns the standard scoring policy
func DefaultConfig() Config {
	return Config{
		Weights:             DefaultWeights(),
		SemanticBlend:       defaultSemanticBlend,
		TitleMatchThreshold: defaultMatchThreshold,
		FieldMatchThreshold: defaultMatchThreshold,
		CurrentYear:         defaultCurrentYear,
	}
}

// Validate checks the weights, blend and thresholds
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.SemanticBlend < 0 || c.SemanticBlend > 1 {
		return fmt.Errorf("semantic blend must be between 0 and 1, got %v", c.SemanticBlend)
	}
	if c.TitleMatchThreshold < 0 || c.TitleMatchThreshold > 1 {
		return fmt.Errorf("title match threshold must be between 0 and 1, got %v", c.TitleMatchThreshold)
	}
	if c.FieldMatchThreshold < 0 || c.FieldMatchThreshold > 1 {
		return fmt.Errorf("field match threshold must be between 0 and 1, got %v", c.FieldMatchThreshold)
	}
	if c.CurrentYear <= 0 {
		return fmt.Errorf("current year must be positive, got %d", c.CurrentYear)
	}
	return nil
}

// clampScore keeps a score in [0,1]
func clampScore(score float64) float64 {
	if math.IsNaN(score) || score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
