package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/profile"
	"github.com/jonathan/job-matcher/internal/ranking"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job listings against a candidate profile",
	Long: `Scores every job listing against the candidate profile and writes the listings sorted by match score.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMatch,
}

var (
	matchConfigPath   string
	matchProfile      string
	matchJobs         string
	matchOutput       string
	matchTop          int
	matchWorkers      int
	matchAPIKey       string
	matchNoEmbeddings bool
	matchVerbose      bool
	matchJSONLogs     bool
)

func init() {
	// Config file flag (processed first)
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCmd.Flags().StringVarP(&matchProfile, "profile", "p", "", "Path to candidate profile JSON file")
	matchCmd.Flags().StringVarP(&matchJobs, "jobs", "j", "", "Path to job listings JSON file")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output match results JSON file")
	matchCmd.Flags().IntVar(&matchTop, "top", 0, "Keep only the N best matches in the output (0 keeps all)")
	matchCmd.Flags().IntVar(&matchWorkers, "workers", 0, "Listings scored concurrently (defaults to the number of CPUs)")
	matchCmd.Flags().BoolVar(&matchNoEmbeddings, "no-embeddings", false, "Skip the embedding provider and use fallback similarity")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")
	matchCmd.Flags().BoolVar(&matchJSONLogs, "json-logs", false, "Emit logs as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Step 1: Load config file if provided
	var cfg config.Config
	if matchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile = matchProfile
	}
	if flags.Changed("jobs") {
		cfg.Jobs = matchJobs
	}
	if flags.Changed("out") {
		cfg.Out = matchOutput
	}
	if flags.Changed("top") {
		cfg.Top = matchTop
	}
	if flags.Changed("workers") {
		cfg.Workers = matchWorkers
	}
	if flags.Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if flags.Changed("no-embeddings") {
		cfg.DisableEmbeddings = matchNoEmbeddings
	}
	if flags.Changed("verbose") {
		cfg.Verbose = matchVerbose
	}
	if flags.Changed("json-logs") {
		cfg.JSONLogs = matchJSONLogs
	}

	// Step 3: Validate required fields and values
	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (via flag or config)")
	}
	if cfg.Jobs == "" {
		return fmt.Errorf("--jobs is required (via flag or config)")
	}
	if cfg.Out == "" {
		return fmt.Errorf("--out is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	rankingConfig, err := cfg.RankingConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Step 4: Load and normalize inputs
	userProfile, err := profile.LoadUserProfile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	profile.NormalizeProfile(userProfile)

	jobs, err := profile.LoadJobListings(cfg.Jobs)
	if err != nil {
		return fmt.Errorf("failed to load job listings: %w", err)
	}
	if err := profile.NormalizeJobs(jobs); err != nil {
		return fmt.Errorf("failed to normalize job listings: %w", err)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if cfg.Verbose {
		printer.PrintProfileSummary(userProfile)
	}

	// Step 5: Rank
	scorer, closeScorer := newScorer(ctx, &cfg, log)
	defer closeScorer()

	matcher := ranking.NewMatcher(scorer,
		ranking.WithConfig(rankingConfig),
		ranking.WithWorkers(cfg.Workers),
		ranking.WithLogger(log),
	)
	results := matcher.Rank(ctx, userProfile, jobs)

	total := len(results)
	if cfg.Top > 0 && cfg.Top < len(results) {
		results = results[:cfg.Top]
	}

	report := types.MatchReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Embeddings:  scorer.Available(),
		TotalJobs:   total,
		Results:     results,
	}

	// Step 6: Write output
	if err := writeJSON(cfg.Out, report); err != nil {
		return err
	}

	// Validate output against schema (optional - non-fatal)
	schemaPath := schemas.ResolveSchemaPath(schemas.MatchResultsSchema)
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, cfg.Out); err != nil {
			log.Warn("output validation failed", zap.Error(err))
		}
	}

	if cfg.Verbose {
		printer.PrintMatchResults(results, cfg.Top)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully ranked %d jobs to %s\n", total, cfg.Out)

	return nil
}

// writeJSON marshals v with indentation and writes it to path, creating the directory if needed.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
