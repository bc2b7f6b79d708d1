package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/extraction"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/profile"
)

var extractSkillsCmd = &cobra.Command{
	Use:   "extract-skills",
	Short: "Show the skills used to score each job listing",
	Long:  "Prints the required skills of each listing: its explicit skill list when present, otherwise the skills extracted from its description.",
	RunE:  runExtractSkills,
}

var (
	extractSkillsJobs    string
	extractSkillsOutput  string
	extractSkillsVerbose bool
)

// jobSkills is one entry of the extract-skills output
type jobSkills struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Explicit bool     `json:"explicit"`
	Skills   []string `json:"skills"`
}

func init() {
	extractSkillsCmd.Flags().StringVarP(&extractSkillsJobs, "jobs", "j", "", "Path to job listings JSON file (required)")
	extractSkillsCmd.Flags().StringVarP(&extractSkillsOutput, "out", "o", "", "Path to output JSON file (optional, prints to stdout otherwise)")
	extractSkillsCmd.Flags().BoolVarP(&extractSkillsVerbose, "verbose", "v", false, "Print a summary box per listing")

	if err := extractSkillsCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}

	rootCmd.AddCommand(extractSkillsCmd)
}

func runExtractSkills(cmd *cobra.Command, _ []string) error {
	jobs, err := profile.LoadJobListings(extractSkillsJobs)
	if err != nil {
		return fmt.Errorf("failed to load job listings: %w", err)
	}
	if err := profile.NormalizeJobs(jobs); err != nil {
		return fmt.Errorf("failed to normalize job listings: %w", err)
	}

	extractor := extraction.NewSkillExtractor()
	printer := observability.NewPrinter(cmd.OutOrStdout())

	entries := make([]jobSkills, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		entry := jobSkills{
			ID:       job.ID,
			Title:    job.Title,
			Explicit: job.Skills != nil,
			Skills:   extractor.SkillsFor(job),
		}
		entries = append(entries, entry)

		if extractSkillsVerbose {
			printer.PrintExtractedSkills(job, entry.Skills, entry.Explicit)
		}
	}

	if extractSkillsOutput != "" {
		if err := writeJSON(extractSkillsOutput, entries); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully extracted skills for %d jobs to %s\n", len(entries), extractSkillsOutput)
		return nil
	}

	if !extractSkillsVerbose {
		for _, entry := range entries {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%v\n", entry.ID, entry.Title, entry.Skills)
		}
	}
	return nil
}
