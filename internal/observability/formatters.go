// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxSkillsWidth bounds the joined skill list on a single line
	maxSkillsWidth = 40
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfileSummary outputs the parts of a candidate profile that drive scoring.
func (p *Printer) PrintProfileSummary(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", len(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Positions:  %d\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education:  %d\n", len(profile.Education)))

	if names := profile.SkillNames(); len(names) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Top skills: %s\n", truncateList(names, maxItemsToShow)))
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the top ranked jobs with their component scores.
// A limit of zero or less shows maxItemsToShow results.
func (p *Printer) PrintMatchResults(results []types.MatchResult, limit int) {
	if len(results) == 0 {
		return
	}
	if limit <= 0 {
		limit = maxItemsToShow
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(results)))

	count := min(len(results), limit)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, r.Title))
		if r.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", r.Company))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %.2f (skills %.2f, exp %.2f, edu %.2f, sem %.2f)\n",
			r.MatchScore,
			r.MatchDetails.SkillScore,
			r.MatchDetails.ExperienceScore,
			r.MatchDetails.EducationScore,
			r.MatchDetails.SemanticScore,
		))
		if len(r.MatchDetails.SkillMatches) > 0 {
			matched := make([]string, 0, len(r.MatchDetails.SkillMatches))
			for _, m := range r.MatchDetails.SkillMatches {
				matched = append(matched, m.Skill)
			}
			skills := strings.Join(matched, ", ")
			if len(skills) > maxSkillsWidth {
				skills = skills[:maxSkillsWidth-3] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(results) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(results)-count))
	}

	p.printBox("RANKED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtractedSkills outputs the skills found for a single listing.
func (p *Printer) PrintExtractedSkills(job *types.JobListing, skills []string, explicit bool) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:     %s\n", job.Title))
	if job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company: %s\n", job.Company))
	}
	source := "extracted from description"
	if explicit {
		source = "listed explicitly"
	}
	sb.WriteString(fmt.Sprintf("Source:  %s\n\n", source))

	if len(skills) == 0 {
		sb.WriteString("No skills found\n")
	}
	for _, skill := range skills {
		sb.WriteString(fmt.Sprintf("  • %s\n", skill))
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

func truncateList(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:limit], ", "), len(items)-limit)
}
