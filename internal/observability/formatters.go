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

// PrintProfile outputs a human-readable summary of an aggregated profile.
func (p *Printer) PrintProfile(profile *types.UserMatchProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:     %s\n", profile.UserID))
	if profile.PrimaryTitle != "" {
		sb.WriteString(fmt.Sprintf("Target:   %s\n", profile.PrimaryTitle))
	}
	if profile.YearsExperience > 0 {
		sb.WriteString(fmt.Sprintf("Years:    %d\n", profile.YearsExperience))
	}
	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("Candidate Profile", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchResult outputs a human-readable summary of one match result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100 (%s)\n", result.TotalScore, result.MatchQuality))
	b := &result.ScoreBreakdown
	sb.WriteString(fmt.Sprintf("Hard:     %d/%d  Pref: %d/%d  Bonus: %d/%d\n",
		b.HardRequirementsScore(), types.HardRequirementsCap,
		b.PreferenceAlignmentScore(), types.PreferenceAlignmentCap,
		b.BonusScore(), types.BonusCap))

	if len(result.TopReasons) > 0 {
		sb.WriteString("\nWhy:\n")
		for _, reason := range result.TopReasons {
			sb.WriteString(fmt.Sprintf("  • %s\n", reason))
		}
	}
	if len(result.Warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, warning := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  • %s\n", warning))
		}
	}
	if len(result.SkillGaps) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkill gaps: %s\n", strings.Join(result.SkillGaps, ", ")))
	}

	p.printBox(fmt.Sprintf("Match: %s", result.JobID), strings.TrimRight(sb.String(), "\n"))
}

// PrintBreakdown outputs the per-factor score table for one result.
func (p *Printer) PrintBreakdown(result *types.MatchResult) {
	if result == nil {
		return
	}
	b := &result.ScoreBreakdown

	var sb strings.Builder
	row := func(name string, f types.FactorResult) {
		sb.WriteString(fmt.Sprintf("%-22s %2d/%2d\n", name, f.Score, f.MaxScore))
	}
	row("required skills", b.RequiredSkills)
	row("experience", b.Experience)
	row("location", b.Location)
	row("title relevance", b.TitleRelevance)
	row("salary fit", b.SalaryFit)
	row("industry", b.Industry)
	row("company attributes", b.CompanyAttributes)
	row("nice-to-have skills", b.NiceToHaveSkills)
	row("keyword density", b.KeywordDensity)
	row("recency", b.Recency)
	row("competition", b.Competition)

	p.printBox("Score Breakdown", strings.TrimRight(sb.String(), "\n"))
}
