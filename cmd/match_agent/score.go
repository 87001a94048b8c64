package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/scoring"
	"github.com/jonathan/job-matcher/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one job posting against a profile",
	Long:  "Deterministically scores a single job posting JSON file against a candidate profile JSON file and prints the match result.",
	RunE:  runScore,
}

var (
	scoreProfilePath string
	scoreJobPath     string
	scoreSkillGaps   bool
	scoreJSONOutput  bool
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfilePath, "profile", "p", "", "Path to input UserMatchProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobPath, "job", "j", "", "Path to input JobPosting JSON file (required)")
	scoreCmd.Flags().BoolVar(&scoreSkillGaps, "skill-gaps", false, "Include missing required skills in the result")
	scoreCmd.Flags().BoolVar(&scoreJSONOutput, "json", false, "Print the MatchResult as JSON instead of a summary")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the full per-factor breakdown")

	if err := scoreCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(scoreProfilePath)
	if err != nil {
		return err
	}

	jobContent, err := os.ReadFile(scoreJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job file %s: %w", scoreJobPath, err)
	}
	if err := schemas.ValidateJobPosting(string(jobContent)); err != nil {
		return fmt.Errorf("job document is invalid: %w", err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(jobContent, &job); err != nil {
		return fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}

	engine := scoring.NewEngine(nil)
	opts := &types.ScoringOptions{
		IncludeSkillGaps: scoreSkillGaps,
		IncludeDebugInfo: scoreVerbose,
	}
	result := engine.ScoreJob(&job, profile, opts)

	if scoreJSONOutput {
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal match result: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintMatchResult(result)
	if opts.IncludeDebugInfo {
		printer.PrintBreakdown(result)
	}
	return nil
}

// loadProfile reads, schema-validates, and decodes a profile file, filling
// in empty-slice defaults.
func loadProfile(path string) (*types.UserMatchProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	if err := schemas.ValidateUserProfile(string(content)); err != nil {
		return nil, fmt.Errorf("profile document is invalid: %w", err)
	}
	var profile types.UserMatchProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	profile.EnsureDefaults()
	return &profile, nil
}
