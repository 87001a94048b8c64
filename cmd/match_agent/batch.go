package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/logger"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/profile"
	"github.com/jonathan/job-matcher/internal/scoring"
	"github.com/jonathan/job-matcher/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score the job catalog for a user",
	Long:  "Aggregates a user's profile from its data sources, fetches the active job catalog, scores every posting, and prints the top matches sorted by relevance.",
	RunE:  runBatch,
}

var (
	batchConfigPath string
	batchUserID     string
	batchPersonaID  string
	batchJobsPath   string
	batchMinScore   int
	batchTopN       int
	batchSkillGaps  bool
	batchJSONOutput bool
	batchVerbose    bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchConfigPath, "config", "c", "", "Path to a config JSON file")
	batchCmd.Flags().StringVarP(&batchUserID, "user", "u", "", "User UUID to aggregate a profile for")
	batchCmd.Flags().StringVar(&batchPersonaID, "persona", "", "Persona UUID whose preferences override the base profile")
	batchCmd.Flags().StringVar(&batchJobsPath, "jobs", "", "Path to a JobPosting array JSON file (bypasses the database catalog)")
	batchCmd.Flags().IntVar(&batchMinScore, "min-score", 0, "Drop results scoring below this threshold")
	batchCmd.Flags().IntVar(&batchTopN, "top", 10, "Number of top matches to print (0 = all)")
	batchCmd.Flags().BoolVar(&batchSkillGaps, "skill-gaps", false, "Include missing required skills per result")
	batchCmd.Flags().BoolVar(&batchJSONOutput, "json", false, "Print the MatchResult array as JSON")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print the full per-factor breakdown per match")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg := &config.Config{
		UserID:    batchUserID,
		PersonaID: batchPersonaID,
		Jobs:      batchJobsPath,
		MinScore:  batchMinScore,
	}
	fileTopN := 0
	if batchConfigPath != "" {
		fileCfg, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return err
		}
		fileTopN = fileCfg.TopN
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}
	// The flag carries a non-zero default, so MergeWithDefaults cannot tell
	// "left at 10" from "explicitly 10"; layer top-n separately.
	cfg.TopN = resolveTopN(cmd.Flags().Changed("top"), batchTopN, fileTopN)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(batchJSONOutput, batchVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userProfile, jobs, err := loadBatchInputs(ctx, cfg, log)
	if err != nil {
		return err
	}

	opts := &types.ScoringOptions{
		MinScore:         cfg.MinScore,
		IncludeSkillGaps: batchSkillGaps,
		IncludeDebugInfo: batchVerbose,
	}
	engine := scoring.NewEngine(nil)

	start := time.Now()
	results := engine.ScoreJobBatch(jobs, userProfile, opts)
	log.Info("batch scored",
		zap.Int("jobs", len(jobs)),
		zap.Int("matches", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if cfg.TopN > 0 && len(results) > cfg.TopN {
		results = results[:cfg.TopN]
	}

	if batchJSONOutput {
		output, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	if batchVerbose {
		printer.PrintProfile(userProfile)
	}
	for i := range results {
		printer.PrintMatchResult(&results[i])
		if opts.IncludeDebugInfo {
			printer.PrintBreakdown(&results[i])
		}
	}
	return nil
}

// resolveTopN layers the --top flag over a config-file top_n. An explicit
// flag always wins, including --top 0 for "all results"; otherwise a config
// value applies, and the flag default covers the rest.
func resolveTopN(flagChanged bool, flagValue, fileValue int) int {
	if flagChanged {
		return flagValue
	}
	if fileValue > 0 {
		return fileValue
	}
	return flagValue
}

// loadBatchInputs resolves the profile and the job list, from files or from
// the database depending on configuration.
func loadBatchInputs(ctx context.Context, cfg *config.Config, log *zap.Logger) (*types.UserMatchProfile, []types.JobPosting, error) {
	var userProfile *types.UserMatchProfile
	var jobs []types.JobPosting

	needsDB := cfg.UserID != "" || cfg.Jobs == ""
	var database *db.DB
	if needsDB {
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("database URL is required (set DATABASE_URL or database_url in the config) unless both --jobs and a profile file are provided")
		}
		var err error
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		defer database.Close()
	}

	switch {
	case cfg.UserID != "":
		aggregator := profile.NewAggregator(database, log)
		userProfile = aggregator.Aggregate(ctx, cfg.UserID, cfg.PersonaID)
	case cfg.Profile != "":
		var err error
		userProfile, err = loadProfile(cfg.Profile)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("either --user or a profile file is required")
	}

	if cfg.Jobs != "" {
		content, err := os.ReadFile(cfg.Jobs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read jobs file %s: %w", cfg.Jobs, err)
		}
		if err := json.Unmarshal(content, &jobs); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
		}
	} else {
		var err error
		jobs, err = database.ListActiveJobs(ctx, 0)
		if err != nil {
			return nil, nil, err
		}
	}

	return userProfile, jobs, nil
}
