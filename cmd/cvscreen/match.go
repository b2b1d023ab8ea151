package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-screener/internal/config"
	"github.com/jonathan/cv-screener/internal/logger"
	"github.com/jonathan/cv-screener/internal/observability"
	"github.com/jonathan/cv-screener/internal/pipeline"
	"github.com/jonathan/cv-screener/internal/store"
	"github.com/jonathan/cv-screener/internal/types"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Score parsed candidate records against a job profile",
	Long: `Loads candidate records (from 'parse' output) and a job requirement
profile, scores every candidate and writes the results ranked by total
score. With --db-url, candidates and results are persisted; re-matching
the same candidate and job overwrites the stored result.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath  string
	matchRecordsPath string
	matchProfilePath string
	matchWorkers     int
	matchOut         string
	matchDatabaseURL string
	matchVerbose     bool
	matchJSONLogs    bool
)

func init() {
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCommand.Flags().StringVarP(&matchRecordsPath, "records", "r", "", "Path to candidate records JSON (output of 'parse')")
	matchCommand.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to job profile JSON")
	matchCommand.Flags().IntVarP(&matchWorkers, "workers", "w", 0, "Parallel workers for batch matching")
	matchCommand.Flags().StringVarP(&matchOut, "out", "o", "", "Output file for match results JSON (defaults to stdout)")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")
	matchCommand.Flags().BoolVar(&matchJSONLogs, "json-logs", false, "Emit JSON-encoded logs")

	// Database URL for result persistence
	matchCommand.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	_ = matchCommand.MarkFlagRequired("records")
	_ = matchCommand.MarkFlagRequired("profile")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeMatchConfig(cmd, matchConfigPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	lex, err := loadLexicons(cfg.LexiconPath)
	if err != nil {
		return err
	}

	candidates, err := readCandidates(matchRecordsPath)
	if err != nil {
		return err
	}
	profile, err := readProfile(matchProfilePath)
	if err != nil {
		return err
	}

	// IDs anchor the (candidate_id, jd_id) result key; assign any that
	// the input did not carry so persistence and re-runs line up.
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	for _, candidate := range candidates {
		if candidate.ID == uuid.Nil {
			candidate.ID = uuid.New()
		}
	}

	results, err := pipeline.MatchBatch(ctx, profile, candidates, lex, pipeline.Options{
		Workers:      cfg.Workers,
		Logger:       log,
		Coefficients: cfg.Coefficients,
	})
	if err != nil {
		return err
	}

	ranked := make([]types.MatchResult, 0, len(results))
	for _, result := range results {
		ranked = append(ranked, *result)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	if cfg.DatabaseURL != "" {
		if err := persistMatches(ctx, cfg.DatabaseURL, profile, candidates, results); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		names := make(map[string]string, len(candidates))
		for _, candidate := range candidates {
			names[candidate.ID.String()] = candidate.Name
		}
		printer.PrintRanking(ranked, names)
		for i := range ranked {
			printer.PrintMatchResult(&ranked[i], profile)
		}
	}

	return writeJSON(matchOut, ranked)
}

func persistMatches(ctx context.Context, databaseURL string, profile *types.JobProfile, candidates []*types.CandidateRecord, results []*types.MatchResult) error {
	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.SaveJobProfile(ctx, profile); err != nil {
		return err
	}
	for i, candidate := range candidates {
		if err := db.SaveCandidate(ctx, candidate); err != nil {
			return err
		}
		if err := db.UpsertMatchResult(ctx, results[i]); err != nil {
			return err
		}
	}
	return nil
}

func readCandidates(path string) ([]*types.CandidateRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file %s: %w", path, err)
	}
	var candidates []*types.CandidateRecord
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse records JSON: %w", err)
	}
	return candidates, nil
}

func readProfile(path string) (*types.JobProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	profile := &types.JobProfile{Weights: types.DefaultWeights()}
	if err := json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return profile, nil
}

// mergeMatchConfig loads an optional config file and layers the match
// flag values over it.
func mergeMatchConfig(cmd *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers = matchWorkers
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = matchJSONLogs
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = matchDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	cfg = cfg.MergeWithDefaults(config.Config{Workers: pipeline.DefaultWorkers})
	return cfg, cfg.Validate()
}
