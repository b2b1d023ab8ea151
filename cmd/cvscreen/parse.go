package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-screener/internal/config"
	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/logger"
	"github.com/jonathan/cv-screener/internal/observability"
	"github.com/jonathan/cv-screener/internal/pipeline"
)

var parseCommand = &cobra.Command{
	Use:   "parse [files or directories]",
	Short: "Parse OCR'd resume text files into structured candidate records",
	Long: `Reads one or more OCR'd text files (or directories of .txt files),
extracts structured candidate records and writes them as a JSON array.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParseCmd,
}

var (
	parseConfigPath  string
	parseLexiconPath string
	parseWorkers     int
	parseQuality     float64
	parseOut         string
	parseVerbose     bool
	parseJSONLogs    bool
)

func init() {
	// Config file flag (processed first)
	parseCommand.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	parseCommand.Flags().StringVarP(&parseLexiconPath, "lexicons", "l", "", "Path to a lexicon overlay JSON file")
	parseCommand.Flags().IntVarP(&parseWorkers, "workers", "w", 0, "Parallel workers for batch parsing")
	parseCommand.Flags().Float64VarP(&parseQuality, "quality", "q", 0, "OCR confidence for the input files (0-1)")
	parseCommand.Flags().StringVarP(&parseOut, "out", "o", "", "Output file for candidate records JSON (defaults to stdout)")
	parseCommand.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")
	parseCommand.Flags().BoolVar(&parseJSONLogs, "json-logs", false, "Emit JSON-encoded logs")

	rootCmd.AddCommand(parseCommand)
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := mergeParseConfig(cmd, parseConfigPath)
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

	docs, err := collectDocuments(args, cfg.Quality)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no .txt files found in %s", strings.Join(args, ", "))
	}

	records, err := pipeline.ParseBatch(ctx, docs, lex, pipeline.Options{
		Workers: cfg.Workers,
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("parse batch failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, record := range records {
			printer.PrintCandidate(record)
		}
	}

	return writeJSON(parseOut, records)
}

// collectDocuments expands file and directory arguments into the batch
// document list. Directories contribute their .txt entries, not nested
// subdirectories.
func collectDocuments(args []string, quality float64) ([]pipeline.Document, error) {
	var docs []pipeline.Document

	addFile := func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, pipeline.Document{
			Name:    filepath.Base(path),
			Text:    string(data),
			Quality: quality,
		})
		return nil
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			if err := addFile(arg); err != nil {
				return nil, err
			}
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
				continue
			}
			if err := addFile(filepath.Join(arg, entry.Name())); err != nil {
				return nil, err
			}
		}
	}
	return docs, nil
}

// mergeParseConfig loads an optional config file and layers the parse
// flag values over it.
func mergeParseConfig(cmd *cobra.Command, path string) (config.Config, error) {
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

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("lexicons") {
		cfg.LexiconPath = parseLexiconPath
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = parseWorkers
	}
	if cmd.Flags().Changed("quality") {
		cfg.Quality = parseQuality
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = parseVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = parseJSONLogs
	}

	cfg = cfg.MergeWithDefaults(config.Config{Workers: pipeline.DefaultWorkers})
	return cfg, cfg.Validate()
}

func loadLexicons(path string) (lexicon.Lexicons, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.Load(path)
	if err != nil {
		return lexicon.Lexicons{}, fmt.Errorf("failed to load lexicons: %w", err)
	}
	return lex, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
