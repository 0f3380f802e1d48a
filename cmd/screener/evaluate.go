package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-screener/internal/config"
	"github.com/jonathan/application-screener/internal/extraction"
	"github.com/jonathan/application-screener/internal/jobcontext"
	"github.com/jonathan/application-screener/internal/llm"
	"github.com/jonathan/application-screener/internal/observability"
	"github.com/jonathan/application-screener/internal/pipeline"
	"github.com/jonathan/application-screener/internal/types"
)

var evaluateCommand = &cobra.Command{
	Use:   "evaluate",
	Short: "Screen applications against a job description",
	Long: `Runs the full screening pipeline for each application in the input file: normalize -> extract -> score -> decide -> audit.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runEvaluateCmd,
}

var (
	evalConfigPath   string
	evalJob          string
	evalJobID        string
	evalLocationID   string
	evalApplications string
	evalAPIKey       string
	evalVerbose      bool
	evalConcurrency  int
	evalDatabaseURL  string
)

func init() {
	// Config file flag (processed first)
	evaluateCommand.Flags().StringVar(&evalConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	evaluateCommand.Flags().StringVarP(&evalJob, "job", "j", "", "Path to job description text file")
	evaluateCommand.Flags().StringVar(&evalJobID, "job-id", "", "Stable job identifier")
	evaluateCommand.Flags().StringVar(&evalLocationID, "location-id", "", "Site or location identifier")
	evaluateCommand.Flags().StringVarP(&evalApplications, "applications", "a", "", "Path to JSON file with applications to screen")
	evaluateCommand.Flags().BoolVarP(&evalVerbose, "verbose", "v", false, "Print detailed debug information")
	evaluateCommand.Flags().IntVar(&evalConcurrency, "concurrency", 0, "Parallel evaluations (default 4)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	evaluateCommand.Flags().StringVar(&evalAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for audit persistence
	evaluateCommand.Flags().StringVar(&evalDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(evaluateCommand)
}

func runEvaluateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if evalConfigPath != "" {
		loadedCfg, err := config.LoadConfig(evalConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if evalVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", evalConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("job") {
		cfg.Job = evalJob
	}
	if cmd.Flags().Changed("job-id") {
		cfg.JobID = evalJobID
	}
	if cmd.Flags().Changed("location-id") {
		cfg.LocationID = evalLocationID
	}
	if cmd.Flags().Changed("applications") {
		cfg.Applications = evalApplications
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = evalAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = evalVerbose
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = evalConcurrency
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = evalDatabaseURL
	}

	// Step 3: Fill remaining gaps with defaults
	cfg = cfg.MergeWithDefaults(config.Config{
		Concurrency: pipeline.DefaultBatchConcurrency,
	})

	// Step 4: Validate required fields
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}
	if cfg.JobID == "" {
		return fmt.Errorf("--job-id is required (via flag or config)")
	}
	if cfg.Applications == "" {
		return fmt.Errorf("--applications is required (via flag or config)")
	}

	// Step 5: API Key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Step 6: Database URL handling (optional; audit persistence only)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 7: Load inputs
	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	apps, err := loadApplications(cfg.Applications)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		return fmt.Errorf("no applications found in %s", cfg.Applications)
	}

	jobCtx := jobcontext.Build(cfg.JobID, cfg.LocationID, string(jobText), jobcontext.DefaultPatterns())

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintJobContext(jobCtx)
	}

	// Step 8: Wire the extractor and run
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	capability := llm.NewCapability(client, llm.TierStandard, llm.DefaultTimeout, llm.DefaultRetries)
	extractor := extraction.NewExtractor(capability)

	p := pipeline.New(extractor, pipeline.Options{
		DatabaseURL: cfg.DatabaseURL,
		Verbose:     cfg.Verbose,
		Concurrency: cfg.Concurrency,
	})
	if err := p.Connect(ctx); err != nil {
		fmt.Printf("Warning: %v\n", err)
		fmt.Printf("Continuing without audit persistence...\n")
	}
	defer p.Close()

	fmt.Printf("Screening %d applications for job %s...\n", len(apps), cfg.JobID)

	records, err := p.EvaluateBatch(ctx, apps, jobCtx)
	if err != nil {
		return fmt.Errorf("screening failed: %w", err)
	}

	for _, record := range records {
		if cfg.Verbose {
			printer.PrintAuditRecord(record)
		} else {
			fmt.Printf("%s: %s (score %d", record.Application.ApplicationID, record.Decision.Status, record.Score.Score)
			if record.Decision.ReasonCode != "" {
				fmt.Printf(", %s", record.Decision.ReasonCode)
			}
			fmt.Printf(")\n")
		}
	}

	return nil
}

// loadApplications reads the JSON applications file.
func loadApplications(path string) ([]types.Application, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read applications file: %w", err)
	}

	var apps []types.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("failed to parse applications JSON: %w", err)
	}
	return apps, nil
}
