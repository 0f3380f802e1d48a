package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-screener/internal/extraction"
	"github.com/jonathan/application-screener/internal/llm"
	"github.com/jonathan/application-screener/internal/pipeline"
	"github.com/jonathan/application-screener/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for screening applications and inspecting audit records.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Get API key from environment
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	// Database URL is optional; without it audit lookups are unavailable
	databaseURL := os.Getenv("DATABASE_URL")

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	capability := llm.NewCapability(client, llm.TierStandard, llm.DefaultTimeout, llm.DefaultRetries)
	extractor := extraction.NewExtractor(capability)

	p := pipeline.New(extractor, pipeline.Options{DatabaseURL: databaseURL})
	if err := p.Connect(ctx); err != nil {
		fmt.Printf("Warning: %v\n", err)
		fmt.Printf("Continuing without audit persistence...\n")
	}
	defer p.Close()

	srv, err := server.New(server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
	}, p)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
