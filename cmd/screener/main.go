// Package main provides the entry point for the application screener CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Application screening pipeline",
	Long:  "Screener evaluates job applications deterministically: it normalizes the application text, extracts structured facts, scores them against a fixed rubric, and records an auditable decision.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
