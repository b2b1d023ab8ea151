// Package main provides the entry point for the CV screening CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvscreen",
	Short: "Rule-based CV screening and scoring",
	Long:  "cvscreen extracts structured candidate records from OCR'd resume text and scores them against job requirement profiles using deterministic, lexicon-driven rules.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
