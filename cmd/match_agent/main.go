// Package main provides the entry point for the job matching CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Job match scoring engine",
	Long:  "match_agent scores job postings against an aggregated candidate profile, producing explainable 0-100 relevance scores with reasons, warnings, and skill gaps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
