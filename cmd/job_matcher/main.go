// Package main provides the job_matcher CLI, which ranks job listings against a candidate profile.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_matcher",
	Short: "Score and rank job listings against a candidate profile",
	Long:  "job_matcher scores job listings against a candidate profile by skills, experience, education and semantic similarity, and writes them ranked by match score.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
