// Package main implements the content_planner CLI for turning raw personal
// records into content seeds and weekly publishing plans.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "content_planner",
	Short: "Content seed extraction and weekly planning",
	Long:  "content_planner extracts reusable content seeds from raw personal records (meeting transcripts, voice notes, daily thoughts), filters them against a voice rubric, deduplicates them against publish history, and schedules a subset into a weekly multi-channel plan.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
