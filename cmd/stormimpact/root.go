package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stormimpact",
	Short: "Rank weather event types by health and economic harm",
	Long: `stormimpact is a one-shot batch analysis over the NOAA Storm Events
dataset. It cleans the raw observations, expands the exponent-coded damage
fields, restricts to the post-1996 recording regime, reconciles high-impact
event-type labels, and prints ranked impact tables.

Examples:
  stormimpact analyze --input StormData.csv.bz2
  stormimpact analyze --input StormData.csv.gz --top 5 --json tables.json`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env for local runs; absence is not an error.
	cobra.OnInitialize(func() { _ = godotenv.Load() })

	rootCmd.AddCommand(analyzeCmd)
}
