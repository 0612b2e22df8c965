package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "netsynth",
	Short: "Generate realistic network-configuration test data",
	Long: `netsynth synthesizes batches of structured network-configuration
records for test and demo environments. Every record satisfies its field
constraints (valid ID ranges, RFC1918 networks, port validity) and is unique
within its batch, and a whole batch is reproducible from a seed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}
