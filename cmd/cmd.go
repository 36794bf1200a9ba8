// Package cmd defines the command-line interface for gitpivot.
package cmd

import (
	"github.com/huangsam/gitpivot/internal/contract"
	"github.com/huangsam/gitpivot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("repo", ".", "Path to the Git repository")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultCommitLimit, "Number of most recent commits to process")
	rootCmd.PersistentFlags().Bool("skip-merges", false, "Ignore commits whose subject contains the merge marker")
	rootCmd.PersistentFlags().Bool("summary", false, "Print per-author totals after the table")
	rootCmd.PersistentFlags().String("merge-marker", contract.DefaultMergeMarker, "Subject substring that identifies merge commits")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
