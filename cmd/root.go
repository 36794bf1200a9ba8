package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/gitpivot/core"
	"github.com/huangsam/gitpivot/internal/contract"
	"github.com/huangsam/gitpivot/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// gitClient runs every git command issued by the CLI.
var gitClient contract.GitClient = contract.NewLocalGitClient()

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "gitpivot <metric> [commit_count]",
	Short: "Pivot Git history into a per-author, per-day contribution table.",
	Long: `gitpivot reads recent commits with git log, measures each commit with a
whitespace-insensitive diffstat, and prints one row per day and one column per author.

Metrics:
  c, commits    Number of commits
  a, additions  Lines inserted
  d, deletions  Lines deleted
  t, total      Lines inserted plus deleted

Passing a commit count processes that many commits, skips merge commits
and prints per-author totals.

Examples:
  # Commits per author per day over the last 100 commits
  gitpivot c

  # Changed lines over the last 20 non-merge commits, with totals
  gitpivot t 20

  # Additions as CSV for another repository
  gitpivot a --repo ../other --output csv`,
	Version:            version,
	Args:               cobra.MaximumNArgs(2),
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		return core.ExecuteContributions(rootCtx, cfg, gitClient)
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".gitpivot") // Name of config file (without extension)
		viper.SetConfigType("yaml")      // We'll use YAML format
		viper.AddConfigPath(".")         // Look in the current directory
		viper.AddConfigPath("$HOME")     // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GITPIVOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("repo", ".")
	viper.SetDefault("limit", contract.DefaultCommitLimit)
	viper.SetDefault("merge-marker", contract.DefaultMergeMarker)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
}

// loadConfig merges defaults, file, env, and flags into the raw input struct.
func loadConfig() error {
	// 1. Read config file.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return nil
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(ctx context.Context, _ *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	input.MetricStr = ""
	input.CountStr = ""
	if len(args) > 0 {
		input.MetricStr = args[0]
	}
	if len(args) > 1 {
		input.CountStr = args[1]
	}

	// 4. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(ctx, cfg, gitClient, input)
}

// displaySetup loads config for commands that only render static data.
func displaySetup(_ *cobra.Command, _ []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	return contract.ProcessDisplayOptions(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
