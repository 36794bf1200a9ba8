package cmd

import (
	"github.com/huangsam/gitpivot/core"
	"github.com/spf13/cobra"
)

// metricsCmd displays the definitions of all contribution metrics.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display the metric selectors and how each one is computed",
	Long: `Show every metric selector with its short code, the commit field it reads
and the reducer applied per author and day.

No Git commands are run - this is purely informational.

Examples:
  # Show metric definitions
  gitpivot metrics

  # As JSON
  gitpivot metrics --output json`,
	Args:    cobra.NoArgs,
	PreRunE: displaySetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteMetrics(cfg)
	},
}
