package cmd

import (
	"github.com/huangsam/gitpivot/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the gitpivot MCP server",
	Long:  `Launch an MCP server that allows AI agents to request contribution tables via standard tools.`,
	Args:  cobra.NoArgs,
	// No metric is required here; each tool call supplies its own.
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, gitClient)
	},
}
