// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitpivot/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitpivot MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"gitpivot Contribution Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	s.AddTool(mcp.NewTool("get_contributions",
		mcp.WithDescription("Pivot recent git history into a per-author, per-day contribution table."),
		mcp.WithString("metric", mcp.Description("Metric to aggregate: c/commits, a/additions, d/deletions, t/total."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Number of most recent commits to process. Defaults to 100.")),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the server's repository).")),
		mcp.WithBoolean("skip_merges", mcp.Description("Ignore commits whose subject contains the merge marker.")),
		mcp.WithBoolean("summary", mcp.Description("Include per-author totals.")),
	), h.handleGetContributions)

	return s
}

// StartMCPServer starts the gitpivot MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
