package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/gitpivot/core"
	"github.com/huangsam/gitpivot/internal/contract"
	"github.com/huangsam/gitpivot/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleGetContributions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SkipMerges = request.GetBool("skip_merges", cfg.SkipMerges)
	cfg.Summary = request.GetBool("summary", cfg.Summary)

	metricStr := request.GetString("metric", "")
	limit := request.GetInt("limit", 0)
	repoPath := request.GetString("repo_path", "")

	if err := contract.RevalidateContributions(ctx, cfg, h.client, metricStr, limit, repoPath); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid contribution parameters: %v", err)), nil
	}

	report, err := core.GetContributionReport(core.WithSuppressHeader(ctx), cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("contribution report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(schema.NewReportView(report), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
