package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/huangsam/gitpivot/internal/contract"
	mcp_internal "github.com/huangsam/gitpivot/internal/mcp"
	"github.com/huangsam/gitpivot/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const twoCommitLog = "abc1234|Alice|2024-03-01|Merge branch 'feature'\n" +
	"def5678|Bob|2024-03-02|fix parser"

func callTool(t *testing.T, client contract.GitClient, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	baseCfg := &contract.Config{
		RepoPath:    "/repo",
		Limit:       contract.DefaultCommitLimit,
		MergeMarker: contract.DefaultMergeMarker,
		Output:      schema.TextOut,
	}
	s := mcp_internal.NewMCPServer(baseCfg, client)

	tool := s.GetTool("get_contributions")
	require.NotNil(t, tool, "Tool get_contributions should exist")

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "get_contributions",
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	t.Run("unknown metric", func(t *testing.T) {
		res := callTool(t, new(contract.MockGitClient), map[string]any{"metric": "x"})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "unknown metric")
	})

	t.Run("missing metric", func(t *testing.T) {
		res := callTool(t, new(contract.MockGitClient), map[string]any{})
		assert.True(t, res.IsError)
	})

	t.Run("invalid limit", func(t *testing.T) {
		res := callTool(t, new(contract.MockGitClient), map[string]any{"metric": "c", "limit": -5.0})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "commit limit")
	})
}

func TestMCPServerHandlers_GetContributions(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	mockClient.On("GetCommitLog", mock.Anything, "/repo", 10).Return([]byte(twoCommitLog), nil)
	mockClient.On("GetCommitDiffStat", mock.Anything, "/repo", "def5678").
		Return([]byte(" 1 file changed, 3 insertions(+), 2 deletions(-)\n"), nil)

	res := callTool(t, mockClient, map[string]any{
		"metric":      "t",
		"limit":       10.0,
		"skip_merges": true,
		"summary":     true,
	})
	require.False(t, res.IsError, res.Content[0].(mcp.TextContent).Text)

	var view schema.ReportView
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &view))
	assert.Equal(t, schema.TotalMetric, view.Metric)
	assert.Equal(t, []string{"bob"}, view.Authors)
	assert.Equal(t, 1, view.Commits)
	require.Len(t, view.Rows, 1)
	require.NotNil(t, view.Rows[0].Values["bob"])
	assert.Equal(t, 5, *view.Rows[0].Values["bob"])
	assert.Equal(t, []schema.AuthorTotal{{Author: "bob", Total: 5}}, view.Totals)

	mockClient.AssertExpectations(t)
	mockClient.AssertNotCalled(t, "GetCommitDiffStat", mock.Anything, "/repo", "abc1234")
}

func TestMCPServerHandlers_GitFailure(t *testing.T) {
	mockClient := new(contract.MockGitClient)
	mockClient.On("GetCommitLog", mock.Anything, "/repo", contract.DefaultCommitLimit).
		Return(nil, &contract.GitCommandError{RepoPath: "/repo", Args: []string{"log"}, Stderr: "fatal: bad"})

	res := callTool(t, mockClient, map[string]any{"metric": "commits"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "contribution report failed")
}
