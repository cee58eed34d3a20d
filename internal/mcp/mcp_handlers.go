package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/shoutout/core"
	"github.com/huangsam/shoutout/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

func (h *toolHandler) handleGetTopContributors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if s := request.GetString("since", ""); s != "" {
		cfg.Since = s
	}
	if l := request.GetInt("limit", -1); l >= 0 {
		cfg.Limit = l
	}

	lb, err := core.BuildLeaderboard(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("log query failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(lb, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
