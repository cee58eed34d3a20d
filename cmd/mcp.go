package cmd

import (
	"github.com/huangsam/shoutout/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the shoutout MCP server",
	Long:  `Launch an MCP server that allows AI agents to query top contributors via standard tools.`,
	Args:  cobra.NoArgs,
	// Validate config up front so the server starts with a usable baseline;
	// stdout stays clean for the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, gitClient)
	},
}
