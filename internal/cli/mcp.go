package cli

import (
	"github.com/spf13/cobra"

	"github.com/imgstack/imgstack/internal/server"
)

// newMCPCmd creates the mcp command, which serves the merge engine over the
// MCP protocol on stdin/stdout. Logging goes to stderr so it never mixes
// with protocol traffic.
func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve merge tools over the MCP protocol on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debug("starting MCP server", "version", version)
			return server.New().Run()
		},
	}
}
