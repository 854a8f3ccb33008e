package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "unknown" // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the imgstack CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (merge, info,
// mcp), configures logging based on the --verbose flag, and executes the
// command tree. The logger is attached to the context and accessible to all
// commands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "imgstack",
		Short:        "imgstack merges images into a vertical composite",
		Long:         `imgstack stacks a sequence of raster images vertically on a single canvas, padding each with a uniform border and centering it horizontally.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("imgstack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMergeCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newMCPCmd())

	return root.ExecuteContext(context.Background())
}
