package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imgstack/imgstack/internal/merge"
)

// newInfoCmd creates the info command, which probes an image's dimensions
// from its format header without decoding pixel data.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <image>",
		Short: "Print an image's pixel dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := merge.Open(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			w, h := src.Dimensions()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d\n", src.Path(), w, h)
			return nil
		},
	}
}
