package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imgstack/imgstack/internal/merge"
	"github.com/imgstack/imgstack/internal/scan"
)

const (
	defaultBorder     = 10        // uniform border thickness in pixels
	defaultBackground = "#FFFFFF" // opaque white
	defaultOutput     = "merged.png"
)

// mergeOpts holds the command-line flags for the merge command.
type mergeOpts struct {
	output     string // output file path
	dir        string // directory to scan for inputs, mutually exclusive with positional args
	border     int    // border thickness in pixels
	background string // background fill as a hex color
}

// newMergeCmd creates the merge command. Inputs come either as positional
// paths, merged in argument order, or via --dir, which scans a directory for
// supported image files. The output path is always an explicit flag rather
// than being inferred from the argument list.
func newMergeCmd() *cobra.Command {
	opts := mergeOpts{
		output:     defaultOutput,
		border:     defaultBorder,
		background: defaultBackground,
	}

	cmd := &cobra.Command{
		Use:   "merge [images...]",
		Short: "Merge images vertically into a single PNG",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dir != "" && len(args) > 0 {
				return fmt.Errorf("either list input images or pass --dir, not both")
			}
			return runMerge(cmd.Context(), args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG file path")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "merge all supported images found in this directory")
	cmd.Flags().IntVarP(&opts.border, "border", "b", opts.border, "border thickness in pixels")
	cmd.Flags().StringVar(&opts.background, "background", opts.background, "background color (hex, e.g. #FFFFFF or #00000080)")

	return cmd
}

// runMerge resolves the input list, wires progress reporting to the
// context logger, and invokes the engine.
func runMerge(ctx context.Context, args []string, opts *mergeOpts) error {
	logger := loggerFromContext(ctx)

	paths := args
	if opts.dir != "" {
		var err error
		paths, err = scan.Dir(opts.dir)
		if err != nil {
			return err
		}
		logger.Debug("scanned directory", "dir", opts.dir, "images", len(paths))
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input images given")
	}

	background, err := merge.ParseBackground(opts.background)
	if err != nil {
		return err
	}

	track := newProgress(logger)
	result, err := merge.Merge(paths, opts.output, merge.Options{
		Border:     opts.border,
		Background: background,
		Progress: func(ev merge.Event) {
			switch ev.Stage {
			case merge.StageResolved:
				logger.Debug("resolved source", "index", ev.Index, "path", ev.Path, "size", fmt.Sprintf("%dx%d", ev.Width, ev.Height))
			case merge.StageRendered:
				logger.Debug("rendered source", "index", ev.Index, "path", ev.Path, "size", fmt.Sprintf("%dx%d", ev.Width, ev.Height))
			case merge.StageComposed:
				logger.Debug("composed canvas", "size", fmt.Sprintf("%dx%d", ev.Width, ev.Height))
			case merge.StageWritten:
				logger.Debug("wrote output", "path", ev.Path)
			}
		},
	})
	if err != nil {
		return err
	}

	track.done(fmt.Sprintf("Merged %d images into %s (%dx%d)",
		result.Count, result.Path, result.Width, result.Height))
	return nil
}
