// Package cli implements the svg2puml command-line interface.
//
// The root command is the converter itself: it takes an SVG directory and an
// output directory, runs the batch pipeline, and prints a summary. Verbose
// logging (--verbose/-v) surfaces the rasterizer's own diagnostic output.
//
// The process exits 0 on normal completion regardless of per-file failures;
// fatal conditions (no rasterizer installed, unreadable input root) are
// printed to stderr and still exit 0. Only signal cancellation exits
// non-zero.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pumltools/svg2puml/pkg/buildinfo"
	apperrors "github.com/pumltools/svg2puml/pkg/errors"
	"github.com/pumltools/svg2puml/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The converter is the root
// command; there are no subcommands beyond cobra's built-ins.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "svg2puml <svg-directory> <output-directory>",
		Short: "Convert a tree of SVG files into PlantUML sprites",
		Long: `svg2puml walks an SVG directory, rasterizes every file with whichever of
Inkscape, ImageMagick, or rsvg-convert is installed, and writes PlantUML
sprite documents into a mirrored output tree plus an all_sprites.puml index.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fewer than two arguments prints usage and exits cleanly.
			if len(args) < 2 {
				return cmd.Usage()
			}
			return c.runConvert(cmd.Context(), args[0], args[1])
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	return root
}

// runConvert executes the batch pipeline and reports the outcome.
func (c *CLI) runConvert(ctx context.Context, inputRoot, outputRoot string) error {
	p := newProgress(c.Logger)

	runner := pipeline.NewRunner(c.Logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		InputRoot:  inputRoot,
		OutputRoot: outputRoot,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		// Fatal to the run, but the process still exits cleanly. The
		// machine-readable code is log noise for a human; print the
		// message alone.
		printError("%s", apperrors.UserMessage(err))
		return nil
	}

	p.done(fmt.Sprintf("Processed %d files", res.Files))

	printSuccess("converted %d of %d files", res.Tally.Succeeded, res.Files)
	if res.Tally.Failed > 0 {
		printWarning("%d files failed, see log above", res.Tally.Failed)
	}
	printDetail("output directory: %s", res.OutputRoot)
	if res.IndexPath != "" {
		printFile(res.IndexPath)
	}
	return nil
}
