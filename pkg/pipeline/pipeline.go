// Package pipeline implements the batch SVG to sprite conversion.
//
// The pipeline walks an input tree, mirrors its directory structure under an
// output root, and for every SVG file invokes the external rasterizer,
// decodes the raster intermediate, and writes a PlantUML sprite document.
// After the batch completes, an index document referencing every generated
// sprite is written to the output root.
//
// # Error Handling
//
// Per-file failures never abort the batch: they are logged with the
// offending relative path and folded into the failure tally. Only two
// conditions are fatal: the input root cannot be walked, or no rasterizer is
// installed. A failure to write the index is logged but leaves the batch a
// success for the files already converted.
//
// # Concurrency
//
// Conversion is fully sequential; one file finishes before the next begins.
// The tally is returned by value from Execute rather than kept as ambient
// state, so a parallel variant only needs to make the increments safe and
// keep index aggregation strictly after the last conversion.
package pipeline

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pumltools/svg2puml/pkg/errors"
	"github.com/pumltools/svg2puml/pkg/raster"
	"github.com/pumltools/svg2puml/pkg/sprite"
)

// Options configures a batch run.
type Options struct {
	InputRoot  string // directory scanned for .svg files
	OutputRoot string // mirrored directory receiving rasters and sprites
}

// Tally counts per-file outcomes across one batch run.
type Tally struct {
	Succeeded int
	Failed    int
}

// Result is the outcome of one batch run.
type Result struct {
	Tally      Tally
	Tool       raster.Tool // rasterizer selected for the run
	Files      int         // SVG files in the snapshot
	IndexPath  string      // path of the index document, empty if not written
	OutputRoot string      // absolute output root
}

// Runner executes batch conversions. It is stateless apart from the logger;
// each Execute call returns its own tally rather than mutating shared state.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs one batch conversion: snapshot the input tree, select a
// rasterizer once, convert each file in enumeration order, then aggregate
// the index if at least one file succeeded.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	inputRoot, err := filepath.Abs(opts.InputRoot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDirectory, err, "resolve input root %s", opts.InputRoot)
	}
	outputRoot, err := filepath.Abs(opts.OutputRoot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDirectory, err, "resolve output root %s", opts.OutputRoot)
	}

	result := &Result{OutputRoot: outputRoot}

	r.Logger.Info("scanning directory", "dir", inputRoot)
	files, err := findSVGs(inputRoot)
	if err != nil {
		return nil, err
	}
	result.Files = len(files)
	r.Logger.Info("found SVG files", "count", len(files))

	// One probe per run; tool availability is assumed stable for the
	// process lifetime.
	tool, err := raster.Locate()
	if err != nil {
		return nil, err
	}
	result.Tool = tool
	r.Logger.Info("using rasterizer", "tool", tool)

	seen := make(map[string]string, len(files))
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		slashRel := filepath.ToSlash(rel)
		name := sprite.Identifier(slashRel)
		if prev, ok := seen[name]; ok {
			r.Logger.Warn("sprite identifier collision",
				"identifier", name, "file", slashRel, "conflictsWith", prev)
		} else {
			seen[name] = slashRel
		}

		if err := r.convertFile(ctx, tool, inputRoot, outputRoot, rel, name); err != nil {
			r.Logger.Error("conversion failed", "file", slashRel, "err", err)
			result.Tally.Failed++
			continue
		}
		r.Logger.Info("converted", "file", slashRel)
		result.Tally.Succeeded++
	}

	if result.Tally.Succeeded > 0 {
		indexPath, n, err := WriteIndex(outputRoot)
		if err != nil {
			// Already-written sprites stay valid without the index.
			r.Logger.Error("index generation failed", "err", err)
		} else {
			r.Logger.Info("generated sprite index", "file", indexPath, "sprites", n)
			result.IndexPath = indexPath
		}
	}

	return result, nil
}

// convertFile performs one file's conversion: mirror the directory,
// rasterize, decode, encode. The raster intermediate is left next to the
// sprite document.
func (r *Runner) convertFile(ctx context.Context, tool raster.Tool, inputRoot, outputRoot, rel, name string) error {
	src := filepath.Join(inputRoot, rel)
	outDir := filepath.Dir(filepath.Join(outputRoot, rel))

	base := filepath.Base(rel)
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".svg") {
		base = base[:len(base)-len(ext)]
	}
	rasterPath := filepath.Join(outDir, base+".png")
	spritePath := filepath.Join(outDir, base+".puml")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create directory %s", outDir)
	}

	if err := tool.Convert(ctx, r.Logger, src, rasterPath); err != nil {
		return err
	}

	img, err := sprite.Decode(rasterPath)
	if err != nil {
		return err
	}

	f, err := os.Create(spritePath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create sprite document %s", spritePath)
	}
	encErr := sprite.Encode(f, img, name)
	if closeErr := f.Close(); encErr == nil {
		encErr = closeErr
	}
	if encErr != nil {
		return errors.Wrap(errors.ErrCodeIO, encErr, "write sprite document %s", spritePath)
	}
	return nil
}

// findSVGs snapshots every regular .svg file (case-insensitive) under root
// before any conversion begins; files added during the run are not picked
// up. Paths are returned relative to root in enumeration order.
func findSVGs(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".svg") {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDirectory, err, "walk input root %s", root)
	}
	return files, nil
}
