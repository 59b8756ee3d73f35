// Package raster locates and invokes external SVG rasterizers.
//
// Rasterization is delegated to whichever of three interchangeable external
// programs is installed on the host: Inkscape (best SVG rendering),
// ImageMagick's convert, or rsvg-convert, probed in that preference order.
// The probe runs once per batch; the selected tool is reused for every file
// on the assumption that tool availability is stable for the process
// lifetime.
//
// All tools render to a fixed 64-pixel canvas with a transparent background.
// Per-tool command-line construction is isolated in this package so the rest
// of the pipeline stays platform-agnostic.
package raster

import (
	"os/exec"

	"github.com/pumltools/svg2puml/pkg/errors"
)

// Tool identifies an external rasterizer program by its executable name.
type Tool string

// The supported rasterizers, most capable first.
const (
	ToolInkscape    Tool = "inkscape"
	ToolImageMagick Tool = "convert"
	ToolRsvg        Tool = "rsvg-convert"
)

// probeOrder is the fixed preference order for Locate.
var probeOrder = []Tool{ToolInkscape, ToolImageMagick, ToolRsvg}

// Locate returns the first rasterizer from the preference order whose
// executable resolves on the search path. It returns a RASTERIZER_NOT_FOUND
// error if none is installed.
func Locate() (Tool, error) {
	for _, t := range probeOrder {
		if _, err := exec.LookPath(string(t)); err == nil {
			return t, nil
		}
	}
	return "", errors.New(errors.ErrCodeRasterizerNotFound,
		"no SVG rasterizer found; install Inkscape, ImageMagick, or rsvg-convert")
}
