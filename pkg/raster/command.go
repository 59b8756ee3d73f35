package raster

import (
	"context"
	"os/exec"
	"runtime"
	"strconv"
)

// SpriteSize is the fixed raster canvas size in pixels. Sprites are small
// icons, not high-fidelity renders, so the size is a policy decision rather
// than a configuration knob.
const SpriteSize = 64

// args returns the argument list for rendering src to dst with tool t.
// goos selects the flag spelling for tools whose flags differ per platform
// family; it is a parameter so both spellings stay testable on any host.
func (t Tool) args(goos, src, dst string) []string {
	size := strconv.Itoa(SpriteSize)
	switch t {
	case ToolInkscape:
		// Inkscape spells its output flags differently on Windows.
		if goos == "windows" {
			return []string{"--export-filename=" + dst, "--export-width=" + size, src}
		}
		return []string{"-o", dst, "-w", size, src}
	case ToolImageMagick:
		return []string{"-background", "none", "-density", "300", "-resize", size + "x" + size, src, dst}
	case ToolRsvg:
		return []string{"-w", size, "-h", size, "-o", dst, src}
	}
	return nil
}

// Command builds the external rasterizer invocation for the current platform.
func (t Tool) Command(ctx context.Context, src, dst string) *exec.Cmd {
	return exec.CommandContext(ctx, string(t), t.args(runtime.GOOS, src, dst)...)
}
