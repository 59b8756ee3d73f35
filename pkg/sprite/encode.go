// Package sprite converts rasterized bitmaps into PlantUML sprite notation.
//
// A sprite document is a small text artifact: an @startuml/@enduml frame
// around a single sprite block whose body has exactly one glyph character
// per pixel. The encoding is a lossy three-way quantization (transparent,
// light, dark) chosen for legibility at icon scale inside PlantUML's limited
// sprite palette; hue and gradient information is intentionally discarded.
package sprite

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Quantization thresholds. Fixed policy, not configuration: a pixel with
// alpha below alphaOpaque is transparent; an opaque pixel whose red, green,
// and blue channels each exceed lightMin is light; everything else is dark.
// Comparisons are strict, so alpha exactly 128 is opaque and a channel
// exactly 200 is dark.
const (
	alphaOpaque = 128
	lightMin    = 200
)

// The three-glyph sprite palette.
const (
	glyphTransparent = ' '
	glyphLight       = '0'
	glyphDark        = 'F'
)

// Encode writes img as a PlantUML sprite document named name.
// Rows are emitted top to bottom, pixels left to right, one glyph per pixel,
// so the body has exactly height lines of width characters each.
func Encode(w io.Writer, img image.Image, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "@startuml\n")
	fmt.Fprintf(bw, "sprite $%s [\n", name)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			bw.WriteByte(glyph(img.At(x, y)))
		}
		bw.WriteByte('\n')
	}

	bw.WriteString("]\n\n@enduml\n")
	return bw.Flush()
}

// glyph quantizes one pixel into the three-glyph palette. Channels are taken
// non-premultiplied so light colors under partial alpha do not read as dark.
func glyph(c color.Color) byte {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < alphaOpaque {
		return glyphTransparent
	}
	if n.R > lightMin && n.G > lightMin && n.B > lightMin {
		return glyphLight
	}
	return glyphDark
}
