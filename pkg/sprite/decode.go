package sprite

import (
	"image"
	"os"

	"github.com/disintegration/imaging"

	"github.com/pumltools/svg2puml/pkg/errors"
)

// Decode reads the raster intermediate at path and decodes it into a bitmap.
// A read failure is an IO_ERROR; undecodable image data is a DECODE_ERROR.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read raster %s", path)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode raster %s", path)
	}
	return img, nil
}
