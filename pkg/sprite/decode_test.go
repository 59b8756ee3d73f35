package sprite

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pumltools/svg2puml/pkg/errors"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.png")
	writePNG(t, path, fill(4, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))

	img, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("Decode() bounds = %v, want 4x2", b)
	}
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("Decode() error = nil, want IO_ERROR")
	}
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("Decode() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeIO)
	}
}

func TestDecodeGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Decode(path)
	if err == nil {
		t.Fatal("Decode() error = nil, want DECODE_ERROR")
	}
	if !errors.Is(err, errors.ErrCodeDecode) {
		t.Errorf("Decode() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDecode)
	}
}
