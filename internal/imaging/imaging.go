// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imaging decodes source images and normalizes them into opaque,
// optionally A4-fitted JPEG pages ready for PDF embedding.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"math"
	"os"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// A4 page dimensions in pixels at 300 DPI (210mm x 297mm).
const (
	A4WidthPx  = 2480
	A4HeightPx = 3508
)

// Decode reads the image at path using registered-format auto-detection.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Flatten composites img over an opaque white canvas of identical bounds and
// returns the result. PDF pages must never carry transparency; fully
// transparent pixels come out white.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.White, image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}

// FitA4 scales img so that its limiting dimension equals the corresponding
// A4 bound at 300 DPI, preserving aspect ratio. Images are enlarged as well
// as shrunk; they are never cropped or stretched.
func FitA4(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}

	scale := math.Min(float64(A4WidthPx)/float64(w), float64(A4HeightPx)/float64(h))
	dw := int(math.Round(float64(w) * scale))
	dh := int(math.Round(float64(h) * scale))
	if dw == w && dh == h {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// EncodeJPEG encodes img as JPEG with the given quality (1-100). A quality
// of 0 falls back to the default.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 {
		quality = types.DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// Renderer normalizes source images into encoded pages.
type Renderer struct{}

// RenderPage decodes the image at path, flattens transparency onto white,
// optionally fits it to A4, and re-encodes it as a JPEG page.
func (Renderer) RenderPage(path string, opts types.Options) ([]byte, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}

	var flat image.Image = Flatten(img)
	if opts.ResizeA4 {
		flat = FitA4(flat)
	}
	return EncodeJPEG(flat, opts.Quality)
}
