// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/img2pdf/pkg/types"
)

// writePNG encodes img to a temp file and returns its path.
func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestDecode_PNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 20, 10))
	path := writePNG(t, src)

	img, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
}

func TestDecode_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Decode(path)
	assert.Error(t, err)
}

func TestDecode_MissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}

func TestFlatten_TransparentBecomesWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{A: 0})                       // fully transparent
	src.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255}) // opaque red

	flat := Flatten(src)
	require.True(t, flat.Opaque())

	r, g, b, _ := flat.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)

	r, g, b, _ = flat.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
}

func TestFlatten_SemiTransparentBlends(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	// 50% black over white should come out mid-gray.
	src.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 128})

	flat := Flatten(src)
	r, _, _, a := flat.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.InDelta(t, 0x8000, int(r), 0x200)
}

func TestFitA4_ShrinksTallImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1000, 8000))

	fitted := FitA4(src)
	b := fitted.Bounds()
	assert.Equal(t, A4HeightPx, b.Dy())
	assert.InDelta(t, 1000.0/8000.0, float64(b.Dx())/float64(b.Dy()), 0.01)
}

func TestFitA4_EnlargesSmallImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 248, 100))

	fitted := FitA4(src)
	b := fitted.Bounds()
	assert.Equal(t, A4WidthPx, b.Dx())
	assert.InDelta(t, 248.0/100.0, float64(b.Dx())/float64(b.Dy()), 0.01)
}

func TestFitA4_ExactFitUnchanged(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, A4WidthPx, A4HeightPx))
	fitted := FitA4(src)
	assert.Equal(t, src.Bounds(), fitted.Bounds())
}

func TestEncodeJPEG_QualityAffectsSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 200))
	// Noise-ish gradient so quality actually matters.
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * y % 251), G: uint8(x % 241), B: uint8(y % 233), A: 255})
		}
	}

	low, err := EncodeJPEG(src, 10)
	require.NoError(t, err)
	high, err := EncodeJPEG(src, 95)
	require.NoError(t, err)

	assert.Less(t, len(low), len(high))
}

func TestRenderPage_NoResizeKeepsDimensions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 123, 77))
	path := writePNG(t, src)

	page, err := Renderer{}.RenderPage(path, types.Options{Quality: 90})
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, 123, decoded.Bounds().Dx())
	assert.Equal(t, 77, decoded.Bounds().Dy())
}

func TestRenderPage_ResizeA4(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	path := writePNG(t, src)

	page, err := Renderer{}.RenderPage(path, types.Options{ResizeA4: true, Quality: 90})
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(page))
	require.NoError(t, err)
	// Square image: the width bound limits at 2480x2480.
	assert.Equal(t, A4WidthPx, decoded.Bounds().Dx())
	assert.Equal(t, A4WidthPx, decoded.Bounds().Dy())
}

func TestRenderPage_DecodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.gif")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0x01}, 0o644))

	_, err := Renderer{}.RenderPage(path, types.Options{Quality: 90})
	assert.Error(t, err)
}
