package mask

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// LoadImage opens path and decodes it with DecodeImage.
func LoadImage(path string) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mask: open %q: %w", path, err)
	}
	defer f.Close()

	m, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// DecodeImage decodes any registered raster format and converts it with FromImage.
func DecodeImage(r io.Reader) (*Mask, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("mask: decode image: %w", err)
	}
	m, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("mask: %s image: %w", format, err)
	}
	return m, nil
}

// FromImage maps every pixel of img to one mask cell. Pure black pixels
// (0,0,0 in 8-bit RGB, alpha ignored) are removed; all others are present.
// The image origin need not be (0,0); cells are relative to Bounds().Min.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Mask, error) {
	b := img.Bounds()
	m, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if isBlack(img, x, y) {
				m.Set(x-b.Min.X, y-b.Min.Y, false)
			}
		}
	}
	return m, nil
}

// isBlack reports whether the non-premultiplied pixel is (0,0,0).
func isBlack(img image.Image, x, y int) bool {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R == 0 && c.G == 0 && c.B == 0
}
