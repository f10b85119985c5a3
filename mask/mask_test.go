package mask_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maze/mask"
)

// TestNew_Errors verifies that non-positive dimensions are rejected.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
		{"Overflow", math.MaxInt / 2, 4},
		{"OverflowMaxInt", math.MaxInt, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mask.New(tc.w, tc.h)
			assert.ErrorIs(t, err, mask.ErrBadSize)
		})
	}
}

// TestMask_SetGetCount covers the basic accessors and bounds handling.
func TestMask_SetGetCount(t *testing.T) {
	m, err := mask.New(4, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, m.Count())

	m.Set(1, 1, false)
	m.Set(9, 9, false) // ignored
	assert.False(t, m.Get(1, 1))
	assert.True(t, m.Get(0, 0))
	assert.False(t, m.Get(-1, 0), "out of bounds reads as absent")
	assert.Equal(t, 7, m.Count())

	c := m.Clone()
	c.Set(0, 0, false)
	assert.True(t, m.Get(0, 0), "clone must not alias the original")
	assert.Equal(t, 6, c.Count())
}

// TestParseText_Scenario parses the canonical 3×3 ring-with-gaps mask.
func TestParseText_Scenario(t *testing.T) {
	m, err := mask.ParseText(strings.NewReader("3 3\n.x.\n...\n.x."))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.False(t, m.Get(1, 0))
	assert.False(t, m.Get(1, 2))
	assert.Equal(t, 7, m.Count())
	assert.Equal(t, "3 3\n.x.\n...\n.x.\n", m.String())
}

// TestParseText_Tolerance accepts CRLF line endings and trailing blank lines.
func TestParseText_Tolerance(t *testing.T) {
	m, err := mask.ParseText(strings.NewReader("2 2\r\n.x\r\nx.\r\n\r\n\n"))
	require.NoError(t, err)
	assert.True(t, m.Get(0, 0))
	assert.False(t, m.Get(1, 0))
	assert.False(t, m.Get(0, 1))
	assert.True(t, m.Get(1, 1))
}

// TestParseText_Errors verifies that every malformed input is fatal.
func TestParseText_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", mask.ErrMalformedHeader},
		{"OneNumber", "3\n...", mask.ErrMalformedHeader},
		{"NotNumber", "a 3\n...", mask.ErrMalformedHeader},
		{"ZeroSize", "0 3\n", mask.ErrBadSize},
		{"OverflowHeader", "3037000500 3037000500\n...\n", mask.ErrBadSize},
		{"WiderThanLineLimit", "100000 100000\n...\n", mask.ErrBadSize},
		{"HugeHeightShortBody", "3 1000000000\n...\n", mask.ErrDimensionMismatch},
		{"BadChar", "3 1\n.o.", mask.ErrInvalidChar},
		{"ShortRow", "3 2\n...\n..", mask.ErrDimensionMismatch},
		{"LongRow", "3 1\n....", mask.ErrDimensionMismatch},
		{"MissingRows", "3 3\n...\n...", mask.ErrDimensionMismatch},
		{"ExtraRows", "3 1\n...\n...", mask.ErrDimensionMismatch},
		{"BlankInside", "3 2\n...\n\n...", mask.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mask.ParseText(strings.NewReader(tc.input))
			assert.Nil(t, m, "no partial mask on error")
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestLoadText reads a mask file from disk and reports missing files.
func TestLoadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 3\n...\n.x.\n...\n"), 0o600))

	m, err := mask.LoadText(path)
	require.NoError(t, err)
	assert.Equal(t, 8, m.Count())
	assert.False(t, m.Get(1, 1))

	_, err = mask.LoadText(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestFromImage maps black pixels to removed cells and everything else to present.
func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(1, 0, color.Black)
	img.Set(2, 1, color.NRGBA{R: 1, A: 255}) // almost black stays present

	m, err := mask.FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.False(t, m.Get(1, 0))
	assert.True(t, m.Get(2, 1))
	assert.Equal(t, 5, m.Count())
}

// TestDecodeImage round-trips a PNG through the registered decoders.
func TestDecodeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	img.Set(1, 0, color.Black)
	img.Set(0, 1, color.RGBA{G: 200, A: 255})
	img.Set(1, 1, color.Black)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	m, err := mask.DecodeImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Count())
	assert.True(t, m.Get(0, 0))
	assert.True(t, m.Get(0, 1))

	_, err = mask.DecodeImage(strings.NewReader("not an image"))
	assert.Error(t, err)
}
