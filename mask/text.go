package mask

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Text mask alphabet.
const (
	cellPresent = '.'
	cellRemoved = 'x'
)

// LoadText opens path and parses it with ParseText.
func LoadText(path string) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mask: open %q: %w", path, err)
	}
	defer f.Close()

	m, err := ParseText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseText reads a text mask:
//
//	<width> <height>
//	<height lines of exactly width characters, '.' = present, 'x' = removed>
//
// A trailing '\r' on any line and trailing empty lines are tolerated.
// The whole input is validated before a Mask is allocated, so memory is
// bounded by the input rather than by the header. Rows wider than
// bufio.MaxScanTokenSize are rejected from the header alone.
//
// Errors: ErrMalformedHeader, ErrBadSize, ErrInvalidChar, ErrDimensionMismatch,
// or the underlying read error.
// Complexity: O(W×H).
func ParseText(r io.Reader) (*Mask, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("mask: read header: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}
	width, height, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}
	if err = checkSize(width, height); err != nil {
		return nil, err
	}
	if width > bufio.MaxScanTokenSize {
		return nil, fmt.Errorf("%w: width %d exceeds the %d byte line limit", ErrBadSize, width, bufio.MaxScanTokenSize)
	}

	var rows []string
	y := 0
	blankTail := 0
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			blankTail++
			continue
		}
		if blankTail > 0 {
			return nil, fmt.Errorf("%w: blank line before row %d", ErrDimensionMismatch, y+1)
		}
		if y >= height {
			return nil, fmt.Errorf("%w: more than %d rows", ErrDimensionMismatch, height)
		}
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, y+1, len(line), width)
		}
		for x := 0; x < len(line); x++ {
			if line[x] != cellPresent && line[x] != cellRemoved {
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrInvalidChar, line[x], y+1, x+1)
			}
		}
		rows = append(rows, line)
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mask: read body: %w", err)
	}
	if y != height {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrDimensionMismatch, y, height)
	}

	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for y, line := range rows {
		for x := 0; x < len(line); x++ {
			if line[x] == cellRemoved {
				m.Set(x, y, false)
			}
		}
	}
	return m, nil
}

// parseHeader splits "<width> <height>" into two integers.
func parseHeader(line string) (int, int, error) {
	fields := strings.Fields(strings.TrimSuffix(line, "\r"))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: width %q", ErrMalformedHeader, fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: height %q", ErrMalformedHeader, fields[1])
	}
	return width, height, nil
}
