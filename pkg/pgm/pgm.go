// Package pgm encodes continuous cell fields as binary portable graymaps
// (PGM, magic "P5"): a 3-line text header followed by one byte per cell in
// row-major order. No compression, no color.
package pgm

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Encode writes the field as a P5 graymap. Each value is expected in [0, 1]
// and maps to a byte by truncating value*255. It returns the number of
// non-zero bytes written, which callers may log as a liveness check.
func Encode(w io.Writer, width, height int, values []float32) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("pgm: dimensions must be positive, got %dx%d", width, height)
	}
	if len(values) != width*height {
		return 0, fmt.Errorf("pgm: have %d values for a %dx%d image", len(values), width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", width, height); err != nil {
		return 0, err
	}

	nonZero := 0
	for _, v := range values {
		pixel := uint8(v * 255)
		if err := bw.WriteByte(pixel); err != nil {
			return nonZero, err
		}
		if pixel > 0 {
			nonZero++
		}
	}
	return nonZero, bw.Flush()
}

// EncodeFile writes the field to the named file, creating or truncating it.
func EncodeFile(path string, width, height int, values []float32) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("pgm: create %s: %w", path, err)
	}
	nonZero, err := Encode(f, width, height, values)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return nonZero, err
}
