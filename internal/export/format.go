package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an image encoding for a heightfield.
type Format string

const (
	PGM    Format = "pgm"     // Netpbm P2, ASCII, one sample per line
	PGMRaw Format = "pgm-raw" // Netpbm P5, binary
	PNG    Format = "png"
	BMP    Format = "bmp"
	TIFF   Format = "tiff"
)

// ErrUnknownFormat is returned for unsupported format names or extensions.
var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists every supported format.
var Formats = []Format{PGM, PGMRaw, PNG, BMP, TIFF}

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	n := Format(strings.ToLower(strings.TrimSpace(name)))
	switch n {
	case PGM, PGMRaw, PNG, BMP, TIFF:
		return n, nil
	case "tif":
		return TIFF, nil
	case "p2":
		return PGM, nil
	case "p5":
		return PGMRaw, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pgm":
		return PGM, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}
