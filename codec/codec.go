/*
Package codec decodes and encodes the image files read and written by
framerev.

Decoding detects the format from the file contents and supports PNG, GIF,
JPEG, BMP, TIFF and WebP. Encoding picks the format from the output file
extension and supports the same formats apart from WebP. GIF output of an
image that isn't already paletted is reduced to 256 colors with a median cut
quantizer.
*/
package codec

import (
	"errors"
	"path/filepath"
	"strings"
)

// Format is an output image format
type Format int

const (
	PNG Format = iota + 1
	GIF
	JPEG
	BMP
	TIFF
)

// JPEGQuality is the quality used when encoding JPEG output
const JPEGQuality = 95

// ErrUnsupported is returned for an output path with an unknown extension
var ErrUnsupported = errors.New("codec: unsupported output format")

var extensions = map[string]Format{
	".png":  PNG,
	".gif":  GIF,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case GIF:
		return "gif"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	}
	return "unknown"
}

// FormatFromPath returns the output format implied by the extension of
// path. The match is case-insensitive.
func FormatFromPath(path string) (Format, error) {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return 0, ErrUnsupported
}
