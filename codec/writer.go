package codec

import (
	"bufio"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encode writes the Image m to w in format f.
func Encode(w io.Writer, m image.Image, f Format) error {
	switch f {
	case PNG:
		e := png.Encoder{CompressionLevel: png.BestCompression}
		return e.Encode(w, m)
	case GIF:
		// An already paletted image is written as-is, otherwise the
		// quantizer picks the palette and pixels are mapped to the
		// nearest color without dithering
		return gif.Encode(w, m, &gif.Options{
			NumColors: 256,
			Quantizer: &quantize.MedianCutQuantizer{},
			Drawer:    draw.Src,
		})
	case JPEG:
		return jpeg.Encode(w, m, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		return bmp.Encode(w, m)
	case TIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	}
	return ErrUnsupported
}

// Save encodes m to the file at path using the format implied by its
// extension. The image is written to a temporary file alongside path and
// only renamed over it once encoding has succeeded, so a failure never
// leaves a partial file behind.
func Save(path string, m image.Image) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = f.Chmod(0644); err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err = Encode(w, m, format); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), path)
}
