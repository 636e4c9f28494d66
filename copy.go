package framerev

import (
	"image"
	"image/color"
	"reflect"

	"golang.org/x/image/draw"
)

// pixels is the raw backing store shared by the image types in the
// standard library.
type pixels struct {
	pix    []uint8
	stride int
	bpp    int
	rect   image.Rectangle
}

func (p pixels) offset(x, y int) int {
	return (y-p.rect.Min.Y)*p.stride + (x-p.rect.Min.X)*p.bpp
}

func pixelsOf(m image.Image) (pixels, bool) {
	switch m := m.(type) {
	case *image.RGBA:
		return pixels{m.Pix, m.Stride, 4, m.Rect}, true
	case *image.NRGBA:
		return pixels{m.Pix, m.Stride, 4, m.Rect}, true
	case *image.RGBA64:
		return pixels{m.Pix, m.Stride, 8, m.Rect}, true
	case *image.NRGBA64:
		return pixels{m.Pix, m.Stride, 8, m.Rect}, true
	case *image.Gray:
		return pixels{m.Pix, m.Stride, 1, m.Rect}, true
	case *image.Gray16:
		return pixels{m.Pix, m.Stride, 2, m.Rect}, true
	case *image.Alpha:
		return pixels{m.Pix, m.Stride, 1, m.Rect}, true
	case *image.Alpha16:
		return pixels{m.Pix, m.Stride, 2, m.Rect}, true
	case *image.CMYK:
		return pixels{m.Pix, m.Stride, 4, m.Rect}, true
	case *image.Paletted:
		return pixels{m.Pix, m.Stride, 1, m.Rect}, true
	}
	return pixels{}, false
}

func samePalette(p1, p2 color.Palette) bool {
	if len(p1) != len(p2) {
		return false
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			return false
		}
	}
	return true
}

// sameLayout reports whether the pixel bytes of src can be copied into dst
// unchanged.
func sameLayout(dst, src image.Image) bool {
	if reflect.TypeOf(dst) != reflect.TypeOf(src) {
		return false
	}
	if dp, ok := dst.(*image.Paletted); ok {
		return samePalette(dp.Palette, src.(*image.Paletted).Palette)
	}
	return true
}

// copyPixels copies the rows of sr in src to dr in dst directly between the
// backing slices, returning false if the two images don't share a layout.
func copyPixels(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle) bool {
	if !sameLayout(dst, src) {
		return false
	}
	d, ok := pixelsOf(dst)
	if !ok {
		return false
	}
	s, _ := pixelsOf(src)

	n := sr.Dx() * s.bpp
	for y := 0; y < sr.Dy(); y++ {
		si := s.offset(sr.Min.X, sr.Min.Y+y)
		di := d.offset(dr.Min.X, dr.Min.Y+y)
		copy(d.pix[di:di+n], s.pix[si:si+n])
	}
	return true
}

// NewCanvas allocates a zeroed image with bounds r whose pixel type can hold
// the pixels of src without loss. Paletted sources produce a paletted image
// with a copy of the source palette.
func NewCanvas(src image.Image, r image.Rectangle) draw.Image {
	switch m := src.(type) {
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.NRGBA:
		return image.NewNRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.Alpha:
		return image.NewAlpha(r)
	case *image.Alpha16:
		return image.NewAlpha16(r)
	case *image.CMYK:
		return image.NewCMYK(r)
	case *image.Paletted:
		p := make(color.Palette, len(m.Palette))
		copy(p, m.Palette)
		return image.NewPaletted(r, p)
	case *image.YCbCr:
		// JPEG only ever carries 8 bits per channel
		return image.NewRGBA(r)
	}
	return image.NewRGBA64(r)
}

// CopyFrame copies the size.X by size.Y block of src at sp over dst at dp.
// Both points are relative to the top-left corner of their image's bounds.
// Destination pixels are overwritten, not blended, and nothing outside the
// destination block is touched.
//
// A *BoundsError is returned, and nothing is written, if either block falls
// outside its image.
func CopyFrame(dst draw.Image, dp image.Point, src image.Image, sp, size image.Point) error {
	sr := image.Rectangle{Min: sp, Max: sp.Add(size)}.Add(src.Bounds().Min)
	if sr.Empty() || !sr.In(src.Bounds()) {
		return &BoundsError{Op: "source", Rect: sr, Bounds: src.Bounds()}
	}

	dr := image.Rectangle{Min: dp, Max: dp.Add(size)}.Add(dst.Bounds().Min)
	if !dr.In(dst.Bounds()) {
		return &BoundsError{Op: "destination", Rect: dr, Bounds: dst.Bounds()}
	}

	if !copyPixels(dst, dr, src, sr) {
		draw.Draw(dst, dr, src, sr.Min, draw.Src)
	}
	return nil
}
