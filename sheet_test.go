package framerev

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newSheet returns a sheet of cols by rows frames plus extra pixels to the
// right and below. Every pixel encodes the frame it belongs to and its
// position within that frame.
func newSheet(cols, rows int, frame, extra image.Point) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, cols*frame.X+extra.X, rows*frame.Y+extra.Y))
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x / frame.X),
				G: uint8(y / frame.Y),
				B: uint8((x%frame.X)*frame.Y + y%frame.Y),
				A: 0x80,
			})
		}
	}
	return m
}

func equal(c0, c1 color.Color) bool {
	r0, g0, b0, a0 := c0.RGBA()
	r1, g1, b1, a1 := c1.RGBA()
	return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
}

// assertBlock checks the size block of dst at dp holds exactly the pixels of
// the block of src at sp.
func assertBlock(t *testing.T, dst image.Image, dp image.Point, src image.Image, sp, size image.Point) {
	t.Helper()
	db, sb := dst.Bounds().Min, src.Bounds().Min
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			d := dst.At(db.X+dp.X+x, db.Y+dp.Y+y)
			s := src.At(sb.X+sp.X+x, sb.Y+sp.Y+y)
			if !assert.Equal(t, s, d, "pixel %d,%d of block at %v", x, y, dp) {
				return
			}
		}
	}
}

// assertZero checks every pixel of r in m is the zero value.
func assertZero(t *testing.T, m image.Image, r image.Rectangle) {
	t.Helper()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !assert.True(t, equal(m.At(x, y), color.Transparent), "pixel %d,%d is %v", x, y, m.At(x, y)) {
				return
			}
		}
	}
}
