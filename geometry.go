package framerev

import "image"

const (
	// MaxDimension is the largest width or height of a destination image
	MaxDimension = 1<<32 - 1
	// MaxPixels is the largest number of pixels in a destination image
	MaxPixels = 1 << 28
)

// Geometry describes how the frames of a source sheet map onto the
// destination sheet.
type Geometry struct {
	// Frame is the width and height of a single frame in pixels
	Frame image.Point

	SrcFramesX, SrcFramesY   int
	DestFramesX, DestFramesY int
}

// divCeil divides two non-negative integers, rounding up if there is a
// remainder.
func divCeil(dividend, divisor int) int {
	q, r := dividend/divisor, dividend%divisor
	if r != 0 {
		q++
	}
	return q
}

// ComputeGeometry works out the source and destination grids for a source
// image of the given size cut into frames of the given size. If framesPerRow
// is zero the destination uses the same number of frames per row as the
// source.
//
// Any partial row or column of pixels at the right or bottom edge of the
// source is not part of the grid.
func ComputeGeometry(source, frame image.Point, framesPerRow int) (Geometry, error) {
	for _, p := range []struct {
		name  string
		value int
	}{
		{"frame width", frame.X},
		{"frame height", frame.Y},
		{"source width", source.X},
		{"source height", source.Y},
	} {
		if err := positive(p.name, p.value); err != nil {
			return Geometry{}, err
		}
	}
	if framesPerRow < 0 {
		return Geometry{}, &ConfigError{Param: "frames per row", Err: ErrNegative}
	}

	if frame.X > source.X || frame.Y > source.Y {
		return Geometry{}, frameTooLarge(source, frame)
	}

	g := Geometry{
		Frame:      frame,
		SrcFramesX: source.X / frame.X,
		SrcFramesY: source.Y / frame.Y,
	}

	g.DestFramesX = g.SrcFramesX
	if framesPerRow > 0 {
		g.DestFramesX = framesPerRow
	}
	g.DestFramesY = divCeil(g.TotalFrames(), g.DestFramesX)

	if !fits(g.DestFramesX, g.DestFramesY, frame) {
		if framesPerRow > 0 {
			return Geometry{}, &ConfigError{Param: "frames per row", Err: ErrCanvasTooLarge}
		}
		return Geometry{}, &InputError{Err: ErrCanvasTooLarge}
	}

	return g, nil
}

// fits reports whether a grid of cols by rows frames can be allocated as a
// single image. The products are checked without overflowing.
func fits(cols, rows int, frame image.Point) bool {
	if int64(cols) > MaxDimension/int64(frame.X) || int64(rows) > MaxDimension/int64(frame.Y) {
		return false
	}
	w, h := int64(cols)*int64(frame.X), int64(rows)*int64(frame.Y)
	return h <= MaxPixels/w
}

// TotalFrames returns the number of whole frames in the source
func (g Geometry) TotalFrames() int {
	return g.SrcFramesX * g.SrcFramesY
}

// Size returns the width and height of the destination image in pixels
func (g Geometry) Size() image.Point {
	return image.Pt(g.DestFramesX*g.Frame.X, g.DestFramesY*g.Frame.Y)
}

// Bounds returns the bounds of the destination image
func (g Geometry) Bounds() image.Rectangle {
	return image.Rectangle{Max: g.Size()}
}
