package framerev

import "image"

// Frame locates one frame in both the source and destination images.
type Frame struct {
	// Index is the position of the frame in traversal order
	Index int
	// Grid is the column and row of the frame in the source grid
	Grid image.Point
	// Source and Dest are the pixel offsets of the top-left corner
	Source, Dest image.Point
}

// Index returns the linear position of the frame at column x, row y of the
// source grid. The source is walked column by column so the index advances
// fastest down each column.
func (g Geometry) Index(x, y int) int {
	return x*g.SrcFramesY + y
}

// Cell returns the column and row of the destination grid that holds the
// frame with linear position i. The destination is filled row by row.
func (g Geometry) Cell(i int) image.Point {
	return image.Pt(i%g.DestFramesX, i/g.DestFramesX)
}

// SourceOffset returns the pixel offset of the frame at column x, row y of
// the source grid.
func (g Geometry) SourceOffset(x, y int) image.Point {
	return image.Pt(x*g.Frame.X, y*g.Frame.Y)
}

// DestOffset returns the pixel offset in the destination of the frame at
// column x, row y of the source grid.
func (g Geometry) DestOffset(x, y int) image.Point {
	c := g.Cell(g.Index(x, y))
	return image.Pt(c.X*g.Frame.X, c.Y*g.Frame.Y)
}

// Frames returns every frame of the source grid in traversal order.
func (g Geometry) Frames() []Frame {
	frames := make([]Frame, 0, g.TotalFrames())
	for x := 0; x < g.SrcFramesX; x++ {
		for y := 0; y < g.SrcFramesY; y++ {
			frames = append(frames, Frame{
				Index:  g.Index(x, y),
				Grid:   image.Pt(x, y),
				Source: g.SourceOffset(x, y),
				Dest:   g.DestOffset(x, y),
			})
		}
	}
	return frames
}
