package framerev

import (
	"image"

	"golang.org/x/image/draw"
)

// Repack cuts src into frames of the given size and returns a new image with
// framesPerRow frames in each row, or the same number per row as src if
// framesPerRow is zero. src is not modified and the returned image is not
// retained.
func (r *Repacker) Repack(src image.Image, frame image.Point, framesPerRow int) (draw.Image, error) {
	g, err := ComputeGeometry(src.Bounds().Size(), frame, framesPerRow)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Computed geometry",
		"source", src.Bounds().Size(),
		"frame", g.Frame,
		"frames", g.TotalFrames(),
		"src_grid", image.Pt(g.SrcFramesX, g.SrcFramesY),
		"dest_grid", image.Pt(g.DestFramesX, g.DestFramesY))

	dst := NewCanvas(src, g.Bounds())

	if r.workers > 1 {
		err = r.copyFramesParallel(dst, src, g)
	} else {
		err = copyFrames(dst, src, g)
	}
	if err != nil {
		return nil, err
	}

	return dst, nil
}

func copyFrames(dst draw.Image, src image.Image, g Geometry) error {
	for x := 0; x < g.SrcFramesX; x++ {
		for y := 0; y < g.SrcFramesY; y++ {
			if err := CopyFrame(dst, g.DestOffset(x, y), src, g.SourceOffset(x, y), g.Frame); err != nil {
				return err
			}
		}
	}
	return nil
}
