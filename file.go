package framerev

import (
	"errors"
	"image"

	"github.com/bodgit/framerev/codec"
)

// RepackFile repacks the image file at input and writes the result to
// output, whose extension selects the output format. Nothing is written to
// output unless the whole repack succeeds.
func (r *Repacker) RepackFile(input, output string, frame image.Point, framesPerRow int) error {
	// Catch an unusable output path before doing any work
	if _, err := codec.FormatFromPath(output); err != nil {
		return &OutputError{Path: output, Err: err}
	}

	src, err := codec.Open(input)
	if err != nil {
		return &InputError{Path: input, Err: err}
	}

	dst, err := r.Repack(src, frame, framesPerRow)
	if err != nil {
		var ie *InputError
		if errors.As(err, &ie) && ie.Path == "" {
			ie.Path = input
		}
		return err
	}

	if err := codec.Save(output, dst); err != nil {
		return &OutputError{Path: output, Err: err}
	}

	r.logger.Info("Repacked sheet", "input", input, "output", output, "size", dst.Bounds().Size())

	return nil
}
