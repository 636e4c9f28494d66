package framerev

import (
	"errors"
	"fmt"
	"image"
	"strconv"
)

var (
	// ErrZero is returned when a parameter that must be positive is zero
	ErrZero = errors.New("framerev: integer cannot be zero")
	// ErrNegative is returned when a parameter that must be positive is
	// negative
	ErrNegative = errors.New("framerev: integer cannot be negative")
	// ErrFrameTooLarge is returned when a frame does not fit inside the
	// source image
	ErrFrameTooLarge = errors.New("framerev: frames cannot be larger than source image")
	// ErrCanvasTooLarge is returned when the destination image would be
	// too large to allocate
	ErrCanvasTooLarge = errors.New("framerev: destination image too large")
)

// ConfigError reports an invalid caller-supplied parameter.
type ConfigError struct {
	Param string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Param, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// InputError reports a source image that cannot be used, either because it
// could not be read or because the frames do not fit inside it. Path is
// empty when the image was supplied already decoded.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// BoundsError reports a computed rectangle that falls outside the image it
// addresses. It indicates a bug in the geometry or indexing.
type BoundsError struct {
	Op     string
	Rect   image.Rectangle
	Bounds image.Rectangle
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("framerev: %s rectangle %v outside bounds %v", e.Op, e.Rect, e.Bounds)
}

// OutputError reports a destination image that could not be encoded or
// written.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

func frameTooLarge(source, frame image.Point) error {
	return &InputError{
		Err: fmt.Errorf("%w: frame %dx%d, source %dx%d", ErrFrameTooLarge, frame.X, frame.Y, source.X, source.Y),
	}
}

func positive(param string, n int) error {
	switch {
	case n == 0:
		return &ConfigError{Param: param, Err: ErrZero}
	case n < 0:
		return &ConfigError{Param: param, Err: ErrNegative}
	}
	return nil
}

// ParsePositive parses s as a positive, non-zero integer. Any failure is
// returned as a *ConfigError naming param.
func ParsePositive(param, s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, &ConfigError{Param: param, Err: err}
	}
	if err := positive(param, int(n)); err != nil {
		return 0, err
	}
	return int(n), nil
}
