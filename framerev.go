/*
Package framerev is a library for repacking grid-organized sprite sheets.

A source image is cut into equally sized frames laid out in a grid. The
frames are read column by column and written row by row into a new image
with a possibly different number of frames per row. Any pixels at the right
or bottom edge that don't make up a whole frame are dropped and any unused
cells at the end of the destination are left zeroed.
*/
package framerev

import (
	"io"

	"github.com/charmbracelet/log"
)

// Repacker repacks sprite sheets.
type Repacker struct {
	logger  *log.Logger
	workers int
}

// Option configures a Repacker
type Option func(*Repacker)

// WithWorkers sets the number of frames copied concurrently. Values less
// than two copy each frame in turn.
func WithWorkers(n int) Option {
	return func(r *Repacker) {
		r.workers = n
	}
}

// New returns a Repacker that logs to logger. A nil logger discards
// everything.
func New(logger *log.Logger, opts ...Option) *Repacker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Repacker{
		logger:  logger,
		workers: 1,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}
