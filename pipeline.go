package framerev

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/bodgit/framerev/manifest"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

var errCancelled = errors.New("framerev: batch cancelled")

// copyFramesParallel copies every frame using up to r.workers goroutines.
// Each frame lands in its own destination cell so the writes never overlap.
func (r *Repacker) copyFramesParallel(dst draw.Image, src image.Image, g Geometry) error {
	var eg errgroup.Group
	eg.SetLimit(r.workers)
	for _, f := range g.Frames() {
		eg.Go(func() error {
			return CopyFrame(dst, f.Dest, src, f.Source, g.Frame)
		})
	}
	return eg.Wait()
}

func queueSheets(ctx context.Context, sheets []manifest.Sheet) <-chan manifest.Sheet {
	out := make(chan manifest.Sheet)
	go func() {
		defer close(out)
		for _, s := range sheets {
			select {
			case out <- s:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (r *Repacker) sheetWorker(ctx context.Context, in <-chan manifest.Sheet) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for s := range in {
			if ctx.Err() != nil {
				errc <- errCancelled
				return
			}
			if err := r.repackSheet(s); err != nil {
				errc <- fmt.Errorf("sheet %q: %w", s.Name, err)
				return
			}
		}
	}()
	return errc
}

// waitForPipeline waits for every stage to finish and returns the first
// error. The first error also calls cancel so the remaining stages stop
// picking up new work.
func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
