package framerev

import (
	"context"
	"image"

	"github.com/bodgit/framerev/manifest"
)

func (r *Repacker) repackSheet(s manifest.Sheet) error {
	for _, p := range []struct {
		name  string
		value int
	}{
		{"frame_width", s.FrameWidth},
		{"frame_height", s.FrameHeight},
	} {
		if err := positive(p.name, p.value); err != nil {
			return err
		}
	}

	var framesPerRow int
	if s.FramesPerRow != nil {
		if err := positive("frames_per_row", *s.FramesPerRow); err != nil {
			return err
		}
		framesPerRow = *s.FramesPerRow
	}

	return r.RepackFile(s.Input, s.Output, image.Pt(s.FrameWidth, s.FrameHeight), framesPerRow)
}

// Batch repacks every sheet listed in the manifest at path. Up to the
// number of workers set in the manifest run at once. The first failure stops
// any sheets not yet started and is returned.
func (r *Repacker) Batch(path string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return &ConfigError{Param: "manifest", Err: err}
	}

	workers := m.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(m.Sheets) {
		workers = len(m.Sheets)
	}

	r.logger.Debug("Loaded manifest", "path", path, "sheets", len(m.Sheets), "workers", workers)

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	sheets := queueSheets(ctx, m.Sheets)

	errcList := make([]<-chan error, 0, workers)
	for i := 0; i < workers; i++ {
		errcList = append(errcList, r.sheetWorker(ctx, sheets))
	}

	return waitForPipeline(cancelFunc, errcList...)
}
