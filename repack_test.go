package framerev

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepackSquare(t *testing.T) {
	frame := image.Pt(32, 32)
	src := newSheet(2, 2, frame, image.Point{})

	dst, err := New(nil).Repack(src, frame, 0)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 64, 64), dst.Bounds())

	// Source frames are read down each column
	assertBlock(t, dst, image.Pt(0, 0), src, image.Pt(0, 0), frame)
	assertBlock(t, dst, image.Pt(32, 0), src, image.Pt(0, 32), frame)
	assertBlock(t, dst, image.Pt(0, 32), src, image.Pt(32, 0), frame)
	assertBlock(t, dst, image.Pt(32, 32), src, image.Pt(32, 32), frame)
}

func TestRepackIdentity(t *testing.T) {
	frame := image.Pt(32, 32)
	src := newSheet(3, 1, frame, image.Point{})

	dst, err := New(nil).Repack(src, frame, 0)
	require.NoError(t, err)

	m, ok := dst.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, src.Rect, m.Rect)
	assert.Equal(t, src.Pix, m.Pix)
}

func TestRepackOverride(t *testing.T) {
	frame := image.Pt(32, 32)
	src := newSheet(3, 1, frame, image.Point{})

	dst, err := New(nil).Repack(src, frame, 2)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 64, 64), dst.Bounds())

	assertBlock(t, dst, image.Pt(0, 0), src, image.Pt(0, 0), frame)
	assertBlock(t, dst, image.Pt(32, 0), src, image.Pt(32, 0), frame)
	assertBlock(t, dst, image.Pt(0, 32), src, image.Pt(64, 0), frame)

	// The trailing cell is never written
	assertZero(t, dst, image.Rect(32, 32, 64, 64))
}

func TestRepackRemainder(t *testing.T) {
	frame := image.Pt(32, 32)
	src := newSheet(3, 1, frame, image.Pt(4, 18))
	require.Equal(t, image.Rect(0, 0, 100, 50), src.Bounds())

	dst, err := New(nil).Repack(src, frame, 0)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 96, 32), dst.Bounds())

	for x := 0; x < 3; x++ {
		assertBlock(t, dst, image.Pt(x*32, 0), src, image.Pt(x*32, 0), frame)
	}
}

func TestRepackFidelity(t *testing.T) {
	frame := image.Pt(5, 3)
	src := newSheet(4, 3, frame, image.Pt(2, 1))

	for _, fpr := range []int{0, 1, 2, 5, 7, 12, 20} {
		dst, err := New(nil).Repack(src, frame, fpr)
		require.NoError(t, err)

		g, err := ComputeGeometry(src.Bounds().Size(), frame, fpr)
		require.NoError(t, err)
		require.Equal(t, g.Bounds(), dst.Bounds())

		written := make(map[image.Point]bool)
		for _, f := range g.Frames() {
			assertBlock(t, dst, f.Dest, src, f.Source, frame)
			written[f.Dest] = true
		}

		for cy := 0; cy < g.DestFramesY; cy++ {
			for cx := 0; cx < g.DestFramesX; cx++ {
				p := image.Pt(cx*frame.X, cy*frame.Y)
				if !written[p] {
					assertZero(t, dst, image.Rectangle{Min: p, Max: p.Add(frame)})
				}
			}
		}
	}
}

func TestRepackParallel(t *testing.T) {
	frame := image.Pt(8, 8)
	src := newSheet(9, 7, frame, image.Pt(3, 3))

	want, err := New(nil).Repack(src, frame, 5)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 64} {
		got, err := New(nil, WithWorkers(workers)).Repack(src, frame, 5)
		require.NoError(t, err)
		assert.Equal(t, want.(*image.NRGBA).Pix, got.(*image.NRGBA).Pix, "workers %d", workers)
	}
}

func TestRepackPaletted(t *testing.T) {
	pal := color.Palette{
		color.Transparent,
		color.RGBA{0xff, 0x00, 0x00, 0xff},
		color.RGBA{0x00, 0xff, 0x00, 0xff},
		color.RGBA{0x00, 0x00, 0xff, 0xff},
	}
	src := image.NewPaletted(image.Rect(0, 0, 6, 2), pal)
	for x := 0; x < 6; x++ {
		for y := 0; y < 2; y++ {
			src.SetColorIndex(x, y, uint8(x/2+1))
		}
	}

	dst, err := New(nil).Repack(src, image.Pt(2, 2), 1)
	require.NoError(t, err)

	pm, ok := dst.(*image.Paletted)
	require.True(t, ok)
	assert.Equal(t, pal, pm.Palette)
	require.Equal(t, image.Rect(0, 0, 2, 6), pm.Bounds())
	for y := 0; y < 6; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, uint8(y/2+1), pm.ColorIndexAt(x, y))
		}
	}
}

func TestRepackYCbCr(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 8, 4), image.YCbCrSubsampleRatio444)
	for i := range src.Y {
		src.Y[i] = uint8(i * 7)
		src.Cb[i] = 0x80
		src.Cr[i] = 0x80
	}

	dst, err := New(nil).Repack(src, image.Pt(4, 4), 1)
	require.NoError(t, err)
	require.IsType(t, &image.RGBA{}, dst)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.True(t, equal(src.At(x, y), dst.At(x, y)))
			assert.True(t, equal(src.At(x+4, y), dst.At(x, y+4)))
		}
	}
}

func TestRepackErrors(t *testing.T) {
	src := newSheet(1, 1, image.Pt(16, 16), image.Point{})

	dst, err := New(nil).Repack(src, image.Pt(17, 16), 0)
	assert.Nil(t, dst)
	assert.True(t, errors.Is(err, ErrFrameTooLarge))

	dst, err = New(nil).Repack(src, image.Pt(0, 16), 0)
	assert.Nil(t, dst)
	var ce *ConfigError
	assert.True(t, errors.As(err, &ce))
}
