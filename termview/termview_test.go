package termview

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/gowire3d"
)

func simScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(cols, rows)
	return s
}

func TestBlockSize(t *testing.T) {
	testCases := []struct {
		w, h, cols, rows, want int
	}{
		{4, 4, 2, 1, 2},
		{800, 800, 80, 24, 17},
		{10, 10, 80, 24, 1},
		{160, 10, 80, 24, 2},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, blockSize(tc.w, tc.h, tc.cols, tc.rows), "%+v", tc)
	}
}

func TestPresentHalfBlocks(t *testing.T) {
	s := simScreen(t, 2, 1)
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red := color.RGBA{R: 255, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(1, 3, red) // left cell, lower half
	img.SetRGBA(2, 0, red) // right cell, upper half

	Present(s, img, bg)

	testCases := []struct {
		x      int
		fg, bg color.RGBA
	}{
		{0, bg, red},
		{1, red, bg},
	}
	for _, tc := range testCases {
		r, _, style, _ := s.GetContent(tc.x, 0)
		assert.Equal(t, '▀', r)
		fg, back, _ := style.Decompose()
		assert.Equal(t, tcellColor(tc.fg), fg, "cell %d top", tc.x)
		assert.Equal(t, tcellColor(tc.bg), back, "cell %d bottom", tc.x)
	}
}

func TestRunQuitsAndRotates(t *testing.T) {
	s := simScreen(t, 40, 20)
	cfg := gowire3d.DefaultConfig()
	cfg.Width, cfg.Height = 80, 80

	mesh := gowire3d.NewMesh(map[int]*gowire3d.Point3d{1: gowire3d.NewPoint3d(0, 0, 0)}, nil)
	s.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- Run(s, mesh, cfg, nil) }()
	assert.NoError(t, <-done)
}

func TestRunNilMesh(t *testing.T) {
	s := simScreen(t, 10, 10)
	assert.ErrorIs(t, Run(s, nil, gowire3d.DefaultConfig(), nil), gowire3d.ErrNoMesh)
}

func TestViewRotateAndReset(t *testing.T) {
	mesh := gowire3d.NewMesh(map[int]*gowire3d.Point3d{1: gowire3d.NewPoint3d(1, 0, 0)}, nil)
	v := &view{loaded: mesh, committed: mesh, current: mesh}

	v.rotateBy(gowire3d.DegreesToRadians(90), 0)
	p, _ := v.current.Vertex(1)
	assert.InDelta(t, -1.0, p.GetZ(), 1e-9)
	assert.Same(t, v.committed, v.current)
	assert.NotSame(t, mesh, v.committed)
}
