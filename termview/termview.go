// Package termview shows a rendered mesh in a terminal using half-block
// cells, two canvas rows per terminal row.
package termview

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/smasonuk/gowire3d"
)

const keyStepDegrees = 5

// Present shrinks img onto the screen. Each terminal cell covers a block
// of pixels; a half cell takes the colour of any non-background pixel in
// its block, else the background.
func Present(s tcell.Screen, img *image.RGBA, bg color.RGBA) {
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	b := img.Bounds()
	block := blockSize(b.Dx(), b.Dy(), cols, rows)

	s.Clear()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := sample(img, bg, cx*block, 2*cy*block, block)
			bottom := sample(img, bg, cx*block, (2*cy+1)*block, block)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			s.SetContent(cx, cy, '▀', nil, style)
		}
	}
	s.Show()
}

// blockSize is the smallest square block that fits w x h pixels into
// cols x 2*rows half cells.
func blockSize(w, h, cols, rows int) int {
	bx := (w + cols - 1) / cols
	by := (h + 2*rows - 1) / (2 * rows)
	return max(bx, by, 1)
}

func sample(img *image.RGBA, bg color.RGBA, x0, y0, block int) color.RGBA {
	r := image.Rect(x0, y0, x0+block, y0+block).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c := img.RGBAAt(x, y); c != bg {
				return c
			}
		}
	}
	return bg
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

type view struct {
	loaded    *gowire3d.Mesh
	committed *gowire3d.Mesh
	current   *gowire3d.Mesh
	drag      gowire3d.DragRotate
	cfg       gowire3d.Config
	logger    *slog.Logger
}

func (v *view) draw(s tcell.Screen) {
	job := gowire3d.RenderJob{
		Mesh:       v.current,
		Width:      v.cfg.Width,
		Height:     v.cfg.Height,
		Color:      v.cfg.LineColor(),
		Background: v.cfg.BackgroundColor(),
	}
	img, err := job.Render()
	if err != nil {
		v.logger.Error("render failed", "err", err)
		return
	}
	Present(s, img, v.cfg.BackgroundColor())
}

// pixelsPerCell converts cell positions into canvas pixels so a drag
// rotates by the same amount as it would in a full-size window.
func (v *view) pixelsPerCell(s tcell.Screen) (int, int) {
	cols, rows := s.Size()
	block := blockSize(v.cfg.Width, v.cfg.Height, max(cols, 1), max(rows, 1))
	return block, 2 * block
}

func (v *view) rotateBy(aboutY, aboutX float64) {
	v.committed = gowire3d.ApplyDrag(v.committed, aboutY, aboutX)
	v.current = v.committed
}

// Run takes over an initialised screen until q, Esc or Ctrl-C. Arrow keys
// rotate in fixed steps; dragging with the left button rotates freely.
func Run(s tcell.Screen, mesh *gowire3d.Mesh, cfg gowire3d.Config, logger *slog.Logger) error {
	if mesh == nil {
		return gowire3d.ErrNoMesh
	}
	if logger == nil {
		logger = slog.Default()
	}
	v := &view{loaded: mesh, committed: mesh, current: mesh, cfg: cfg, logger: logger}
	s.EnableMouse()
	v.draw(s)

	step := gowire3d.DegreesToRadians(keyStepDegrees)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyLeft:
				v.rotateBy(-step, 0)
			case tcell.KeyRight:
				v.rotateBy(step, 0)
			case tcell.KeyUp:
				v.rotateBy(0, -step)
			case tcell.KeyDown:
				v.rotateBy(0, step)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return nil
				case 'r', 'R':
					v.committed, v.current = v.loaded, v.loaded
				}
			}
		case *tcell.EventMouse:
			px, py := v.pixelsPerCell(s)
			x, y := ev.Position()
			x, y = x*px, y*py
			pressed := ev.Buttons()&tcell.Button1 != 0
			switch {
			case pressed && v.drag.State() == gowire3d.DragIdle:
				v.drag.Press(x, y)
				continue
			case pressed:
				if ay, ax, ok := v.drag.Drag(x, y); ok {
					v.current = gowire3d.ApplyDrag(v.committed, ay, ax)
				}
			case v.drag.State() == gowire3d.DragDragging:
				if ay, ax, ok := v.drag.Release(x, y); ok {
					v.rotateBy(ay, ax)
				}
			default:
				continue
			}
		}
		v.draw(s)
	}
}
