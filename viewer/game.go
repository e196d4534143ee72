// Package viewer shows a mesh in an ebiten window and rotates it with
// left-button drags.
package viewer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/gowire3d"
)

type Game struct {
	loaded    *gowire3d.Mesh // as read from disk, for reset
	committed *gowire3d.Mesh // orientation after the last finished drag
	drag      gowire3d.DragRotate

	width, height int
	lineColor     color.RGBA
	background    color.RGBA
	caption       bool

	queue   *gowire3d.RenderQueue
	frame   *ebiten.Image
	lastGen uint64
	lastErr error
	lastX   int
	lastY   int
	logger  *slog.Logger
}

func NewGame(mesh *gowire3d.Mesh, cfg gowire3d.Config, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		loaded:     mesh,
		committed:  mesh,
		width:      cfg.Width,
		height:     cfg.Height,
		lineColor:  cfg.LineColor(),
		background: cfg.BackgroundColor(),
		caption:    cfg.Caption,
		queue:      gowire3d.NewRenderQueue(cfg.Workers),
		logger:     logger,
	}
	g.submit(mesh)
	return g
}

func (g *Game) submit(m *gowire3d.Mesh) {
	gen := g.queue.Submit(context.Background(), gowire3d.RenderJob{
		Mesh:       m,
		Width:      g.width,
		Height:     g.height,
		Color:      g.lineColor,
		Background: g.background,
	})
	g.logger.Debug("render submitted", "generation", gen)
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.drag.Press(x, y)
		g.lastX, g.lastY = x, y
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if ay, ax, ok := g.drag.Release(x, y); ok {
			g.committed = gowire3d.ApplyDrag(g.committed, ay, ax)
			g.submit(g.committed)
		}
	case g.drag.State() == gowire3d.DragDragging && (x != g.lastX || y != g.lastY):
		if ay, ax, ok := g.drag.Drag(x, y); ok {
			g.submit(gowire3d.ApplyDrag(g.committed, ay, ax))
		}
		g.lastX, g.lastY = x, y
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.committed = g.loaded
		g.submit(g.committed)
	}

	g.collect()
	return nil
}

// collect keeps the newest finished frame and drops stale ones.
func (g *Game) collect() {
	for {
		select {
		case res := <-g.queue.Results():
			if res.Generation < g.lastGen {
				continue
			}
			if res.Err != nil {
				g.lastErr = res.Err
				g.logger.Error("render failed", "generation", res.Generation, "err", res.Err)
				continue
			}
			g.lastGen = res.Generation
			g.lastErr = nil
			g.present(res.Image)
		default:
			return
		}
	}
}

func (g *Game) present(img *image.RGBA) {
	if g.caption {
		gowire3d.DrawCaption(img, gowire3d.MeshCaption(g.committed), g.lineColor)
	}
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	g.frame.WritePixels(img.Pix)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
	if g.lastErr != nil {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("render failed: %v", g.lastErr))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close stops accepting renders; frames still in flight are discarded.
func (g *Game) Close() {
	g.queue.Close()
	go func() {
		for range g.queue.Results() {
		}
	}()
}

// Run opens the window and blocks until it is closed.
func Run(mesh *gowire3d.Mesh, cfg gowire3d.Config, logger *slog.Logger) error {
	g := NewGame(mesh, cfg, logger)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Orthographic Viewer")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
