package gowire3d

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"
	"math/bits"
)

const (
	// worldScale is the number of pixels per world unit.
	worldScale = 100

	vertexMarkerRadius = 2
)

// Rasterizer draws a mesh as an orthographic wireframe into its own RGBA
// buffer. An instance renders exactly one frame; create a new one per
// frame and do not share it between goroutines while Render runs.
type Rasterizer struct {
	width, height int
	background    color.RGBA
	img           *image.RGBA
	logger        *slog.Logger
	used          bool
}

func NewRasterizer(width, height int) *Rasterizer {
	return NewRasterizerWithBackground(width, height, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

// NewRasterizerWithBackground panics on a non-positive size, like
// image.NewRGBA would on overflow.
func NewRasterizerWithBackground(width, height int, background color.Color) *Rasterizer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gowire3d: invalid canvas size %dx%d", width, height))
	}
	bg := color.RGBAModel.Convert(background).(color.RGBA)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Rasterizer{
		width:      width,
		height:     height,
		background: bg,
		img:        img,
		logger:     slog.Default(),
	}
}

func (r *Rasterizer) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	r.logger = logger
}

func (r *Rasterizer) Width() int              { return r.width }
func (r *Rasterizer) Height() int             { return r.height }
func (r *Rasterizer) Bounds() image.Rectangle { return r.img.Bounds() }

// Render draws a filled marker for every vertex and one line per distinct
// face edge, all in col, and returns the buffer. A nil mesh is logged and
// reported as ErrNoMesh; a face naming a missing vertex is reported before
// any pixel is written.
func (r *Rasterizer) Render(mesh *Mesh, col color.Color) (*image.RGBA, error) {
	if mesh == nil {
		r.logger.Warn("could not draw mesh, because mesh was nil",
			"width", r.width, "height", r.height)
		return nil, ErrNoMesh
	}
	if r.used {
		return nil, ErrRasterizerUsed
	}
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	r.used = true

	c := color.RGBAModel.Convert(col).(color.RGBA)

	for _, id := range mesh.VertexIDs() {
		p, _ := mesh.Vertex(id)
		x, y := r.pixelOf(p)
		r.drawFilledCircle(x, y, vertexMarkerRadius, c)
	}

	for _, e := range EdgesOf(mesh.faces).Edges() {
		p1, _ := mesh.Vertex(e.Id1)
		p2, _ := mesh.Vertex(e.Id2)
		x0, y0 := r.pixelOf(p1.ProjectOnXY())
		x1, y1 := r.pixelOf(p2.ProjectOnXY())
		r.drawLine(x0, y0, x1, y1, c)
	}

	return r.img, nil
}

// CanvasCoordinates maps world space to canvas space: scaled by 100, y
// flipped, origin moved to the canvas centre. The result has z = 0.
func (r *Rasterizer) CanvasCoordinates(p *Point3d) *Point3d {
	return NewPoint3d(
		p.GetX()*worldScale+float64(r.width)/2,
		-p.GetY()*worldScale+float64(r.height)/2,
		0,
	)
}

// pixelOf floors canvas coordinates, so anything left of or above the
// canvas stays negative and is dropped.
func (r *Rasterizer) pixelOf(p *Point3d) (int, int) {
	c := r.CanvasCoordinates(p)
	return int(math.Floor(c.GetX())), int(math.Floor(c.GetY()))
}

// setPixel silently drops anything outside the canvas.
func (r *Rasterizer) setPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.img.SetRGBA(x, y, c)
}

// drawLine walks only the steps whose major coordinate is on the canvas.
// The pixels plotted are the same as for the full line.
func (r *Rasterizer) drawLine(x0, y0, x1, y1 int, c color.RGBA) {
	l := newLineWalk(x0, y0, x1, y1)
	from, to := 0, l.steps()
	if l.major.X != 0 {
		from, to = clipSteps(x0, l.major.X, r.width, from, to)
	} else {
		from, to = clipSteps(y0, l.major.Y, r.height, from, to)
	}
	l.walk(from, to, func(x, y int) { r.setPixel(x, y, c) })
}

// clipSteps narrows [from,to] to the steps k for which start+dir*k lies
// in [0,size).
func clipSteps(start, dir, size, from, to int) (int, int) {
	lo, hi := -start, size-1-start
	if dir < 0 {
		lo, hi = start-(size-1), start
	}
	return max(from, lo), min(to, hi)
}

func (r *Rasterizer) drawFilledCircle(xc, yc, radius int, c color.RGBA) {
	MidpointCircle(xc, yc, radius, true, func(x, y int) { r.setPixel(x, y, c) })
}

// BresenhamLine calls plot for every pixel of the 8-connected line from
// (x0,y0) to (x1,y1), endpoints included, each pixel once.
func BresenhamLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	l := newLineWalk(x0, y0, x1, y1)
	l.walk(0, l.steps(), plot)
}

// lineWalk is a Bresenham line seen as steps along its longer axis. At
// step k the shorter axis has moved round(k*m/n) pixels, halves rounding
// up, which is what the incremental error term produces.
type lineWalk struct {
	x0, y0 int
	major  image.Point // unit step along the longer axis
	minor  image.Point // unit step along the shorter axis
	n, m   uint64      // longer and shorter extent
}

func newLineWalk(x0, y0, x1, y1 int) lineWalk {
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	dx, dy := uint64(abs(x1-x0)), uint64(abs(y1-y0))
	if dx >= dy {
		return lineWalk{x0: x0, y0: y0, major: image.Pt(sx, 0), minor: image.Pt(0, sy), n: dx, m: dy}
	}
	return lineWalk{x0: x0, y0: y0, major: image.Pt(0, sy), minor: image.Pt(sx, 0), n: dy, m: dx}
}

func (l lineWalk) steps() int {
	return int(l.n)
}

// walk plots steps from..to inclusive.
func (l lineWalk) walk(from, to int, plot func(x, y int)) {
	if from > to {
		return
	}
	if l.n == 0 {
		plot(l.x0, l.y0)
		return
	}
	// Error term: 2*k*m + n = q*2n + rem, 0 <= rem < 2n.
	q, rem := l.minorOffset(uint64(from))
	for k := from; ; k++ {
		plot(l.x0+l.major.X*k+l.minor.X*int(q), l.y0+l.major.Y*k+l.minor.Y*int(q))
		if k == to {
			return
		}
		rem += 2 * l.m
		if rem >= 2*l.n {
			rem -= 2 * l.n
			q++
		}
	}
}

// minorOffset computes the error state at step k in 128 bits, since k*m
// overflows for far-away endpoints.
func (l lineWalk) minorOffset(k uint64) (q, rem uint64) {
	hi, lo := bits.Mul64(2*k, l.m)
	lo, carry := bits.Add64(lo, l.n, 0)
	return bits.Div64(hi+carry, lo, 2*l.n)
}

// MidpointCircle walks one octant of the circle of radius r around
// (xc,yc) and plots its eight mirror images. With filled set it also draws
// a spoke from the centre to each of those points, so pixels near the
// centre are plotted more than once.
func MidpointCircle(xc, yc, r int, filled bool, plot func(x, y int)) {
	x, y := 0, r
	d := 3 - 2*r

	octants := func(x, y int) {
		pts := [8][2]int{
			{xc + x, yc + y}, {xc + y, yc + x},
			{xc - x, yc + y}, {xc - y, yc + x},
			{xc - x, yc - y}, {xc - y, yc - x},
			{xc + x, yc - y}, {xc + y, yc - x},
		}
		for _, p := range pts {
			plot(p[0], p[1])
			if filled {
				BresenhamLine(xc, yc, p[0], p[1], plot)
			}
		}
	}

	octants(x, y)
	for y >= x {
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*(x-y) + 6
		}
		octants(x, y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
