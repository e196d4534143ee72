package gowire3d

import (
	"fmt"
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
)

// imageDisplayer lets tinyfont write into an RGBA image.
type imageDisplayer struct {
	img *image.RGBA
}

func (d *imageDisplayer) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplayer) SetPixel(x, y int16, c color.RGBA) {
	p := image.Pt(int(x), int(y))
	if !p.In(d.img.Bounds()) {
		return
	}
	d.img.SetRGBA(p.X, p.Y, c)
}

func (d *imageDisplayer) Display() error { return nil }

// DrawCaption writes text in the top-left corner of a finished frame.
func DrawCaption(img *image.RGBA, text string, c color.RGBA) {
	d := &imageDisplayer{img: img}
	tinyfont.WriteLine(d, &tinyfont.TomThumb, 2, 7, text, c)
}

// MeshCaption summarises a mesh for DrawCaption.
func MeshCaption(m *Mesh) string {
	return fmt.Sprintf("%d vertices, %d faces, %d edges", m.NumVertices(), m.NumFaces(), len(m.Edges()))
}
