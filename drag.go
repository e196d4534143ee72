package gowire3d

type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DragRotate turns a pointer drag into rotation angles. One pixel of
// horizontal movement is one degree about Y, one pixel of vertical movement
// one degree about X, both measured from where the drag started.
type DragRotate struct {
	state          DragState
	startX, startY int
}

func (d *DragRotate) State() DragState {
	return d.state
}

// Press starts a drag at (x,y), abandoning any drag in progress.
func (d *DragRotate) Press(x, y int) {
	d.state = DragDragging
	d.startX, d.startY = x, y
}

// Drag returns the rotation for the pointer now at (x,y). ok is false when
// no drag is in progress.
func (d *DragRotate) Drag(x, y int) (aboutY, aboutX float64, ok bool) {
	if d.state != DragDragging {
		return 0, 0, false
	}
	aboutY, aboutX = DragAngles(d.startX, d.startY, x, y)
	return aboutY, aboutX, true
}

// Release ends the drag and returns its final rotation.
func (d *DragRotate) Release(x, y int) (aboutY, aboutX float64, ok bool) {
	aboutY, aboutX, ok = d.Drag(x, y)
	d.state = DragIdle
	return aboutY, aboutX, ok
}

// DragAngles converts a pixel delta into radians about Y and X.
func DragAngles(startX, startY, x, y int) (aboutY, aboutX float64) {
	return DegreesToRadians(x - startX), DegreesToRadians(y - startY)
}

// ApplyDrag rotates about Y first, then about X.
func ApplyDrag(base *Mesh, aboutY, aboutX float64) *Mesh {
	return base.RotateAboutY(aboutY).RotateAboutX(aboutX)
}
