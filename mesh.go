package gowire3d

import "sort"

// Mesh maps vertex ids to points and lists triangular faces by id. A Mesh
// is never modified after construction; rotations build a new one that
// shares the face slice.
type Mesh struct {
	vertices map[int]*Point3d
	faces    []Face
}

// NewMesh copies the vertex map. Faces are kept as given and must not be
// modified by the caller afterwards.
func NewMesh(vertices map[int]*Point3d, faces []Face) *Mesh {
	vs := make(map[int]*Point3d, len(vertices))
	for id, p := range vertices {
		vs[id] = p
	}
	return &Mesh{vertices: vs, faces: faces}
}

func (m *Mesh) NumVertices() int { return len(m.vertices) }
func (m *Mesh) NumFaces() int    { return len(m.faces) }

func (m *Mesh) Vertex(id int) (*Point3d, bool) {
	p, ok := m.vertices[id]
	return p, ok
}

// VertexIDs returns every id in ascending order.
func (m *Mesh) VertexIDs() []int {
	ids := make([]int, 0, len(m.vertices))
	for id := range m.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (m *Mesh) Faces() []Face {
	out := make([]Face, len(m.faces))
	copy(out, m.faces)
	return out
}

// Edges returns the deduplicated face boundaries.
func (m *Mesh) Edges() []Edge {
	return EdgesOf(m.faces).Edges()
}

// Validate returns a *DanglingVertexError for the first face id that has no
// vertex.
func (m *Mesh) Validate() error {
	for i, f := range m.faces {
		for _, id := range f.Ids() {
			if _, ok := m.vertices[id]; !ok {
				return &DanglingVertexError{Face: i, VertexID: id}
			}
		}
	}
	return nil
}

func (m *Mesh) transform(fn func(*Point3d) *Point3d) *Mesh {
	vs := make(map[int]*Point3d, len(m.vertices))
	for id, p := range m.vertices {
		vs[id] = fn(p)
	}
	return &Mesh{vertices: vs, faces: m.faces}
}

func (m *Mesh) RotateAboutX(theta float64) *Mesh {
	return m.transform(func(p *Point3d) *Point3d { return p.RotateAboutX(theta) })
}

func (m *Mesh) RotateAboutY(theta float64) *Mesh {
	return m.transform(func(p *Point3d) *Point3d { return p.RotateAboutY(theta) })
}

// RotateAboutZ applies Point3d.RotateAboutZ, which is not a true rotation.
func (m *Mesh) RotateAboutZ(theta float64) *Mesh {
	return m.transform(func(p *Point3d) *Point3d { return p.RotateAboutZ(theta) })
}

func (m *Mesh) Rotate(axis Axis, theta float64) *Mesh {
	return m.transform(func(p *Point3d) *Point3d { return p.Rotate(axis, theta) })
}
