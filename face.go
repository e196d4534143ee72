package gowire3d

// Face is a triangle given by three vertex ids in winding order. Ids are
// not checked against any mesh here; see Mesh.Validate.
type Face struct {
	Id1 int
	Id2 int
	Id3 int
}

func NewFace(id1, id2, id3 int) Face {
	return Face{Id1: id1, Id2: id2, Id3: id3}
}

// Explode returns the boundary edges (1,2), (2,3) and (3,1).
func (f Face) Explode() [3]Edge {
	return [3]Edge{
		NewEdge(f.Id1, f.Id2),
		NewEdge(f.Id2, f.Id3),
		NewEdge(f.Id3, f.Id1),
	}
}

// Ids returns the vertex ids in winding order.
func (f Face) Ids() [3]int {
	return [3]int{f.Id1, f.Id2, f.Id3}
}
