package gowire3d

// Edge is an undirected pair of vertex ids. Edge{a, b} and Edge{b, a}
// describe the same edge.
type Edge struct {
	Id1 int
	Id2 int
}

func NewEdge(id1, id2 int) Edge {
	return Edge{Id1: id1, Id2: id2}
}

// edgeKey is the orientation-free identity of an edge.
type edgeKey [2]int

func (e Edge) key() edgeKey {
	if e.Id1 <= e.Id2 {
		return edgeKey{e.Id1, e.Id2}
	}
	return edgeKey{e.Id2, e.Id1}
}

// Equal ignores orientation.
func (e Edge) Equal(o Edge) bool {
	return e.key() == o.key()
}

// Hash is the Cantor pairing of the id sum. It is the same for both
// orientations, so it is compatible with Equal, but distinct edges with the
// same sum collide.
func (e Edge) Hash() int {
	s := e.Id1 + e.Id2
	return s * (s + 1) / 2
}
