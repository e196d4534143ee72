package gowire3d

// EdgeSet collects edges once each, in the order they were first added.
// A duplicate keeps the orientation of the first insertion.
type EdgeSet struct {
	edges []Edge
	index map[edgeKey]int
}

func NewEdgeSet() *EdgeSet {
	return &EdgeSet{
		edges: make([]Edge, 0, 10),
		index: make(map[edgeKey]int),
	}
}

// EdgesOf explodes every face and deduplicates the boundaries shared by
// adjacent faces.
func EdgesOf(faces []Face) *EdgeSet {
	es := &EdgeSet{
		edges: make([]Edge, 0, len(faces)*3),
		index: make(map[edgeKey]int, len(faces)*3),
	}
	for _, f := range faces {
		for _, e := range f.Explode() {
			es.Add(e)
		}
	}
	return es
}

// Add reports whether e was new.
func (es *EdgeSet) Add(e Edge) bool {
	k := e.key()
	if _, found := es.index[k]; found {
		return false
	}
	es.edges = append(es.edges, e)
	es.index[k] = len(es.edges) - 1
	return true
}

func (es *EdgeSet) Contains(e Edge) bool {
	_, found := es.index[e.key()]
	return found
}

func (es *EdgeSet) Len() int {
	return len(es.edges)
}

// Edges returns a copy in insertion order.
func (es *EdgeSet) Edges() []Edge {
	out := make([]Edge, len(es.edges))
	copy(out, es.edges)
	return out
}
