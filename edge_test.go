package gowire3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeIsSwapInvariant(t *testing.T) {
	pairs := [][2]int{{0, 0}, {1, 2}, {7, 3}, {-4, 9}, {100, 1}}
	for _, p := range pairs {
		a, b := NewEdge(p[0], p[1]), NewEdge(p[1], p[0])
		assert.True(t, a.Equal(b), "%v vs %v", a, b)
		assert.Equal(t, a.Hash(), b.Hash())
		assert.Equal(t, a.key(), b.key())
	}
}

func TestEdgeEquality(t *testing.T) {
	assert.False(t, NewEdge(1, 2).Equal(NewEdge(1, 3)))
	// Same id sum, different edges: the hash collides but equality does not.
	assert.Equal(t, NewEdge(1, 4).Hash(), NewEdge(2, 3).Hash())
	assert.False(t, NewEdge(1, 4).Equal(NewEdge(2, 3)))
	assert.Equal(t, 10, NewEdge(1, 3).Hash())
}

func TestFaceExplode(t *testing.T) {
	edges := NewFace(5, 6, 7).Explode()
	assert.Equal(t, [3]Edge{{5, 6}, {6, 7}, {7, 5}}, edges)
}

func TestEdgeSet(t *testing.T) {
	es := NewEdgeSet()
	assert.True(t, es.Add(NewEdge(1, 2)))
	assert.False(t, es.Add(NewEdge(2, 1)))
	assert.True(t, es.Add(NewEdge(2, 3)))
	assert.True(t, es.Contains(NewEdge(3, 2)))
	assert.False(t, es.Contains(NewEdge(1, 3)))
	assert.Equal(t, 2, es.Len())
	// The first orientation wins.
	assert.Equal(t, []Edge{{1, 2}, {2, 3}}, es.Edges())
}

func TestEdgesOfSharedBoundary(t *testing.T) {
	testCases := []struct {
		name  string
		faces []Face
		want  int
	}{
		{"no faces", nil, 0},
		{"one triangle", []Face{NewFace(1, 2, 3)}, 3},
		{"two triangles share an edge", []Face{NewFace(1, 2, 3), NewFace(1, 3, 4)}, 5},
		{"same triangle twice", []Face{NewFace(1, 2, 3), NewFace(3, 2, 1)}, 3},
		{"tetrahedron", []Face{NewFace(1, 2, 3), NewFace(1, 2, 4), NewFace(2, 3, 4), NewFace(3, 1, 4)}, 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			es := EdgesOf(tc.faces)
			require.Equal(t, tc.want, es.Len())
			for _, f := range tc.faces {
				for _, e := range f.Explode() {
					assert.True(t, es.Contains(e))
				}
			}
		})
	}
}
