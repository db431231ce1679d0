// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "fmt"

func (m *Mesh) walkLimit() int {
	if m.maxValence > 0 {
		return m.maxValence
	}
	return len(m.hes)
}

// walkSpokes calls fn for every outgoing half-edge of v, starting at its
// representative and following twin then next until the start comes back.
func (m *Mesh) walkSpokes(v int, fn func(h int)) error {
	start := m.verts[v].he
	limit := m.walkLimit()
	h := start
	for n := 0; ; n++ {
		if n == limit {
			return fmt.Errorf("%w: vertex %d: star does not close within %d spokes",
				ErrNonManifold, v, limit)
		}
		if !m.hes[h].alive {
			return fmt.Errorf("%w: vertex %d: star reaches dead half-edge %d", ErrCorrupt, v, h)
		}
		fn(h)
		h = m.hes[m.hes[h].twin].next
		if h == start {
			return nil
		}
	}
}

// NeighborVertices returns the vertices adjacent to v in star order.
// The length of the result equals the degree of v.
func (v Vertex) NeighborVertices() ([]Vertex, error) {
	if err := v.valid(); err != nil {
		return nil, err
	}
	m := v.m
	var out []Vertex
	err := m.walkSpokes(v.idx, func(h int) {
		out = append(out, m.vertex(m.hes[m.hes[h].twin].vertex))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NeighborHalfEdges returns the half-edges leaving v in star order, starting
// at its representative.
func (v Vertex) NeighborHalfEdges() ([]HalfEdge, error) {
	if err := v.valid(); err != nil {
		return nil, err
	}
	m := v.m
	var out []HalfEdge
	err := m.walkSpokes(v.idx, func(h int) {
		out = append(out, m.halfEdge(h))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Degree returns the number of edges incident to v.
func (v Vertex) Degree() (int, error) {
	if err := v.valid(); err != nil {
		return 0, err
	}
	n := 0
	if err := v.m.walkSpokes(v.idx, func(int) { n++ }); err != nil {
		return 0, err
	}
	return n, nil
}

// Vertices returns the three corners of f following next from its
// half-edge.
func (f Face) Vertices() ([3]Vertex, error) {
	if err := f.valid(); err != nil {
		return [3]Vertex{}, err
	}
	c, err := f.m.corners(f.idx)
	if err != nil {
		return [3]Vertex{}, err
	}
	return [3]Vertex{f.m.vertex(c[0]), f.m.vertex(c[1]), f.m.vertex(c[2])}, nil
}

func (m *Mesh) corners(f int) ([3]int, error) {
	var c [3]int
	start := m.faces[f].he
	h := start
	for j := 0; j < 3; j++ {
		c[j] = m.hes[h].vertex
		h = m.hes[h].next
	}
	if h != start {
		return c, fmt.Errorf("%w: face %d: loop is not a triangle", ErrCorrupt, f)
	}
	return c, nil
}
