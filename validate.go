// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "fmt"

// Validate checks the connectivity invariants of every live record and
// returns the first violation found, wrapped around ErrCorrupt. It is
// read-only.
func (m *Mesh) Validate() error {
	var live [4]int
	for h := range m.hes {
		if !m.hes[h].alive {
			continue
		}
		live[1]++
		if err := m.validateHalfEdge(h); err != nil {
			return err
		}
	}

	spokes := 0
	for v := range m.verts {
		if !m.verts[v].alive {
			continue
		}
		live[0]++
		rep := m.verts[v].he
		if !m.hes[rep].alive || m.hes[rep].vertex != v {
			return corrupt("vertex %d: representative %d is dead or leaves another vertex", v, rep)
		}
		var bad []int
		err := m.walkSpokes(v, func(h int) {
			spokes++
			if m.hes[h].vertex != v {
				bad = append(bad, h)
			}
		})
		if err != nil {
			return err
		}
		if len(bad) > 0 {
			return corrupt("vertex %d: spokes %v have another origin", v, bad)
		}
	}
	if spokes != live[1] {
		return corrupt("vertex stars cover %d of %d live half-edges", spokes, live[1])
	}

	for e := range m.edges {
		if !m.edges[e].alive {
			continue
		}
		live[2]++
		h := m.edges[e].he
		if !m.hes[h].alive || m.hes[h].edge != e {
			return corrupt("edge %d: half-edge %d is dead or belongs to edge %d", e, h, m.hes[h].edge)
		}
	}

	for f := range m.faces {
		if !m.faces[f].alive {
			continue
		}
		live[3]++
		h := m.faces[f].he
		if !m.hes[h].alive || m.hes[h].face != f {
			return corrupt("face %d: half-edge %d is dead or belongs to face %d", f, h, m.hes[h].face)
		}
		c, err := m.corners(f)
		if err != nil {
			return err
		}
		if c[0] == c[1] || c[1] == c[2] || c[2] == c[0] {
			return corrupt("face %d: repeated corner in %v", f, c)
		}
	}

	if counted := [4]int{m.numVerts, m.numHes, m.numEdges, m.numFaces}; counted != live {
		return corrupt("live counts (V, H, E, F) %v, arenas hold %v", counted, live)
	}
	return nil
}

func (m *Mesh) validateHalfEdge(h int) error {
	he := m.hes[h]
	for _, ref := range [...]struct {
		name string
		idx  int
	}{{"twin", he.twin}, {"next", he.next}, {"prev", he.prev}} {
		if !m.hes[ref.idx].alive {
			return corrupt("half-edge %d: %s %d is dead", h, ref.name, ref.idx)
		}
	}
	if m.hes[he.twin].twin != h {
		return corrupt("half-edge %d: twin %d is paired with %d", h, he.twin, m.hes[he.twin].twin)
	}
	if m.hes[he.next].prev != h || m.hes[he.prev].next != h {
		return corrupt("half-edge %d: next/prev links are not mutual", h)
	}
	if m.hes[m.hes[he.next].next].next != h {
		return corrupt("half-edge %d: face loop is not a triangle", h)
	}
	if !m.verts[he.vertex].alive {
		return corrupt("half-edge %d: origin %d is dead", h, he.vertex)
	}
	if !m.edges[he.edge].alive || m.hes[he.twin].edge != he.edge {
		return corrupt("half-edge %d: edge %d is dead or not shared with twin", h, he.edge)
	}
	if !m.faces[he.face].alive || m.hes[he.next].face != he.face {
		return corrupt("half-edge %d: face %d is dead or not shared along the loop", h, he.face)
	}
	if m.hes[he.twin].vertex != m.hes[he.next].vertex {
		return corrupt("half-edge %d: twin origin differs from next origin", h)
	}
	return nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}
