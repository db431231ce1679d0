// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "go.uber.org/zap"

// Compact rebuilds the arenas without dead records and remaps every
// reference. Positions, quadrics and contraction plans are kept. The mesh
// generation is incremented, so all views obtained before the call become
// stale.
func (m *Mesh) Compact() {
	vmap := liveIndex(len(m.verts), func(i int) bool { return m.verts[i].alive })
	hmap := liveIndex(len(m.hes), func(i int) bool { return m.hes[i].alive })
	emap := liveIndex(len(m.edges), func(i int) bool { return m.edges[i].alive })
	fmap := liveIndex(len(m.faces), func(i int) bool { return m.faces[i].alive })

	before := [4]int{len(m.verts), len(m.hes), len(m.edges), len(m.faces)}

	verts := make([]vertexRecord, 0, len(m.verts))
	for _, v := range m.verts {
		if v.alive {
			v.he = hmap[v.he]
			verts = append(verts, v)
		}
	}
	hes := make([]halfEdgeRecord, 0, len(m.hes))
	for _, h := range m.hes {
		if h.alive {
			h.vertex = vmap[h.vertex]
			h.next = hmap[h.next]
			h.prev = hmap[h.prev]
			h.twin = hmap[h.twin]
			h.edge = emap[h.edge]
			h.face = fmap[h.face]
			hes = append(hes, h)
		}
	}
	edges := make([]edgeRecord, 0, len(m.edges))
	for _, e := range m.edges {
		if e.alive {
			e.he = hmap[e.he]
			edges = append(edges, e)
		}
	}
	faces := make([]faceRecord, 0, len(m.faces))
	for _, f := range m.faces {
		if f.alive {
			f.he = hmap[f.he]
			faces = append(faces, f)
		}
	}

	m.verts, m.hes, m.edges, m.faces = verts, hes, edges, faces
	m.numVerts, m.numHes, m.numEdges, m.numFaces = len(verts), len(hes), len(edges), len(faces)
	m.gen++

	m.log.Debug("halfedge: arena compacted",
		zap.Uint32("generation", m.gen),
		zap.Ints("before", before[:]),
		zap.Ints("after", []int{len(verts), len(hes), len(edges), len(faces)}))
}

// liveIndex maps every live slot to its position among live slots and every
// dead slot to none.
func liveIndex(n int, alive func(i int) bool) []int {
	out := make([]int, n)
	next := 0
	for i := 0; i < n; i++ {
		out[i] = none
		if alive(i) {
			out[i] = next
			next++
		}
	}
	return out
}
