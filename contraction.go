// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"fmt"

	"go.uber.org/zap"
)

// ComputeContraction plans the collapse of e: the target is the minimizer of
// the summed endpoint quadrics and the cost is that quadric's error at the
// target. The endpoints are not modified. An edge whose endpoints have no
// accumulated neighbors is rejected with ErrDegenerateQuadric and left as it
// was.
func (e Edge) ComputeContraction() error {
	if err := e.valid(); err != nil {
		return err
	}
	m := e.m
	v1, v2 := m.endpoints(e.idx)
	q := m.verts[v1].q.Add(m.verts[v2].q)
	target, err := q.Minimizer()
	if err != nil {
		return fmt.Errorf("edge %d (%d, %d): %w", e.idx, v1, v2, err)
	}

	rec := &m.edges[e.idx]
	rec.target = target
	rec.cost = q.Error(target)
	rec.planned = true
	return nil
}

func (m *Mesh) endpoints(e int) (int, int) {
	h := m.edges[e].he
	return m.hes[h].vertex, m.hes[m.hes[h].twin].vertex
}

// Contract collapses e into its first endpoint, which moves to the planned
// target and takes the summed quadric of both endpoints. The second endpoint,
// e, the two faces on either side and their absorbed edges are marked dead.
//
// The collapse is rejected before any mutation when e is not planned, or when
// the endpoints share other than exactly two neighbors or the mesh has only
// four vertices left, since either would leave a non-manifold surface. A
// mesh built WithMaxValence also rejects a collapse whose merged vertex
// would exceed that valence. Edges around the surviving vertex need
// ComputeContraction again afterwards.
func (e Edge) Contract() error {
	if err := e.valid(); err != nil {
		return err
	}
	m := e.m
	rec := &m.edges[e.idx]
	if !rec.planned {
		return fmt.Errorf("%w: edge %d", ErrNotPlanned, e.idx)
	}
	v1, v2 := m.endpoints(e.idx)
	if err := m.checkLink(v1, v2); err != nil {
		return fmt.Errorf("edge %d (%d, %d): %w", e.idx, v1, v2, err)
	}

	rec.alive = false
	m.numEdges--
	combined := m.verts[v1].q.Add(m.verts[v2].q)

	if err := m.remove(rec.he); err != nil {
		return err
	}

	m.verts[v1].pos = rec.target
	m.verts[v1].q = combined
	rec.planned = false

	m.log.Debug("halfedge: edge contracted",
		zap.Int("edge", e.idx),
		zap.Int("kept", v1),
		zap.Int("removed", v2),
		zap.Float64("cost", rec.cost))
	return nil
}

// checkLink verifies the link condition for collapsing v1-v2 on a closed
// surface. With a valence bound the merged vertex must also stay within it.
func (m *Mesh) checkLink(v1, v2 int) error {
	if n := m.NumVertices(); n <= 4 {
		return fmt.Errorf("%w: only %d vertices left", ErrLinkCondition, n)
	}

	ring := make(map[int]struct{})
	err := m.walkSpokes(v1, func(h int) {
		ring[m.hes[m.hes[h].twin].vertex] = struct{}{}
	})
	if err != nil {
		return err
	}
	shared, d2 := 0, 0
	err = m.walkSpokes(v2, func(h int) {
		d2++
		if _, ok := ring[m.hes[m.hes[h].twin].vertex]; ok {
			shared++
		}
	})
	if err != nil {
		return err
	}
	if shared != 2 {
		return fmt.Errorf("%w: endpoints share %d neighbors, want 2", ErrLinkCondition, shared)
	}
	// The merged star drops v1, v2 and one copy of each shared neighbor.
	if merged := len(ring) + d2 - 4; m.maxValence > 0 && merged > m.maxValence {
		return fmt.Errorf("%w: merged degree %d exceeds max valence %d",
			ErrLinkCondition, merged, m.maxValence)
	}
	return nil
}

// remove deletes the half-edge h and its twin, merging the origin of the
// twin into the origin of h. A face left with only two half-edges on either
// side is removed and the half-edges across it are stitched together.
func (m *Mesh) remove(h int) error {
	he := &m.hes[h]
	t := he.twin
	v1 := he.vertex
	v2 := m.hes[t].vertex

	he.alive = false
	m.numHes--
	m.verts[v1].he = m.hes[he.prev].twin

	// Retarget before any splice: the walk from v2 needs the original loops.
	if err := m.walkSpokes(v2, func(s int) { m.hes[s].vertex = v1 }); err != nil {
		return err
	}
	m.verts[v2].alive = false
	m.numVerts--

	if m.hes[he.next].next != he.prev {
		m.hes[he.prev].next = he.next
		m.hes[he.next].prev = he.prev
	} else {
		m.collapseTriangle(h, he.prev)
	}

	tw := &m.hes[t]
	tw.alive = false
	m.numHes--
	if m.hes[tw.next].next != tw.prev {
		m.hes[tw.prev].next = tw.next
		m.hes[tw.next].prev = tw.prev
	} else {
		m.collapseTriangle(t, tw.next)
	}
	return nil
}

// collapseTriangle removes the face of h, whose loop is h, h.next, h.prev,
// after h itself died. The edge of keep survives and is handed to the
// half-edges across the two dying ones; keep must be h.next or h.prev.
func (m *Mesh) collapseTriangle(h, keep int) {
	he := m.hes[h]
	next, prev := he.next, he.prev
	drop := next
	if keep == next {
		drop = prev
	}

	m.edges[m.hes[drop].edge].alive = false
	m.hes[next].alive = false
	m.hes[prev].alive = false
	m.faces[he.face].alive = false
	m.numEdges--
	m.numHes -= 2
	m.numFaces--

	a := m.hes[prev].twin
	b := m.hes[next].twin
	m.hes[a].twin = b
	m.hes[b].twin = a

	kept := m.hes[keep].edge
	m.edges[kept].he = m.hes[keep].twin
	m.hes[a].edge = kept
	m.hes[b].edge = kept

	m.verts[m.hes[prev].vertex].he = b
}
