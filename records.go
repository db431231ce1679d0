// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Vertex, HalfEdge, Edge and Face are view structures for accessing records
// of a Mesh. A view remembers the mesh generation it was created under;
// navigating a view after Compact panics, and operations on it return
// ErrStaleHandle. Views are comparable.

type Vertex struct {
	idx int
	gen uint32
	m   *Mesh
}

type HalfEdge struct {
	idx int
	gen uint32
	m   *Mesh
}

type Edge struct {
	idx int
	gen uint32
	m   *Mesh
}

type Face struct {
	idx int
	gen uint32
	m   *Mesh
}

func (m *Mesh) vertex(i int) Vertex     { return Vertex{idx: i, gen: m.gen, m: m} }
func (m *Mesh) halfEdge(i int) HalfEdge { return HalfEdge{idx: i, gen: m.gen, m: m} }
func (m *Mesh) edge(i int) Edge         { return Edge{idx: i, gen: m.gen, m: m} }
func (m *Mesh) face(i int) Face         { return Face{idx: i, gen: m.gen, m: m} }

func (m *Mesh) mustCurrent(gen uint32) {
	if gen != m.gen {
		panic("halfedge: stale handle")
	}
}

// check reports a stale view before touching the arena, whose slots may have
// moved since the view was taken.
func (m *Mesh) check(gen uint32, kind string, idx int, alive func() bool) error {
	if gen != m.gen {
		return fmt.Errorf("%w: %s %d from generation %d, mesh at %d", ErrStaleHandle, kind, idx, gen, m.gen)
	}
	if !alive() {
		return fmt.Errorf("%w: %s %d", ErrDeadRecord, kind, idx)
	}
	return nil
}

// Vertex

// Index returns the arena slot of the vertex.
func (v Vertex) Index() int {
	return v.idx
}

// Alive reports whether the vertex has not been merged away.
func (v Vertex) Alive() bool {
	v.m.mustCurrent(v.gen)
	return v.m.verts[v.idx].alive
}

func (v Vertex) Pos() r3.Vector {
	v.m.mustCurrent(v.gen)
	return v.m.verts[v.idx].pos
}

// Quadric returns the last accumulated coefficient vector.
func (v Vertex) Quadric() Quadric {
	v.m.mustCurrent(v.gen)
	return v.m.verts[v.idx].q
}

// HalfEdge returns the representative outgoing half-edge.
func (v Vertex) HalfEdge() HalfEdge {
	v.m.mustCurrent(v.gen)
	return v.m.halfEdge(v.m.verts[v.idx].he)
}

func (v Vertex) String() string {
	return fmt.Sprintf("v%d", v.idx)
}

func (v Vertex) valid() error {
	return v.m.check(v.gen, "vertex", v.idx, func() bool { return v.m.verts[v.idx].alive })
}

// HalfEdge

func (h HalfEdge) Index() int {
	return h.idx
}

func (h HalfEdge) Alive() bool {
	h.m.mustCurrent(h.gen)
	return h.m.hes[h.idx].alive
}

// Vertex returns the origin of the half-edge.
func (h HalfEdge) Vertex() Vertex {
	h.m.mustCurrent(h.gen)
	return h.m.vertex(h.m.hes[h.idx].vertex)
}

func (h HalfEdge) Next() HalfEdge {
	h.m.mustCurrent(h.gen)
	return h.m.halfEdge(h.m.hes[h.idx].next)
}

func (h HalfEdge) Prev() HalfEdge {
	h.m.mustCurrent(h.gen)
	return h.m.halfEdge(h.m.hes[h.idx].prev)
}

func (h HalfEdge) Twin() HalfEdge {
	h.m.mustCurrent(h.gen)
	return h.m.halfEdge(h.m.hes[h.idx].twin)
}

func (h HalfEdge) Edge() Edge {
	h.m.mustCurrent(h.gen)
	return h.m.edge(h.m.hes[h.idx].edge)
}

func (h HalfEdge) Face() Face {
	h.m.mustCurrent(h.gen)
	return h.m.face(h.m.hes[h.idx].face)
}

func (h HalfEdge) String() string {
	return fmt.Sprintf("h%d", h.idx)
}

// Edge

func (e Edge) Index() int {
	return e.idx
}

func (e Edge) Alive() bool {
	e.m.mustCurrent(e.gen)
	return e.m.edges[e.idx].alive
}

func (e Edge) HalfEdge() HalfEdge {
	e.m.mustCurrent(e.gen)
	return e.m.halfEdge(e.m.edges[e.idx].he)
}

// Endpoints returns the origin of the edge's half-edge and the origin of its
// twin, in that order.
func (e Edge) Endpoints() (Vertex, Vertex) {
	e.m.mustCurrent(e.gen)
	h := e.m.edges[e.idx].he
	return e.m.vertex(e.m.hes[h].vertex), e.m.vertex(e.m.hes[e.m.hes[h].twin].vertex)
}

// Planned reports whether ComputeContraction stored a target and cost that
// Contract has not consumed yet.
func (e Edge) Planned() bool {
	e.m.mustCurrent(e.gen)
	return e.m.edges[e.idx].planned
}

// Target returns the planned contraction position.
func (e Edge) Target() r3.Vector {
	e.m.mustCurrent(e.gen)
	return e.m.edges[e.idx].target
}

// Cost returns the planned contraction cost.
func (e Edge) Cost() float64 {
	e.m.mustCurrent(e.gen)
	return e.m.edges[e.idx].cost
}

func (e Edge) String() string {
	return fmt.Sprintf("e%d", e.idx)
}

func (e Edge) valid() error {
	return e.m.check(e.gen, "edge", e.idx, func() bool { return e.m.edges[e.idx].alive })
}

// Face

func (f Face) Index() int {
	return f.idx
}

func (f Face) Alive() bool {
	f.m.mustCurrent(f.gen)
	return f.m.faces[f.idx].alive
}

func (f Face) HalfEdge() HalfEdge {
	f.m.mustCurrent(f.gen)
	return f.m.halfEdge(f.m.faces[f.idx].he)
}

func (f Face) String() string {
	return fmt.Sprintf("f%d", f.idx)
}

func (f Face) valid() error {
	return f.m.check(f.gen, "face", f.idx, func() bool { return f.m.faces[f.idx].alive })
}
