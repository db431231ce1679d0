// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package halfedge implements a half-edge representation of closed triangle
// meshes together with quadric-driven edge contraction for progressive
// simplification.
//
// Records are kept in per-kind arenas and are never freed: contraction only
// flips liveness flags, so references held by other records stay valid to
// read. Compact rebuilds the arenas and invalidates every view minted before
// it.
package halfedge

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"
)

const none = -1

type vertexRecord struct {
	pos   r3.Vector
	q     Quadric
	he    int
	alive bool
}

// halfEdgeRecord stores the origin vertex in vertex.
type halfEdgeRecord struct {
	vertex int
	next   int
	prev   int
	twin   int
	edge   int
	face   int
	alive  bool
}

type edgeRecord struct {
	he      int
	target  r3.Vector
	cost    float64
	planned bool
	alive   bool
}

type faceRecord struct {
	he    int
	alive bool
}

// Mesh is a closed, 2-manifold triangle mesh. It is not safe for concurrent
// use.
type Mesh struct {
	verts []vertexRecord
	hes   []halfEdgeRecord
	edges []edgeRecord
	faces []faceRecord

	// Live record counts, kept in step with the alive flags.
	numVerts, numHes, numEdges, numFaces int

	gen        uint32
	maxValence int
	log        *zap.Logger
}

type Options struct {
	Logger *zap.Logger
	// MaxValence bounds every vertex star walk. Zero means the walk is
	// bounded only by the number of half-edges.
	MaxValence int
}

type Option func(*Options) error

func WithLogger(l *zap.Logger) Option {
	return func(o *Options) error {
		if l == nil {
			return errors.New("halfedge: logger must be non-nil")
		}
		o.Logger = l
		return nil
	}
}

func WithMaxValence(n int) Option {
	return func(o *Options) error {
		if n < 3 {
			return fmt.Errorf("halfedge: max valence %d, must be at least 3", n)
		}
		o.MaxValence = n
		return nil
	}
}

// New builds a mesh from indexed triangles. Triangles must share a consistent
// winding and together form a closed 2-manifold surface in which every
// position is used; anything else is rejected.
func New(positions []r3.Vector, triangles [][3]int, setters ...Option) (*Mesh, error) {
	opts := Options{
		Logger: zap.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(positions)
	numFaces := len(triangles)
	if numVertices < 4 || numFaces < 4 {
		return nil, fmt.Errorf("%w: %d positions, %d triangles (minimum 4 each)",
			ErrInsufficientInput, numVertices, numFaces)
	}

	m := &Mesh{
		verts:      make([]vertexRecord, numVertices),
		hes:        make([]halfEdgeRecord, 3*numFaces),
		edges:      make([]edgeRecord, 0, 3*numFaces/2),
		faces:      make([]faceRecord, numFaces),
		maxValence: opts.MaxValence,
		log:        opts.Logger,
	}
	for i, p := range positions {
		m.verts[i] = vertexRecord{pos: p, he: none, alive: true}
	}

	type arc struct{ from, to int }
	arcs := make(map[arc]int, 3*numFaces)
	for f, tri := range triangles {
		for _, v := range tri {
			if v < 0 || v >= numVertices {
				return nil, fmt.Errorf("%w: triangle %d: vertex index %d out of range [0 %d)",
					ErrInvalidTriangle, f, v, numVertices)
			}
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return nil, fmt.Errorf("%w: triangle %d: repeated vertex in %v", ErrInvalidTriangle, f, tri)
		}

		base := 3 * f
		m.faces[f] = faceRecord{he: base, alive: true}
		for j := 0; j < 3; j++ {
			h := base + j
			a := arc{tri[j], tri[(j+1)%3]}
			if other, ok := arcs[a]; ok {
				return nil, fmt.Errorf("%w: edge %d->%d used by triangles %d and %d",
					ErrNonManifold, a.from, a.to, other/3, f)
			}
			arcs[a] = h
			m.hes[h] = halfEdgeRecord{
				vertex: a.from,
				next:   base + (j+1)%3,
				prev:   base + (j+2)%3,
				twin:   none,
				edge:   none,
				face:   f,
				alive:  true,
			}
			if m.verts[a.from].he == none {
				m.verts[a.from].he = h
			}
		}
	}

	for h := range m.hes {
		if m.hes[h].twin != none {
			continue
		}
		from := m.hes[h].vertex
		to := m.hes[m.hes[h].next].vertex
		t, ok := arcs[arc{to, from}]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d->%d of triangle %d has no opposite",
				ErrBoundary, from, to, h/3)
		}
		e := len(m.edges)
		m.edges = append(m.edges, edgeRecord{he: h, alive: true})
		m.hes[h].twin, m.hes[h].edge = t, e
		m.hes[t].twin, m.hes[t].edge = h, e
	}

	outgoing := make([]int, numVertices)
	for _, he := range m.hes {
		outgoing[he.vertex]++
	}
	for v := range m.verts {
		if m.verts[v].he == none {
			return nil, fmt.Errorf("%w: vertex %d", ErrIsolatedVertex, v)
		}
		n := 0
		if err := m.walkSpokes(v, func(int) { n++ }); err != nil {
			return nil, err
		}
		if n != outgoing[v] {
			return nil, fmt.Errorf("%w: vertex %d: star reaches %d of %d spokes",
				ErrNonManifold, v, n, outgoing[v])
		}
	}

	m.numVerts, m.numHes = len(m.verts), len(m.hes)
	m.numEdges, m.numFaces = len(m.edges), len(m.faces)

	m.log.Debug("halfedge: mesh loaded",
		zap.Int("vertices", len(m.verts)),
		zap.Int("edges", len(m.edges)),
		zap.Int("faces", len(m.faces)))
	return m, nil
}

// Generation is incremented by every Compact.
func (m *Mesh) Generation() uint32 {
	return m.gen
}

// NumVertices returns the number of live vertices.
func (m *Mesh) NumVertices() int {
	return m.numVerts
}

// NumHalfEdges returns the number of live half-edges.
func (m *Mesh) NumHalfEdges() int {
	return m.numHes
}

// NumEdges returns the number of live edges.
func (m *Mesh) NumEdges() int {
	return m.numEdges
}

// NumFaces returns the number of live faces.
func (m *Mesh) NumFaces() int {
	return m.numFaces
}

// Vertex returns a view of the i-th vertex slot, dead or alive.
// It returns an error if the index is out of range.
func (m *Mesh) Vertex(i int) (Vertex, error) {
	if i < 0 || i >= len(m.verts) {
		return Vertex{}, fmt.Errorf("%w: vertex %d not in [0 %d)", ErrOutOfRange, i, len(m.verts))
	}
	return m.vertex(i), nil
}

// HalfEdge returns a view of the i-th half-edge slot, dead or alive.
// It returns an error if the index is out of range.
func (m *Mesh) HalfEdge(i int) (HalfEdge, error) {
	if i < 0 || i >= len(m.hes) {
		return HalfEdge{}, fmt.Errorf("%w: half-edge %d not in [0 %d)", ErrOutOfRange, i, len(m.hes))
	}
	return m.halfEdge(i), nil
}

// Edge returns a view of the i-th edge slot, dead or alive.
// It returns an error if the index is out of range.
func (m *Mesh) Edge(i int) (Edge, error) {
	if i < 0 || i >= len(m.edges) {
		return Edge{}, fmt.Errorf("%w: edge %d not in [0 %d)", ErrOutOfRange, i, len(m.edges))
	}
	return m.edge(i), nil
}

// Face returns a view of the i-th face slot, dead or alive.
// It returns an error if the index is out of range.
func (m *Mesh) Face(i int) (Face, error) {
	if i < 0 || i >= len(m.faces) {
		return Face{}, fmt.Errorf("%w: face %d not in [0 %d)", ErrOutOfRange, i, len(m.faces))
	}
	return m.face(i), nil
}

// Vertices returns the live vertices in index order.
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, 0, len(m.verts))
	for i := range m.verts {
		if m.verts[i].alive {
			out = append(out, m.vertex(i))
		}
	}
	return out
}

// HalfEdges returns the live half-edges in index order.
func (m *Mesh) HalfEdges() []HalfEdge {
	out := make([]HalfEdge, 0, len(m.hes))
	for i := range m.hes {
		if m.hes[i].alive {
			out = append(out, m.halfEdge(i))
		}
	}
	return out
}

// Edges returns the live edges in index order.
func (m *Mesh) Edges() []Edge {
	out := make([]Edge, 0, len(m.edges))
	for i := range m.edges {
		if m.edges[i].alive {
			out = append(out, m.edge(i))
		}
	}
	return out
}

// Faces returns the live faces in index order.
func (m *Mesh) Faces() []Face {
	out := make([]Face, 0, len(m.faces))
	for i := range m.faces {
		if m.faces[i].alive {
			out = append(out, m.face(i))
		}
	}
	return out
}

// IndexedTriangles returns the live surface as a dense position list and
// triangles indexing into it, in face order.
func (m *Mesh) IndexedTriangles() ([]r3.Vector, [][3]int) {
	remap := make([]int, len(m.verts))
	positions := make([]r3.Vector, 0, len(m.verts))
	for i := range m.verts {
		remap[i] = none
		if m.verts[i].alive {
			remap[i] = len(positions)
			positions = append(positions, m.verts[i].pos)
		}
	}

	triangles := make([][3]int, 0, len(m.faces))
	for f := range m.faces {
		if !m.faces[f].alive {
			continue
		}
		h := m.faces[f].he
		var tri [3]int
		for j := 0; j < 3; j++ {
			tri[j] = remap[m.hes[h].vertex]
			h = m.hes[h].next
		}
		triangles = append(triangles, tri)
	}
	return positions, triangles
}
