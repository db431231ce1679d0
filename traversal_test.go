// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVertex_NeighborVertices(t *testing.T) {
	m := mustOctahedron(t)

	// +z apex, walked from its first outgoing half-edge 4->0.
	got, err := mustVertex(t, m, 4).NeighborVertices()
	if err != nil {
		t.Fatalf("NeighborVertices() error = %v, want nil", err)
	}
	if diff := cmp.Diff([]int{0, 3, 1, 2}, indices(got)); diff != "" {
		t.Errorf("NeighborVertices() mismatch (-want +got):\n%s", diff)
	}
}

func TestVertex_NeighborHalfEdges(t *testing.T) {
	m := mustOctahedron(t)
	v := mustVertex(t, m, 4)

	got, err := v.NeighborHalfEdges()
	if err != nil {
		t.Fatalf("NeighborHalfEdges() error = %v, want nil", err)
	}
	if diff := cmp.Diff([]int{2, 11, 8, 5}, indices(got)); diff != "" {
		t.Errorf("NeighborHalfEdges() mismatch (-want +got):\n%s", diff)
	}
	if got[0] != v.HalfEdge() {
		t.Errorf("NeighborHalfEdges()[0] = %v, want representative %v", got[0], v.HalfEdge())
	}
}

func TestVertex_StarProperties(t *testing.T) {
	m := mustSphereMesh(t, 200, 1)

	total := 0
	for _, v := range m.Vertices() {
		spokes, err := v.NeighborHalfEdges()
		if err != nil {
			t.Fatalf("%v.NeighborHalfEdges() error = %v, want nil", v, err)
		}
		neighbors, err := v.NeighborVertices()
		if err != nil {
			t.Fatalf("%v.NeighborVertices() error = %v, want nil", v, err)
		}
		degree, err := v.Degree()
		if err != nil {
			t.Fatalf("%v.Degree() error = %v, want nil", v, err)
		}
		if len(spokes) != degree || len(neighbors) != degree {
			t.Errorf("%v: %d spokes, %d neighbors, degree %d", v, len(spokes), len(neighbors), degree)
		}
		if degree < 3 {
			t.Errorf("%v: degree %d, want at least 3", v, degree)
		}

		seen := make(map[int]bool)
		for i, h := range spokes {
			if !h.Alive() {
				t.Errorf("%v: spoke %v is dead", v, h)
			}
			if h.Vertex() != v {
				t.Errorf("%v: spoke %v leaves %v", v, h, h.Vertex())
			}
			if h.Twin().Vertex() != neighbors[i] {
				t.Errorf("%v: spoke %v ends at %v, want %v", v, h, h.Twin().Vertex(), neighbors[i])
			}
			if seen[h.Index()] {
				t.Errorf("%v: spoke %v visited twice", v, h)
			}
			seen[h.Index()] = true
		}
		// One more step closes the cycle.
		last := spokes[len(spokes)-1]
		if next := last.Twin().Next(); next != spokes[0] {
			t.Errorf("%v: star does not close: %v after %v, want %v", v, next, last, spokes[0])
		}
		total += degree
	}
	if total != m.NumHalfEdges() {
		t.Errorf("stars cover %d half-edges, want %d", total, m.NumHalfEdges())
	}
}

func TestHalfEdge_TwinInvolution(t *testing.T) {
	m := mustSphereMesh(t, 100, 2)
	for _, h := range m.HalfEdges() {
		if got := h.Twin().Twin(); got != h {
			t.Errorf("%v.Twin().Twin() = %v, want %v", h, got, h)
		}
		if h.Twin() == h {
			t.Errorf("%v.Twin() is itself", h)
		}
		if got := h.Next().Prev(); got != h {
			t.Errorf("%v.Next().Prev() = %v, want %v", h, got, h)
		}
		if got := h.Next().Next().Next(); got != h {
			t.Errorf("%v face loop does not close after 3 steps", h)
		}
		if h.Edge() != h.Twin().Edge() {
			t.Errorf("%v and its twin belong to different edges", h)
		}
	}
}

func TestFace_Vertices(t *testing.T) {
	m := mustOctahedron(t)
	got, err := mustFace(t, m, 0).Vertices()
	if err != nil {
		t.Fatalf("Vertices() error = %v, want nil", err)
	}
	if diff := cmp.Diff([]int{0, 2, 4}, indices(got[:])); diff != "" {
		t.Errorf("Vertices() mismatch (-want +got):\n%s", diff)
	}

	sphere := mustSphereMesh(t, 100, 3)
	for _, f := range sphere.Faces() {
		vs, err := f.Vertices()
		if err != nil {
			t.Fatalf("%v.Vertices() error = %v, want nil", f, err)
		}
		if vs[0] == vs[1] || vs[1] == vs[2] || vs[2] == vs[0] {
			t.Errorf("%v.Vertices() = %v, want distinct", f, vs)
		}
		for _, v := range vs {
			if !v.Alive() {
				t.Errorf("%v.Vertices() contains dead %v", f, v)
			}
		}
	}
}

func TestTraversal_Idempotent(t *testing.T) {
	m := mustSphereMesh(t, 100, 4)
	for _, v := range m.Vertices() {
		a, errA := v.NeighborVertices()
		b, errB := v.NeighborVertices()
		if errA != nil || errB != nil {
			t.Fatalf("%v.NeighborVertices() errors = %v, %v, want nil", v, errA, errB)
		}
		if diff := cmp.Diff(indices(a), indices(b)); diff != "" {
			t.Errorf("%v.NeighborVertices() not repeatable (-first +second):\n%s", v, diff)
		}
	}
}

func TestTraversal_DeadRecords(t *testing.T) {
	m := mustOctahedron(t)
	if err := m.ComputeQuadrics(); err != nil {
		t.Fatalf("m.ComputeQuadrics() error = %v, want nil", err)
	}
	e := findEdge(t, m, 0, 4)
	if err := e.ComputeContraction(); err != nil {
		t.Fatalf("ComputeContraction() error = %v, want nil", err)
	}
	_, removed := e.Endpoints()
	deadFace := e.HalfEdge().Face()
	if err := e.Contract(); err != nil {
		t.Fatalf("Contract() error = %v, want nil", err)
	}

	if _, err := removed.NeighborVertices(); !errors.Is(err, ErrDeadRecord) {
		t.Errorf("dead %v.NeighborVertices() error = %v, want %v", removed, err, ErrDeadRecord)
	}
	if _, err := removed.NeighborHalfEdges(); !errors.Is(err, ErrDeadRecord) {
		t.Errorf("dead %v.NeighborHalfEdges() error = %v, want %v", removed, err, ErrDeadRecord)
	}
	if _, err := deadFace.Vertices(); !errors.Is(err, ErrDeadRecord) {
		t.Errorf("dead %v.Vertices() error = %v, want %v", deadFace, err, ErrDeadRecord)
	}
}
