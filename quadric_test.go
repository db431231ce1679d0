// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"errors"
	"math"
	"testing"

	"github.com/2dChan/halfedge/utils"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

func TestQuadric_Add(t *testing.T) {
	a := Quadric{1, 0, 0, 0, 0}
	b := Quadric{1, 2, 0, 0, 4}
	want := Quadric{2, 2, 0, 0, 4}
	if diff := cmp.Diff(want, a.Add(b)); diff != "" {
		t.Errorf("a.Add(b) mismatch (-want +got):\n%s", diff)
	}
	if a != (Quadric{1, 0, 0, 0, 0}) {
		t.Errorf("a.Add(b) modified a: %v", a)
	}
}

func TestQuadric_Error(t *testing.T) {
	// Neighbors at (0,0,0) and (2,0,0).
	q := Quadric{2, 2, 0, 0, 4}
	tests := []struct {
		name string
		x    r3.Vector
		want float64
	}{
		{"origin", r3.Vector{}, 4},
		{"midpoint", r3.Vector{X: 1}, 2},
		{"endpoint", r3.Vector{X: 2}, 4},
		{"off axis", r3.Vector{X: 1, Y: 1}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.Error(tt.x); got != tt.want {
				t.Errorf("q.Error(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestQuadric_Minimizer(t *testing.T) {
	got, err := Quadric{4, 4, 8, -4, 0}.Minimizer()
	if err != nil {
		t.Fatalf("Minimizer() error = %v, want nil", err)
	}
	if want := (r3.Vector{X: 1, Y: 2, Z: -1}); got != want {
		t.Errorf("Minimizer() = %v, want %v", got, want)
	}

	if _, err := (Quadric{}).Minimizer(); !errors.Is(err, ErrDegenerateQuadric) {
		t.Errorf("Quadric{}.Minimizer() error = %v, want %v", err, ErrDegenerateQuadric)
	}
}

func TestVertex_ComputeQEMCoeff(t *testing.T) {
	m := mustOctahedron(t)
	for _, v := range m.Vertices() {
		if err := v.ComputeQEMCoeff(); err != nil {
			t.Fatalf("%v.ComputeQEMCoeff() error = %v, want nil", v, err)
		}
		// Four unit neighbors whose sum cancels.
		if diff := cmp.Diff(Quadric{4, 0, 0, 0, 4}, v.Quadric()); diff != "" {
			t.Errorf("%v.Quadric() mismatch (-want +got):\n%s", v, diff)
		}
	}

	positions, triangles := utils.Tetrahedron()
	tm := mustNewMesh(t, utils.Translate(positions, r3.Vector{X: 1}), triangles)
	v := mustVertex(t, tm, 0)
	if err := v.ComputeQEMCoeff(); err != nil {
		t.Fatalf("ComputeQEMCoeff() error = %v, want nil", err)
	}
	// Neighbors (2,0,0), (1,1,0), (1,0,1).
	if diff := cmp.Diff(Quadric{3, 4, 1, 1, 8}, v.Quadric()); diff != "" {
		t.Errorf("v.Quadric() mismatch (-want +got):\n%s", diff)
	}
}

func TestMesh_ComputeQuadrics(t *testing.T) {
	m := mustSphereMesh(t, 100, 5)
	for _, v := range m.Vertices() {
		degree, err := v.Degree()
		if err != nil {
			t.Fatalf("%v.Degree() error = %v, want nil", v, err)
		}
		q := v.Quadric()
		if q.Count() != float64(degree) {
			t.Errorf("%v.Quadric().Count() = %v, want %d", v, q.Count(), degree)
		}
		// Neighbors lie on the unit sphere.
		if math.Abs(q[4]-float64(degree)) > 1e-9 {
			t.Errorf("%v.Quadric()[4] = %v, want %d", v, q[4], degree)
		}
	}
}

func TestEdge_ComputeContraction_Scenario(t *testing.T) {
	m := mustOctahedron(t)
	e := findEdge(t, m, 0, 4)
	v1, v2 := e.Endpoints()
	m.verts[v1.Index()].q = Quadric{1, 0, 0, 0, 0}
	m.verts[v2.Index()].q = Quadric{1, 2, 0, 0, 4}

	if err := e.ComputeContraction(); err != nil {
		t.Fatalf("ComputeContraction() error = %v, want nil", err)
	}
	if !e.Planned() {
		t.Errorf("e.Planned() = false, want true")
	}
	if want := (r3.Vector{X: 1}); e.Target() != want {
		t.Errorf("e.Target() = %v, want %v", e.Target(), want)
	}
	// q0*|v|^2 - 2*v.sum + s2 = 2*1 - 2*2 + 4.
	if want := 2.0; e.Cost() != want {
		t.Errorf("e.Cost() = %v, want %v", e.Cost(), want)
	}
	if diff := cmp.Diff(Quadric{1, 0, 0, 0, 0}, v1.Quadric()); diff != "" {
		t.Errorf("v1.Quadric() changed by planning (-want +got):\n%s", diff)
	}
}

func TestEdge_ComputeContraction_Idempotent(t *testing.T) {
	m := mustSphereMesh(t, 100, 6)
	for _, e := range m.Edges() {
		if err := e.ComputeContraction(); err != nil {
			t.Fatalf("%v.ComputeContraction() error = %v, want nil", e, err)
		}
		target, cost := e.Target(), e.Cost()
		if err := e.ComputeContraction(); err != nil {
			t.Fatalf("%v.ComputeContraction() error = %v, want nil", e, err)
		}
		if e.Target() != target || e.Cost() != cost {
			t.Errorf("%v: second plan (%v, %v), first (%v, %v)", e, e.Target(), e.Cost(), target, cost)
		}
		if cost < -1e-9 {
			t.Errorf("%v.Cost() = %v, want non-negative", e, cost)
		}
	}
}

func TestEdge_ComputeContraction_Degenerate(t *testing.T) {
	m := mustOctahedron(t)
	e := findEdge(t, m, 0, 2)
	err := e.ComputeContraction()
	if !errors.Is(err, ErrDegenerateQuadric) {
		t.Errorf("ComputeContraction() error = %v, want %v", err, ErrDegenerateQuadric)
	}
	if e.Planned() {
		t.Errorf("e.Planned() = true after rejected plan, want false")
	}
}
