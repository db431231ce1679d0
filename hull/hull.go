// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull triangulates the convex hull of a point set into a closed,
// outward-wound triangle mesh.
package hull

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

type Triangulation struct {
	// Vertices holds only the input points that lie on the hull, in order of
	// first use.
	Vertices []r3.Vector
	// NOTE: Sort in CCW per triangle (look from outside)
	Triangles [][3]int
}

func (t *Triangulation) TriangleVertices(tIdx int) (r3.Vector, r3.Vector, r3.Vector) {
	if tIdx < 0 || tIdx >= len(t.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	tri := t.Triangles[tIdx]
	return t.Vertices[tri[0]], t.Vertices[tri[1]], t.Vertices[tri[2]]
}

// Volume returns the volume enclosed by the triangulation.
func (t *Triangulation) Volume() float64 {
	var sum float64
	for i := range t.Triangles {
		a, b, c := t.TriangleVertices(i)
		sum += a.Dot(b.Cross(c))
	}
	return sum / 6
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("hull: eps %v, must be positive", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation computes the convex hull of points. Interior points are
// dropped; the remaining ones are renumbered densely.
func NewTriangulation(points []r3.Vector, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if len(points) < 4 {
		return nil,
			errors.New("hull: insufficient points for a closed hull (minimum 4 required)")
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(points, true, true, opts.Eps)
	if len(ch.Indices) < 12 || len(ch.Indices)%3 != 0 {
		return nil, fmt.Errorf("hull: quickhull returned %d indices, want a multiple of 3 and at least 12",
			len(ch.Indices))
	}

	remap := make(map[int]int, len(points))
	t := &Triangulation{
		Triangles: make([][3]int, len(ch.Indices)/3),
	}
	for i, idx := range ch.Indices {
		j, ok := remap[idx]
		if !ok {
			j = len(t.Vertices)
			remap[idx] = j
			t.Vertices = append(t.Vertices, points[idx])
		}
		t.Triangles[i/3][i%3] = j
	}

	// Euler's formula for a closed triangulated sphere: F = 2V - 4.
	if want := 2 * (len(t.Vertices) - 2); len(t.Triangles) != want {
		return nil, fmt.Errorf("hull: inconsistent number of triangles returned from QuickHull: %d, want %d",
			len(t.Triangles), want)
	}

	center := centroid(t.Vertices)
	for i := range t.Triangles {
		sortTriangleVerticesCCW(&t.Triangles[i], t.Vertices, center)
	}

	if vol := t.Volume(); vol <= opts.Eps {
		return nil, fmt.Errorf("hull: enclosed volume %v, points are coplanar", vol)
	}
	return t, nil
}

func centroid(v []r3.Vector) r3.Vector {
	var sum r3.Vector
	for _, p := range v {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(v)))
}

// sortTriangleVerticesCCW orders t so that its normal points away from
// center, which must lie strictly inside the hull.
func sortTriangleVerticesCCW(t *[3]int, v []r3.Vector, center r3.Vector) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0).Cross(p2.Sub(p0))
	if norm.Dot(p0.Sub(center)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}
