// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "github.com/golang/geo/r3"

// Area returns the area of the triangle f.
func (f Face) Area() (float64, error) {
	p, err := f.positions()
	if err != nil {
		return 0, err
	}
	return triangleArea(p), nil
}

// SignedVolume returns the signed volume of the tetrahedron spanned by f and
// the origin. Summed over a closed, outward-wound mesh it gives the enclosed
// volume.
func (f Face) SignedVolume() (float64, error) {
	p, err := f.positions()
	if err != nil {
		return 0, err
	}
	return signedVolume(p), nil
}

// SurfaceArea returns the total area of the live faces. A face whose loop is
// not a triangle is skipped; Validate reports it.
func (m *Mesh) SurfaceArea() float64 {
	var sum float64
	m.eachTriangle(func(p [3]r3.Vector) { sum += triangleArea(p) })
	return sum
}

// Volume returns the signed volume enclosed by the live faces. Faces are
// skipped as in SurfaceArea.
func (m *Mesh) Volume() float64 {
	var sum float64
	m.eachTriangle(func(p [3]r3.Vector) { sum += signedVolume(p) })
	return sum
}

func (f Face) positions() ([3]r3.Vector, error) {
	if err := f.valid(); err != nil {
		return [3]r3.Vector{}, err
	}
	c, err := f.m.corners(f.idx)
	if err != nil {
		return [3]r3.Vector{}, err
	}
	return f.m.cornerPositions(c), nil
}

func (m *Mesh) cornerPositions(c [3]int) [3]r3.Vector {
	return [3]r3.Vector{m.verts[c[0]].pos, m.verts[c[1]].pos, m.verts[c[2]].pos}
}

// eachTriangle calls fn with the corners of every live face whose loop
// closes in three steps.
func (m *Mesh) eachTriangle(fn func(p [3]r3.Vector)) {
	for f := range m.faces {
		if !m.faces[f].alive {
			continue
		}
		c, err := m.corners(f)
		if err != nil {
			continue
		}
		fn(m.cornerPositions(c))
	}
}

func triangleArea(p [3]r3.Vector) float64 {
	return 0.5 * p[1].Sub(p[0]).Cross(p[2].Sub(p[0])).Norm()
}

func signedVolume(p [3]r3.Vector) float64 {
	return p[0].Dot(p[1].Cross(p[2])) / 6
}
