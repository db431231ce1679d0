// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides point generators and small closed meshes for
// building half-edge meshes in tests and examples.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GenerateRandomPoints generates cnt random points on a sphere of the given
// radius centered at the origin. The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, radius float64, seed int64) []r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r3.Vector, cnt)

	for i := 0; i < cnt; i++ {
		p := s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle(math.Asin(random.Float64()*2 - 1)),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		})
		points[i] = p.Mul(radius)
	}

	return points
}

// Tetrahedron returns the corner tetrahedron (0,0,0), (1,0,0), (0,1,0),
// (0,0,1) with outward counter-clockwise faces. Its volume is 1/6.
func Tetrahedron() ([]r3.Vector, [][3]int) {
	positions := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	triangles := [][3]int{
		{0, 2, 1},
		{0, 1, 3},
		{0, 3, 2},
		{1, 2, 3},
	}
	return positions, triangles
}

// Octahedron returns the unit octahedron with vertices on the coordinate
// axes, ordered +x, -x, +y, -y, +z, -z, with outward counter-clockwise
// faces. Its volume is 4/3.
func Octahedron() ([]r3.Vector, [][3]int) {
	positions := []r3.Vector{
		{X: 1, Y: 0, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: -1},
	}
	triangles := [][3]int{
		{0, 2, 4},
		{2, 1, 4},
		{1, 3, 4},
		{3, 0, 4},
		{2, 0, 5},
		{1, 2, 5},
		{3, 1, 5},
		{0, 3, 5},
	}
	return positions, triangles
}

// Translate returns a copy of positions shifted by d.
func Translate(positions []r3.Vector, d r3.Vector) []r3.Vector {
	out := make([]r3.Vector, len(positions))
	for i, p := range positions {
		out[i] = p.Add(d)
	}
	return out
}
