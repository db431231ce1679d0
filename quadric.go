// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Quadric is an additive summary of a vertex neighborhood:
// {count, sum x, sum y, sum z, sum of squared norms}.
// Merging two neighborhoods is elementwise addition.
type Quadric [5]float64

func (q Quadric) Add(o Quadric) Quadric {
	for i := range q {
		q[i] += o[i]
	}
	return q
}

// Count returns the accumulated neighbor count.
func (q Quadric) Count() float64 {
	return q[0]
}

// Sum returns the accumulated neighbor position sum.
func (q Quadric) Sum() r3.Vector {
	return r3.Vector{X: q[1], Y: q[2], Z: q[3]}
}

// Error returns the sum of squared distances from x to the accumulated
// positions: count*|x|^2 - 2*x.sum + sum of squared norms.
func (q Quadric) Error(x r3.Vector) float64 {
	return q[0]*x.Dot(x) - 2*x.Dot(q.Sum()) + q[4]
}

// Minimizer returns the position minimizing Error, the mean of the
// accumulated positions.
func (q Quadric) Minimizer() (r3.Vector, error) {
	if q[0] == 0 {
		return r3.Vector{}, fmt.Errorf("%w: zero neighbor count", ErrDegenerateQuadric)
	}
	return q.Sum().Mul(1 / q[0]), nil
}

// ComputeQEMCoeff sets the quadric of v from its current neighbors. It is
// not refreshed automatically when neighbors move.
func (v Vertex) ComputeQEMCoeff() error {
	neighbors, err := v.NeighborVertices()
	if err != nil {
		return err
	}

	var q Quadric
	q[0] = float64(len(neighbors))
	for _, n := range neighbors {
		p := v.m.verts[n.idx].pos
		q[1] += p.X
		q[2] += p.Y
		q[3] += p.Z
		q[4] += p.Dot(p)
	}
	v.m.verts[v.idx].q = q
	return nil
}

// ComputeQuadrics runs ComputeQEMCoeff for every live vertex. Call it once
// after New before planning any contraction.
func (m *Mesh) ComputeQuadrics() error {
	for i := range m.verts {
		if !m.verts[i].alive {
			continue
		}
		if err := m.vertex(i).ComputeQEMCoeff(); err != nil {
			return err
		}
	}
	return nil
}
