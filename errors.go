// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "errors"

// Sentinel errors returned by the package. Callers match them with errors.Is;
// most are wrapped with the offending record indices.
var (
	// ErrInsufficientInput is returned by New when there are too few
	// positions or triangles to form a closed surface.
	ErrInsufficientInput = errors.New("halfedge: insufficient input for a closed mesh")

	// ErrInvalidTriangle is returned by New for out-of-range or repeated
	// vertex indices inside a triangle.
	ErrInvalidTriangle = errors.New("halfedge: invalid triangle")

	// ErrBoundary is returned by New when a directed edge has no opposite
	// half-edge, i.e. the surface is open.
	ErrBoundary = errors.New("halfedge: boundary edge")

	// ErrNonManifold is returned when an edge is shared by more than two faces
	// with consistent winding, or a vertex star is not a single closed fan.
	ErrNonManifold = errors.New("halfedge: non-manifold topology")

	// ErrIsolatedVertex is returned by New for positions no triangle uses.
	ErrIsolatedVertex = errors.New("halfedge: isolated vertex")

	// ErrOutOfRange is returned by the index accessors on Mesh.
	ErrOutOfRange = errors.New("halfedge: index out of range")

	// ErrStaleHandle is returned when a view minted before Compact is used.
	ErrStaleHandle = errors.New("halfedge: stale handle")

	// ErrDeadRecord is returned when an operation targets a deleted record.
	ErrDeadRecord = errors.New("halfedge: record is dead")

	// ErrDegenerateQuadric is returned when a quadric has zero neighbor count
	// and therefore no minimizer.
	ErrDegenerateQuadric = errors.New("halfedge: degenerate quadric")

	// ErrNotPlanned is returned by Contract for an edge without a computed
	// contraction.
	ErrNotPlanned = errors.New("halfedge: contraction not planned")

	// ErrLinkCondition is returned by Contract when collapsing the edge would
	// leave a non-manifold surface.
	ErrLinkCondition = errors.New("halfedge: link condition violated")

	// ErrCorrupt is returned by Validate on a broken invariant.
	ErrCorrupt = errors.New("halfedge: corrupt topology")
)
