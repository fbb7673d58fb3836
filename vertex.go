package mech2d

import "math"

// Vertex is a point on a body's boundary, in body coordinates, with
// references to the adjacent edges. Edge references are append-only:
// assigning one that is already set is a setup bug and panics.
//
// Vertexes are created through World.NewVertex so the debug id counter
// is owned by the world rather than being process-global.
type Vertex struct {
	loc   Vector
	edge1 Edge // previous edge
	edge2 Edge // next edge
	id    int
}

func (v *Vertex) LocBody() Vector {
	return v.loc
}

func (v *Vertex) LocBodyX() float64 {
	return v.loc.X
}

func (v *Vertex) LocBodyY() float64 {
	return v.loc.Y
}

// ID returns the vertex's debug identifier, unique within its world.
// Not used by the physics, only for diagnostics.
func (v *Vertex) ID() int {
	return v.id
}

func (v *Vertex) Edge1() Edge {
	assert(v.edge1 != nil, "edge1 not set")
	return v.edge1
}

// Edge2 returns the next edge, falling back to edge1 for a vertex with
// only one adjacent edge (an open path endpoint).
func (v *Vertex) Edge2() Edge {
	if v.edge2 != nil {
		return v.edge2
	}
	assert(v.edge1 != nil, "no edge set")
	return v.edge1
}

func (v *Vertex) SetEdge1(edge Edge) {
	assert(v.edge1 == nil, "edge1 already set")
	v.edge1 = edge
}

func (v *Vertex) SetEdge2(edge Edge) {
	assert(v.edge2 == nil, "edge2 already set")
	v.edge2 = edge
}

// Curvature returns the signed radius of curvature contributed by
// whichever adjacent edge is flatter (smaller magnitude curvature);
// straight edges contribute +Inf.
func (v *Vertex) Curvature() float64 {
	assert(v.edge1 != nil || v.edge2 != nil, "vertex has no edges")
	c := math.Inf(1)
	if v.edge1 != nil {
		c = v.edge1.Curvature()
	}
	if v.edge2 != nil {
		if c2 := v.edge2.Curvature(); math.Abs(c2) < math.Abs(c) {
			c = c2
		}
	}
	return c
}
