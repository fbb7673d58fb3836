package mech2d

import "math"

// StraightEdge is a line segment between two vertexes, with an outward
// unit normal, all in body coordinates.
type StraightEdge struct {
	body   *Body
	v1, v2 *Vertex
	normal Vector
}

// NewStraightEdge creates a straight edge from v1 to v2 on the given
// body and registers it with the adjacent vertexes (v1's next edge,
// v2's previous edge). outsideIsUp selects which side of the edge is
// outside the solid: the side with larger Y, or for a vertical edge
// the side with larger X.
func NewStraightEdge(body *Body, v1, v2 *Vertex, outsideIsUp bool) *StraightEdge {
	d := v2.loc.Sub(v1.loc)
	assert(d.LengthSq() > 0, "straight edge endpoints coincide")
	n := d.Normalize().Perp()
	up := n.Y > 0 || (n.Y == 0 && n.X > 0)
	if up != outsideIsUp {
		n = n.Neg()
	}
	edge := &StraightEdge{body: body, v1: v1, v2: v2, normal: n}
	v1.SetEdge2(edge)
	v2.SetEdge1(edge)
	body.addEdge(edge)
	return edge
}

func (e *StraightEdge) Kind() EdgeKind {
	return KindStraight
}

func (e *StraightEdge) Body() *Body {
	return e.body
}

func (e *StraightEdge) Curvature() float64 {
	return math.Inf(1)
}

func (e *StraightEdge) V1() *Vertex {
	return e.v1
}

func (e *StraightEdge) V2() *Vertex {
	return e.v2
}

// Normal returns the outward unit normal in body coordinates.
func (e *StraightEdge) Normal() Vector {
	return e.normal
}

// WorldNormal returns the outward unit normal in world coordinates.
func (e *StraightEdge) WorldNormal() Vector {
	return e.body.transform.Vect(e.normal)
}

// distanceToLine returns the signed perpendicular distance from a
// point (in this edge's body coordinates) to the infinite line
// containing the edge. Positive is the outside.
func (e *StraightEdge) distanceToLine(p Vector) float64 {
	return p.Sub(e.v1.loc).Dot(e.normal)
}

// projectToLine returns the orthogonal projection of a body-coordinate
// point onto the line containing the edge.
func (e *StraightEdge) projectToLine(p Vector) Vector {
	return p.Sub(e.normal.Mult(e.distanceToLine(p)))
}

// withinExtent reports whether the body-coordinate point projects onto
// the finite segment rather than off one of its ends.
func (e *StraightEdge) withinExtent(p Vector) bool {
	dir := e.v2.loc.Sub(e.v1.loc)
	t := p.Sub(e.v1.loc).Dot(dir) / dir.LengthSq()
	return t >= 0 && t <= 1
}

func (e *StraightEdge) BoundsWorld() BB {
	p1 := e.body.transform.Point(e.v1.loc)
	p2 := e.body.transform.Point(e.v2.loc)
	return BB{
		math.Min(p1.X, p2.X),
		math.Min(p1.Y, p2.Y),
		math.Max(p1.X, p2.X),
		math.Max(p1.Y, p2.Y),
	}
}
