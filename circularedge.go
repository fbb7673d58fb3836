package mech2d

import "math"

// CircularEdge is a circle or circular arc centered at a fixed point
// in body coordinates. outsideIsOut is true for a convex edge (the
// solid is inside the circle); a concave edge has the solid outside
// its center of curvature.
type CircularEdge struct {
	body         *Body
	center       Vector
	radius       float64
	outsideIsOut bool

	// arc bounds, ignored for a full circle
	angleLow, angleHigh float64
	fullCircle          bool
}

// NewCircularEdge creates a full-circle edge.
func NewCircularEdge(body *Body, center Vector, radius float64, outsideIsOut bool) *CircularEdge {
	assert(radius > 0 && finite(radius), "radius must be positive and finite")
	edge := &CircularEdge{
		body:         body,
		center:       center,
		radius:       radius,
		outsideIsOut: outsideIsOut,
		fullCircle:   true,
	}
	body.addEdge(edge)
	return edge
}

// NewCircularArc creates a partial circular edge covering the angular
// range [angleLow, angleHigh] in body coordinates.
func NewCircularArc(body *Body, center Vector, radius, angleLow, angleHigh float64, outsideIsOut bool) *CircularEdge {
	assert(radius > 0 && finite(radius), "radius must be positive and finite")
	assert(angleHigh > angleLow, "empty arc")
	edge := &CircularEdge{
		body:         body,
		center:       center,
		radius:       radius,
		outsideIsOut: outsideIsOut,
		angleLow:     angleLow,
		angleHigh:    angleHigh,
	}
	body.addEdge(edge)
	return edge
}

func (e *CircularEdge) Kind() EdgeKind {
	return KindCircular
}

func (e *CircularEdge) Body() *Body {
	return e.body
}

func (e *CircularEdge) Radius() float64 {
	return e.radius
}

func (e *CircularEdge) Curvature() float64 {
	if e.outsideIsOut {
		return e.radius
	}
	return -e.radius
}

// IsConcave reports whether the center of curvature is inside the
// solid. A concave circular edge cannot collide with a straight edge
// or another convex circle through the pairwise tests.
func (e *CircularEdge) IsConcave() bool {
	return !e.outsideIsOut
}

// WorldCenter returns the arc center in world coordinates.
func (e *CircularEdge) WorldCenter() Vector {
	return e.body.transform.Point(e.center)
}

// WithinArc reports whether a body-coordinate point on the circle lies
// within the edge's angular range.
func (e *CircularEdge) WithinArc(p Vector) bool {
	if e.fullCircle {
		return true
	}
	a := p.Sub(e.center).ToAngle()
	for a < e.angleLow {
		a += 2 * math.Pi
	}
	return a <= e.angleHigh
}

func (e *CircularEdge) BoundsWorld() BB {
	// conservative for arcs: bounds of the full circle
	return NewBBForCircle(e.WorldCenter(), e.radius)
}
