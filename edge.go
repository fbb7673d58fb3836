package mech2d

// EdgeKind identifies one of the closed set of edge geometries. The
// pairwise collision dispatch table is indexed by kind, so the order
// here matters.
type EdgeKind int

const (
	KindCircular EdgeKind = iota
	KindStraight
	edgeKindNum
)

// Edge is one piece of a body's boundary. Geometry is fixed in body
// coordinates; the owning body's transform carries it into the world.
type Edge interface {
	Kind() EdgeKind
	Body() *Body
	// Curvature returns the signed radius of curvature: positive for
	// convex circular edges, negative for concave, +Inf for straight.
	Curvature() float64
	BoundsWorld() BB
}
