package mech2d

import "log"

// Collision records one detected interaction between two edges of
// different bodies. Contact distinguishes a persistent low-velocity
// touching state (resolved by the contact force pass) from an
// impulsive collision.
//
// Records are created by the detector each step and consumed by the
// resolver within the same step.
type Collision struct {
	// EdgeA is the circular edge when the kinds differ.
	EdgeA Edge
	EdgeB Edge

	// Impact is the world-space impact point.
	Impact Vector

	// Normal is the unit separation normal in world coordinates,
	// pointing from EdgeB's surface toward EdgeA.
	Normal Vector

	// Distance is the signed gap; negative means penetrating.
	Distance float64

	// R is the effective contact radius used by the contact force
	// solve. For a contact it carries the current gap on top of the
	// true radius, which drives the solver toward zero gap.
	R float64

	DetectTime float64
	Contact    bool
}

func (c *Collision) CollisionTime() float64 {
	return c.DetectTime
}

func (c *Collision) IsContact() bool {
	return c.Contact
}

// ImproveAccuracy recomputes the impact point, normal and distance
// from current positions. Used as a refinement pass after detection.
// Contacts keep the projected-onto-line impact point; collisions keep
// the offset-by-radius point.
func (c *Collision) ImproveAccuracy() {
	switch {
	case c.EdgeA.Kind() == KindCircular && c.EdgeB.Kind() == KindStraight:
		improveCircleStraight(c)
	case c.EdgeA.Kind() == KindCircular && c.EdgeB.Kind() == KindCircular:
		improveCircleCircle(c)
	}
}

type collideFunc func(a, b Edge, now, distTol float64, collisions *[]*Collision)

// Pairwise dispatch over the closed set of edge kinds, indexed by
// kindA + kindB*edgeKindNum after sorting so the circular edge comes
// first.
var collideFuncs = [edgeKindNum * edgeKindNum]collideFunc{
	collideCircleCircle,
	collideKindError,
	collideCircleStraight,
	collideStraightStraight,
}

// CollideEdges tests a pair of edges belonging to two different bodies
// and appends any detected collision or contact record to collisions.
// It never emits more than one record per pair per step.
func CollideEdges(a, b Edge, now, distTol float64, collisions *[]*Collision) {
	assert(a.Body() != b.Body(), "edges belong to the same body")
	if a.Kind() > b.Kind() {
		a, b = b, a
	}
	collideFuncs[int(a.Kind())+int(b.Kind())*int(edgeKindNum)](a, b, now, distTol, collisions)
}

func collideKindError(a, b Edge, now, distTol float64, collisions *[]*Collision) {
	log.Fatal("edge kinds are not sorted")
}

// Straight-straight pairs produce no events here: parallel lines never
// cross cleanly and endpoint interactions are vertex-edge events.
func collideStraightStraight(a, b Edge, now, distTol float64, collisions *[]*Collision) {
}

// checkHistory verifies both bodies agree about having previous-step
// transforms. Mismatched availability means the scene setup skipped a
// SaveHistory call, a caller bug.
func checkHistory(a, b *Body) bool {
	assert(a.hasHistory == b.hasHistory, "bodies disagree about position history")
	return a.hasHistory
}
