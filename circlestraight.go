package mech2d

// collideCircleStraight tests a circular edge against a straight edge
// of another body. Within the distance tolerance on the outside it
// emits a contact; a fresh crossing to the inside since the previous
// step emits a collision. At most one record per step.
func collideCircleStraight(a, b Edge, now, distTol float64, collisions *[]*Collision) {
	circle := a.(*CircularEdge)
	straight := b.(*StraightEdge)

	// A concave circular edge can never reach a straight edge this way.
	if circle.IsConcave() {
		return
	}

	// Work in the straight edge's body frame. cb is the circle center;
	// p is the point of the circle nearest the line.
	cb := straight.body.WorldToLocal(circle.WorldCenter())
	p := cb.Sub(straight.normal.Mult(circle.radius))
	dist := straight.distanceToLine(cb) - circle.radius

	if dist > 0 {
		if dist > distTol {
			return
		}
		// Candidate resting contact. Off the end of the segment, or off
		// the arc, is left to the vertex tests.
		if !straight.withinExtent(p) {
			return
		}
		pw := straight.body.LocalToWorld(p)
		if !circle.WithinArc(circle.body.WorldToLocal(pw)) {
			return
		}
		// Project onto the line rather than using the offset point, for
		// stability of repeated contact resolution. The effective radius
		// carries the gap so the contact solve is driven toward zero gap.
		*collisions = append(*collisions, &Collision{
			EdgeA:      circle,
			EdgeB:      straight,
			Impact:     straight.body.LocalToWorld(straight.projectToLine(p)),
			Normal:     straight.WorldNormal(),
			Distance:   dist,
			R:          circle.radius + dist,
			DetectTime: now,
			Contact:    true,
		})
		return
	}

	// Penetrating this step. Only a fresh crossing since the previous
	// step counts; without history there is nothing to compare.
	if !checkHistory(circle.body, straight.body) {
		return
	}
	oldCb := straight.body.prevTransform.InversePoint(circle.body.prevTransform.Point(circle.center))
	oldP := oldCb.Sub(straight.normal.Mult(circle.radius))
	oldDist := straight.distanceToLine(oldP)
	if oldDist < 0 {
		// was already penetrating last step, no new crossing
		return
	}
	denom := oldDist - dist
	if denom <= 0 {
		// antiparallel or degenerate motion, no intersection solution
		return
	}
	s := oldDist / denom
	if !straight.withinExtent(oldP.Lerp(p, s)) {
		return
	}
	*collisions = append(*collisions, &Collision{
		EdgeA:      circle,
		EdgeB:      straight,
		Impact:     straight.body.LocalToWorld(p),
		Normal:     straight.WorldNormal(),
		Distance:   dist,
		R:          circle.radius,
		DetectTime: now,
		Contact:    false,
	})
}

func improveCircleStraight(c *Collision) {
	circle := c.EdgeA.(*CircularEdge)
	straight := c.EdgeB.(*StraightEdge)

	cb := straight.body.WorldToLocal(circle.WorldCenter())
	p := cb.Sub(straight.normal.Mult(circle.radius))
	c.Distance = straight.distanceToLine(cb) - circle.radius
	c.Normal = straight.WorldNormal()
	if c.Contact {
		c.Impact = straight.body.LocalToWorld(straight.projectToLine(p))
		c.R = circle.radius + c.Distance
	} else {
		c.Impact = straight.body.LocalToWorld(p)
	}
}
