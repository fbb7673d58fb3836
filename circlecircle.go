package mech2d

// collideCircleCircle tests two convex circular edges of different
// bodies, with the same contact/collision classification as the
// circle-straight test.
func collideCircleCircle(a, b Edge, now, distTol float64, collisions *[]*Collision) {
	ca := a.(*CircularEdge)
	cb := b.(*CircularEdge)

	if ca.IsConcave() || cb.IsConcave() {
		return
	}

	c1 := ca.WorldCenter()
	c2 := cb.WorldCenter()
	d := c1.Distance(c2)
	if d == 0 {
		// concentric, no usable normal
		return
	}
	// normal points from b's surface toward a
	n := c1.Sub(c2).Mult(1 / d)
	dist := d - (ca.radius + cb.radius)

	if dist > 0 {
		if dist > distTol {
			return
		}
		p1 := c1.Sub(n.Mult(ca.radius))
		p2 := c2.Add(n.Mult(cb.radius))
		if !ca.WithinArc(ca.body.WorldToLocal(p1)) {
			return
		}
		if !cb.WithinArc(cb.body.WorldToLocal(p2)) {
			return
		}
		*collisions = append(*collisions, &Collision{
			EdgeA:      ca,
			EdgeB:      cb,
			Impact:     p1.Lerp(p2, 0.5),
			Normal:     n,
			Distance:   dist,
			R:          ca.radius + dist,
			DetectTime: now,
			Contact:    true,
		})
		return
	}

	if !checkHistory(ca.body, cb.body) {
		return
	}
	oldC1 := ca.body.prevTransform.Point(ca.center)
	oldC2 := cb.body.prevTransform.Point(cb.center)
	oldDist := oldC1.Distance(oldC2) - (ca.radius + cb.radius)
	if oldDist < 0 {
		return
	}
	if oldDist-dist <= 0 {
		return
	}
	p1 := c1.Sub(n.Mult(ca.radius))
	p2 := c2.Add(n.Mult(cb.radius))
	*collisions = append(*collisions, &Collision{
		EdgeA:      ca,
		EdgeB:      cb,
		Impact:     p1.Lerp(p2, 0.5),
		Normal:     n,
		Distance:   dist,
		R:          ca.radius,
		DetectTime: now,
		Contact:    false,
	})
}

func improveCircleCircle(c *Collision) {
	ca := c.EdgeA.(*CircularEdge)
	cb := c.EdgeB.(*CircularEdge)

	c1 := ca.WorldCenter()
	c2 := cb.WorldCenter()
	d := c1.Distance(c2)
	if d == 0 {
		return
	}
	n := c1.Sub(c2).Mult(1 / d)
	c.Normal = n
	c.Distance = d - (ca.radius + cb.radius)
	p1 := c1.Sub(n.Mult(ca.radius))
	p2 := c2.Add(n.Mult(cb.radius))
	c.Impact = p1.Lerp(p2, 0.5)
	if c.Contact {
		c.R = ca.radius + c.Distance
	}
}
