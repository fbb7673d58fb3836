package mech2d

// Impulse resolution for collision records. r1 and r2 are offsets from
// each body's world center of mass to the impact point.

func applyImpulse(body *Body, j, r Vector) {
	body.v = body.v.Add(j.Mult(body.mInv))
	body.w += body.iInv * r.Cross(j)
}

func kScalarBody(body *Body, r, n Vector) float64 {
	rcn := r.Cross(n)
	return body.mInv + body.iInv*rcn*rcn
}

func kScalar(a, b *Body, r1, r2, n Vector) float64 {
	return kScalarBody(a, r1, n) + kScalarBody(b, r2, n)
}

// normalRelativeVelocity returns the velocity of a's impact point
// relative to b's, along n.
func normalRelativeVelocity(a, b *Body, r1, r2, n Vector) float64 {
	va := a.v.Add(r1.Perp().Mult(a.w))
	vb := b.v.Add(r2.Perp().Mult(b.w))
	return va.Sub(vb).Dot(n)
}

// resolveCollision applies an instantaneous restitution impulse for a
// collision record and reports whether one was applied. Separating
// pairs and static-static pairs are left alone.
func resolveCollision(c *Collision) bool {
	a := c.EdgeA.Body()
	b := c.EdgeB.Body()
	r1 := c.Impact.Sub(a.worldCoG())
	r2 := c.Impact.Sub(b.worldCoG())

	vrn := normalRelativeVelocity(a, b, r1, r2, c.Normal)
	if vrn >= 0 {
		return false
	}
	k := kScalar(a, b, r1, r2, c.Normal)
	if k == 0 {
		return false
	}
	e := a.elasticity * b.elasticity
	j := -(1 + e) * vrn / k
	applyImpulse(a, c.Normal.Mult(j), r1)
	applyImpulse(b, c.Normal.Mult(-j), r2)
	return true
}
