package mech2d

// Transform is a rigid-body transform: a rotation followed by a
// translation. Bodies keep two of these, the current one and the one
// saved before the last integration step, so collision tests can tell
// a fresh crossing from pre-existing penetration.
type Transform struct {
	rot Vector // unit cos/sin pair
	pos Vector
}

func NewTransformIdentity() Transform {
	return Transform{rot: Vector{1, 0}}
}

func NewTransformRigid(pos Vector, radians float64) Transform {
	return Transform{rot: ForAngle(radians), pos: pos}
}

// Point transforms a point from local to world coordinates.
func (t Transform) Point(p Vector) Vector {
	return p.Rotate(t.rot).Add(t.pos)
}

// Vect transforms a direction from local to world coordinates.
func (t Transform) Vect(v Vector) Vector {
	return v.Rotate(t.rot)
}

// InversePoint transforms a world point into local coordinates.
func (t Transform) InversePoint(p Vector) Vector {
	return p.Sub(t.pos).Unrotate(t.rot)
}

// InverseVect transforms a world direction into local coordinates.
func (t Transform) InverseVect(v Vector) Vector {
	return v.Unrotate(t.rot)
}

func (t Transform) Position() Vector {
	return t.pos
}

func (t Transform) Angle() float64 {
	return t.rot.ToAngle()
}
