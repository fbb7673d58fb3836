package mech2d

// CoordType selects whether a joint normal is expressed in body2's
// coordinates or directly in world coordinates.
type CoordType int

const (
	BodyCoords CoordType = iota
	WorldCoords
)

// Joint ties an attachment point on one body to an attachment point on
// another (or on the scrim), with a normal direction along which the
// constraint solver removes relative motion. Joints are asserted as
// already satisfied at creation via Align, not eased into.
type Joint struct {
	body1, body2     *Body
	attach1, attach2 Vector // body coordinates on each body
	normal           Vector
	normalCoords     CoordType
}

// NewJoint performs no validation of the normal; malformed inputs are
// the caller's responsibility.
func NewJoint(body1 *Body, attach1 Vector, body2 *Body, attach2 Vector, normalCoords CoordType, normal Vector) *Joint {
	return &Joint{
		body1:        body1,
		body2:        body2,
		attach1:      attach1,
		attach2:      attach2,
		normal:       normal,
		normalCoords: normalCoords,
	}
}

func (j *Joint) Body1() *Body { return j.body1 }
func (j *Joint) Body2() *Body { return j.body2 }

func (j *Joint) Attach1World() Vector {
	return j.body1.LocalToWorld(j.attach1)
}

func (j *Joint) Attach2World() Vector {
	return j.body2.LocalToWorld(j.attach2)
}

// WorldNormal returns the joint normal in world coordinates. A
// BodyCoords normal rotates with body2.
func (j *Joint) WorldNormal() Vector {
	if j.normalCoords == BodyCoords {
		return j.body2.transform.Vect(j.normal)
	}
	return j.normal
}

// Gap returns the current distance between the attachment points.
func (j *Joint) Gap() float64 {
	return j.Attach1World().Distance(j.Attach2World())
}

// Align snaps body2 so the attachment points coincide exactly.
func (j *Joint) Align() {
	assert(!j.body2.IsStatic(), "cannot align a static body")
	delta := j.Attach1World().Sub(j.Attach2World())
	j.body2.SetPosition(j.body2.Position().Add(delta))
}

// Connects reports whether the joint ties the two given bodies, in
// either order.
func (j *Joint) Connects(a, b *Body) bool {
	return (j.body1 == a && j.body2 == b) || (j.body1 == b && j.body2 == a)
}
