package mech2d

import (
	"fmt"
	"math"
)

// Body is a rigid body: world position of the body origin, orientation
// angle, linear and angular velocity, mass and moment of inertia about
// the center of mass. Edge geometry is fixed in body coordinates; only
// the transform changes over time.
type Body struct {
	name string

	// mass and its inverse
	m, mInv float64

	// moment of inertia and its inverse
	i, iInv float64

	// center of mass offset in body coordinates
	cog Vector

	p Vector  // world position of the body origin
	v Vector  // linear velocity
	a float64 // angle (radians)
	w float64 // angular velocity

	elasticity float64

	transform     Transform
	prevTransform Transform
	hasHistory    bool

	edges []Edge

	dragging bool
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func finiteVec(v Vector) bool {
	return finite(v.X) && finite(v.Y)
}

// NewBody creates a body with the given mass and moment of inertia.
// A zero moment disables rotation; point masses do not spin.
func NewBody(mass, moment float64) *Body {
	assert(mass > 0 && finite(mass), "mass must be positive and finite")
	assert(moment >= 0 && finite(moment), "moment must be non-negative and finite")
	body := &Body{
		m:             mass,
		mInv:          1 / mass,
		i:             moment,
		elasticity:    1,
		transform:     NewTransformIdentity(),
		prevTransform: NewTransformIdentity(),
	}
	if moment > 0 {
		body.iInv = 1 / moment
	}
	return body
}

// newStaticBody builds an immovable body. Used for the scrim; it never
// responds to forces or impulses.
func newStaticBody() *Body {
	return &Body{
		m:             math.Inf(1),
		i:             math.Inf(1),
		elasticity:    1,
		transform:     NewTransformIdentity(),
		prevTransform: NewTransformIdentity(),
	}
}

func (body *Body) IsStatic() bool {
	return body.mInv == 0 && body.iInv == 0
}

func (body *Body) String() string {
	return fmt.Sprint("Body ", body.name)
}

func (body *Body) Name() string {
	return body.name
}

func (body *Body) SetName(name string) {
	body.name = name
}

func (body *Body) Mass() float64 {
	return body.m
}

func (body *Body) SetMass(mass float64) {
	assert(mass > 0 && finite(mass), "mass must be positive and finite")
	body.m = mass
	body.mInv = 1 / mass
}

func (body *Body) Moment() float64 {
	return body.i
}

func (body *Body) SetMoment(moment float64) {
	assert(moment >= 0 && finite(moment), "moment must be non-negative and finite")
	body.i = moment
	if moment > 0 {
		body.iInv = 1 / moment
	} else {
		body.iInv = 0
	}
}

func (body *Body) CenterOfGravity() Vector {
	return body.cog
}

func (body *Body) SetCenterOfGravity(cog Vector) {
	assert(finiteVec(cog), "center of gravity must be finite")
	body.cog = cog
}

func (body *Body) Position() Vector {
	return body.p
}

func (body *Body) SetPosition(position Vector) {
	assert(finiteVec(position), "position must be finite")
	body.p = position
	body.updateTransform()
}

func (body *Body) Angle() float64 {
	return body.a
}

func (body *Body) SetAngle(angle float64) {
	assert(finite(angle), "angle must be finite")
	body.a = angle
	body.updateTransform()
}

func (body *Body) Velocity() Vector {
	return body.v
}

func (body *Body) SetVelocity(v Vector) {
	assert(finiteVec(v), "velocity must be finite")
	body.v = v
}

func (body *Body) AngularVelocity() float64 {
	return body.w
}

func (body *Body) SetAngularVelocity(w float64) {
	assert(finite(w), "angular velocity must be finite")
	body.w = w
}

func (body *Body) Elasticity() float64 {
	return body.elasticity
}

// SetElasticity sets the restitution coefficient: 0 is fully
// inelastic, 1 is fully elastic.
func (body *Body) SetElasticity(e float64) {
	assert(e >= 0 && e <= 1, "elasticity must be in [0,1]")
	body.elasticity = e
}

func (body *Body) Dragging() bool {
	return body.dragging
}

// SetDragging marks the body as under direct user manipulation, which
// disables the resting contact heuristic for it.
func (body *Body) SetDragging(dragging bool) {
	body.dragging = dragging
}

func (body *Body) updateTransform() {
	body.transform = NewTransformRigid(body.p, body.a)
}

func (body *Body) Transform() Transform {
	return body.transform
}

// SaveHistory records the current transform as the previous-step
// transform. Call once per body before each integration step.
func (body *Body) SaveHistory() {
	body.prevTransform = body.transform
	body.hasHistory = true
}

func (body *Body) HasHistory() bool {
	return body.hasHistory
}

// OldTransform returns the transform saved before the last step. The
// second result is false when the body has no history yet (first step
// after it was added).
func (body *Body) OldTransform() (Transform, bool) {
	return body.prevTransform, body.hasHistory
}

func (body *Body) LocalToWorld(point Vector) Vector {
	return body.transform.Point(point)
}

func (body *Body) WorldToLocal(point Vector) Vector {
	return body.transform.InversePoint(point)
}

func (body *Body) worldCoG() Vector {
	return body.transform.Point(body.cog)
}

// VelocityAtWorldPoint returns the velocity of the material point of
// the body currently at the given world position.
func (body *Body) VelocityAtWorldPoint(point Vector) Vector {
	r := point.Sub(body.worldCoG())
	return body.v.Add(r.Perp().Mult(body.w))
}

func (body *Body) KineticEnergy() float64 {
	if body.IsStatic() {
		return 0
	}
	return 0.5*body.m*body.v.LengthSq() + 0.5*body.i*body.w*body.w
}

func (body *Body) addEdge(edge Edge) {
	body.edges = append(body.edges, edge)
}

func (body *Body) Edges() []Edge {
	return body.edges
}

// BoundsWorld returns the world-space bounding box of the body's
// edges, or a point box at the center of mass for a body without
// geometry.
func (body *Body) BoundsWorld() BB {
	if len(body.edges) == 0 {
		c := body.worldCoG()
		return BB{c.X, c.Y, c.X, c.Y}
	}
	bb := body.edges[0].BoundsWorld()
	for _, e := range body.edges[1:] {
		bb = bb.Merge(e.BoundsWorld())
	}
	return bb
}
