package mech2d

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func springPair(t *testing.T) (*Body, *Body, *Spring) {
	t.Helper()
	b1 := NewBody(1, 1)
	b2 := NewBody(1, 1)
	b2.SetPosition(Vector{2, 0})
	return b1, b2, NewSpring(b1, Vector{}, b2, Vector{}, 1.5, 3)
}

func TestSpringForce(t *testing.T) {
	_, _, s := springPair(t)

	tassert.Equal(t, 2.0, s.Length())
	// stretched past rest length: pulls body2 back toward body1
	assertVecNear(t, Vector{-1.5, 0}, s.Force(), standardTol)
	tassert.InDelta(t, 0.5*3*0.25, s.PotentialEnergy(), standardTol)
}

func TestSpringDampingOpposesSeparation(t *testing.T) {
	_, b2, s := springPair(t)
	s.SetDamping(0.5)
	b2.SetVelocity(Vector{1, 0})

	assertVecNear(t, Vector{-2, 0}, s.Force(), standardTol)
}

func TestSpringZeroLength(t *testing.T) {
	b1 := NewBody(1, 1)
	b2 := NewBody(1, 1)
	s := NewSpring(b1, Vector{}, b2, Vector{}, 1, 2)

	// coincident attachment points give no usable direction
	tassert.Equal(t, Vector{}, s.Force())
}

func TestSpringCompressed(t *testing.T) {
	_, b2, s := springPair(t)
	b2.SetPosition(Vector{1, 0})

	// compressed below rest length: pushes body2 away
	assertVecNear(t, Vector{1.5, 0}, s.Force(), standardTol)
}

func TestSpringSetterValidation(t *testing.T) {
	_, _, s := springPair(t)

	tassert.Panics(t, func() { s.SetRestLength(-1) })
	tassert.Panics(t, func() { s.SetStiffness(-1) })
	tassert.Panics(t, func() { s.SetDamping(-1) })
	tassert.Panics(t, func() { NewSpring(NewBody(1, 1), Vector{}, NewBody(1, 1), Vector{}, -1, 1) })
}

func TestSpringAttachmentPoints(t *testing.T) {
	b1 := NewBody(1, 1)
	b1.SetPosition(Vector{1, 1})
	b2 := NewBody(1, 1)
	b2.SetPosition(Vector{4, 1})
	s := NewSpring(b1, Vector{0.5, 0}, b2, Vector{-0.5, 0}, 1, 1)

	tassert.Equal(t, Vector{1.5, 1}, s.Attach1World())
	tassert.Equal(t, Vector{3.5, 1}, s.Attach2World())
	tassert.Equal(t, 2.0, s.Length())
}

func TestEnergyInfoTotal(t *testing.T) {
	e := EnergyInfo{Potential: 2.5, Kinetic: 1.5}
	tassert.Equal(t, 4.0, e.Total())
}
