package mech2d

// Spring connects attachment points on two bodies and produces a force
// each evaluation. Stiffness, rest length and damping are mutable;
// potential energy bookkeeping follows the current values.
type Spring struct {
	body1, body2     *Body
	attach1, attach2 Vector // body coordinates
	restLength       float64
	stiffness        float64
	damping          float64
}

func NewSpring(body1 *Body, attach1 Vector, body2 *Body, attach2 Vector, restLength, stiffness float64) *Spring {
	assert(restLength >= 0 && finite(restLength), "rest length must be non-negative and finite")
	assert(stiffness >= 0 && finite(stiffness), "stiffness must be non-negative and finite")
	return &Spring{
		body1:      body1,
		body2:      body2,
		attach1:    attach1,
		attach2:    attach2,
		restLength: restLength,
		stiffness:  stiffness,
	}
}

func (s *Spring) Body1() *Body { return s.body1 }
func (s *Spring) Body2() *Body { return s.body2 }

func (s *Spring) RestLength() float64 { return s.restLength }

func (s *Spring) SetRestLength(l float64) {
	assert(l >= 0 && finite(l), "rest length must be non-negative and finite")
	s.restLength = l
}

func (s *Spring) Stiffness() float64 { return s.stiffness }

func (s *Spring) SetStiffness(k float64) {
	assert(k >= 0 && finite(k), "stiffness must be non-negative and finite")
	s.stiffness = k
}

func (s *Spring) Damping() float64 { return s.damping }

func (s *Spring) SetDamping(d float64) {
	assert(d >= 0 && finite(d), "damping must be non-negative and finite")
	s.damping = d
}

// Attach1World returns body1's attachment point in world coordinates.
func (s *Spring) Attach1World() Vector {
	return s.body1.LocalToWorld(s.attach1)
}

func (s *Spring) Attach2World() Vector {
	return s.body2.LocalToWorld(s.attach2)
}

func (s *Spring) Length() float64 {
	return s.Attach2World().Distance(s.Attach1World())
}

// Force returns the world force the spring applies to body2's
// attachment point; body1 receives the negation.
func (s *Spring) Force() Vector {
	p1 := s.Attach1World()
	p2 := s.Attach2World()
	delta := p2.Sub(p1)
	dist := delta.Length()
	if dist == 0 {
		return Vector{}
	}
	n := delta.Mult(1 / dist)
	f := (s.restLength - dist) * s.stiffness
	if s.damping != 0 {
		vrn := s.body2.VelocityAtWorldPoint(p2).Sub(s.body1.VelocityAtWorldPoint(p1)).Dot(n)
		f -= s.damping * vrn
	}
	return n.Mult(f)
}

func (s *Spring) PotentialEnergy() float64 {
	stretch := s.Length() - s.restLength
	return 0.5 * s.stiffness * stretch * stretch
}
