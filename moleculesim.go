package mech2d

import (
	"fmt"
	"math"
)

// Walls is the rectangular boundary of a molecule simulation.
type Walls struct {
	Left, Bottom, Right, Top float64
}

func (wa Walls) Width() float64 {
	return wa.Right - wa.Left
}

func (wa Walls) Height() float64 {
	return wa.Top - wa.Bottom
}

type wallSide int

const (
	wallLeft wallSide = iota
	wallRight
	wallBottom
	wallTop
)

func (s wallSide) String() string {
	switch s {
	case wallLeft:
		return "left"
	case wallRight:
		return "right"
	case wallBottom:
		return "bottom"
	case wallTop:
		return "top"
	}
	return "unknown"
}

// WallCollision records one ball overlapping one wall at the end of a
// trial step. Always an impulsive collision, never a contact.
type WallCollision struct {
	ball int
	side wallSide
	time float64
}

func (wc *WallCollision) Ball() int {
	return wc.ball
}

func (wc *WallCollision) CollisionTime() float64 {
	return wc.time
}

func (wc *WallCollision) IsContact() bool {
	return false
}

func (wc *WallCollision) String() string {
	return fmt.Sprintf("ball %d hit %v wall at %v", wc.ball, wc.side, wc.time)
}

// Variable layout: [time, KE, PE, TE] then four per ball (x, y, vx, vy).
const (
	moleculeBaseVars = 4
	ballVarCount     = 4
)

// MoleculeSim is a small set of point masses inside a rectangular
// boundary, connected by springs, under gravity. Wall penetrations are
// resolved by per-axis elastic impulses; a resting-contact heuristic
// in the force evaluator keeps settled balls from accelerating through
// the floor.
type MoleculeSim struct {
	vars    *VarsList
	balls   []*Body
	radii   []float64
	springs []*Spring
	walls   Walls

	gravity    float64 // downward acceleration
	damping    float64
	elasticity float64
	distTol    float64

	impulses int
}

func NewMoleculeSim(walls Walls) *MoleculeSim {
	assert(walls.Right > walls.Left && walls.Top > walls.Bottom, "walls are inside out")
	vars := NewVarsList("time", "kinetic energy", "potential energy", "total energy")
	vars.MarkComputed(1, 2, 3)
	return &MoleculeSim{
		vars:       vars,
		walls:      walls,
		gravity:    9.8,
		elasticity: 1,
		distTol:    0.01,
	}
}

func (ms *MoleculeSim) Walls() Walls {
	return ms.walls
}

func (ms *MoleculeSim) Gravity() float64 {
	return ms.gravity
}

func (ms *MoleculeSim) SetGravity(g float64) {
	assert(finite(g), "gravity must be finite")
	ms.gravity = g
}

func (ms *MoleculeSim) Elasticity() float64 {
	return ms.elasticity
}

func (ms *MoleculeSim) SetElasticity(e float64) {
	assert(e >= 0 && e <= 1, "elasticity must be in [0,1]")
	ms.elasticity = e
}

func (ms *MoleculeSim) SetDamping(d float64) {
	assert(d >= 0 && finite(d), "damping must be non-negative and finite")
	ms.damping = d
}

func (ms *MoleculeSim) DistanceTolerance() float64 {
	return ms.distTol
}

func (ms *MoleculeSim) SetDistanceTolerance(tol float64) {
	assert(tol > 0 && finite(tol), "distance tolerance must be positive and finite")
	ms.distTol = tol
}

// AddBall creates a point-mass ball with a full circular edge of the
// given radius and appends its four variables to the state vector.
func (ms *MoleculeSim) AddBall(mass, radius float64, pos, vel Vector) *Body {
	n := len(ms.balls) + 1
	body := NewBody(mass, 0)
	body.SetName(fmt.Sprintf("ball%d", n))
	NewCircularEdge(body, Vector{}, radius, true)
	body.SetPosition(pos)
	body.SetVelocity(vel)

	idx := ms.vars.AddVariables(
		body.name+" x", body.name+" y",
		body.name+" vx", body.name+" vy",
	)
	ms.vars.SetValue(idx, pos.X)
	ms.vars.SetValue(idx+1, pos.Y)
	ms.vars.SetValue(idx+2, vel.X)
	ms.vars.SetValue(idx+3, vel.Y)

	ms.balls = append(ms.balls, body)
	ms.radii = append(ms.radii, radius)
	return body
}

func (ms *MoleculeSim) Balls() []*Body {
	return ms.balls
}

// AddSpring connects the centers of two balls by index.
func (ms *MoleculeSim) AddSpring(i, j int, restLength, stiffness, damping float64) *Spring {
	assert(i != j, "spring connects a ball to itself")
	s := NewSpring(ms.balls[i], Vector{}, ms.balls[j], Vector{}, restLength, stiffness)
	s.SetDamping(damping)
	ms.springs = append(ms.springs, s)
	return s
}

func (ms *MoleculeSim) Springs() []*Spring {
	return ms.springs
}

func (ms *MoleculeSim) Vars() *VarsList {
	return ms.vars
}

func (ms *MoleculeSim) Time() float64 {
	return ms.vars.Value(0)
}

// Impulses returns the count of impulses applied so far; exactly one
// per resolved wall collision.
func (ms *MoleculeSim) Impulses() int {
	return ms.impulses
}

func (ms *MoleculeSim) ballOffset(i int) int {
	return moleculeBaseVars + ballVarCount*i
}

// moveBalls sets ball body state from a variable slice so force laws
// evaluate against the trial positions.
func (ms *MoleculeSim) moveBalls(vars []float64) {
	for i, b := range ms.balls {
		off := ms.ballOffset(i)
		b.p = Vector{vars[off], vars[off+1]}
		b.v = Vector{vars[off+2], vars[off+3]}
		b.updateTransform()
	}
}

func (ms *MoleculeSim) Evaluate(vars, change []float64, timeStep float64) error {
	for i, v := range vars {
		if !ms.vars.IsComputed(i) && !finite(v) {
			return fmt.Errorf("variable %q is not finite", ms.vars.Name(i))
		}
	}
	change[0] = 1 // time

	ms.moveBalls(vars)
	for i, b := range ms.balls {
		off := ms.ballOffset(i)
		change[off] = vars[off+2]
		change[off+1] = vars[off+3]

		f := Vector{0, -ms.gravity * b.m}
		f = f.Add(b.v.Mult(-ms.damping))
		for _, s := range ms.springs {
			if s.body2 == b {
				f = f.Add(s.Force())
			} else if s.body1 == b {
				f = f.Add(s.Force().Neg())
			}
		}

		ax := f.X * b.mInv
		ay := f.Y * b.mInv
		if !b.dragging {
			// Resting contact: when the net force points into a nearby
			// wall and the velocity is too small to separate within half
			// a nominal step, suppress that acceleration component.
			r := ms.radii[i]
			x, y := vars[off], vars[off+1]
			vx, vy := vars[off+2], vars[off+3]
			vmaxX := math.Abs(f.X) * timeStep / (2 * b.m)
			vmaxY := math.Abs(f.Y) * timeStep / (2 * b.m)
			if f.X < 0 && x-r-ms.walls.Left <= ms.distTol && math.Abs(vx) < vmaxX {
				ax = 0
			}
			if f.X > 0 && ms.walls.Right-(x+r) <= ms.distTol && math.Abs(vx) < vmaxX {
				ax = 0
			}
			if f.Y < 0 && y-r-ms.walls.Bottom <= ms.distTol && math.Abs(vy) < vmaxY {
				ay = 0
			}
			if f.Y > 0 && ms.walls.Top-(y+r) <= ms.distTol && math.Abs(vy) < vmaxY {
				ay = 0
			}
		}
		change[off+2] = ax
		change[off+3] = ay
	}
	return nil
}

func (ms *MoleculeSim) ModifyObjects() {
	ms.moveBalls(ms.vars.values)
	e := ms.EnergyInfo()
	ms.vars.SetValueContinuous(1, e.Kinetic)
	ms.vars.SetValueContinuous(2, e.Potential)
	ms.vars.SetValueContinuous(3, e.Total())
}

// EnergyInfo measures gravitational potential from the bottom wall.
func (ms *MoleculeSim) EnergyInfo() EnergyInfo {
	var e EnergyInfo
	for i, b := range ms.balls {
		e.Kinetic += 0.5 * b.m * b.v.LengthSq()
		e.Potential += b.m * ms.gravity * (b.p.Y - ms.radii[i] - ms.walls.Bottom)
	}
	for _, s := range ms.springs {
		e.Potential += s.PotentialEnergy()
	}
	return e
}

func (ms *MoleculeSim) PrepareStep() {
	for _, b := range ms.balls {
		b.SaveHistory()
	}
}

// FindCollisions tests each ball's axis-aligned bounds against the
// four wall planes of the boundary; any overlap produces one collision
// per violated wall.
func (ms *MoleculeSim) FindCollisions(stepSize float64) []SimCollision {
	var found []SimCollision
	now := ms.Time()
	for i := range ms.balls {
		off := ms.ballOffset(i)
		bb := NewBBForCircle(Vector{ms.vars.Value(off), ms.vars.Value(off + 1)}, ms.radii[i])
		if bb.L < ms.walls.Left {
			found = append(found, &WallCollision{i, wallLeft, now})
		}
		if bb.R > ms.walls.Right {
			found = append(found, &WallCollision{i, wallRight, now})
		}
		if bb.B < ms.walls.Bottom {
			found = append(found, &WallCollision{i, wallBottom, now})
		}
		if bb.T > ms.walls.Top {
			found = append(found, &WallCollision{i, wallTop, now})
		}
	}
	return found
}

// HandleCollisions negates and scales the offending velocity component
// of each collision by the elasticity, counts one impulse per resolved
// collision, and bumps the energy sequence counters so consumers do
// not interpolate across the step.
func (ms *MoleculeSim) HandleCollisions(collisions []SimCollision) {
	handled := false
	for _, sc := range collisions {
		wc, ok := sc.(*WallCollision)
		if !ok {
			continue
		}
		off := ms.ballOffset(wc.ball)
		switch wc.side {
		case wallLeft, wallRight:
			ms.vars.SetValue(off+2, -ms.elasticity*ms.vars.Value(off+2))
		case wallBottom, wallTop:
			ms.vars.SetValue(off+3, -ms.elasticity*ms.vars.Value(off+3))
		}
		ms.impulses++
		handled = true
	}
	if handled {
		ms.vars.IncrSequence(1, 2, 3)
	}
}
