package mech2d

import "fmt"

// Variable layout: [time, KE, PE, TE] then six per body.
const (
	worldBaseVars = 4
	bodyVarCount  = 6
)

const (
	offX = iota
	offY
	offAngle
	offVX
	offVY
	offW
)

// World is a rigid-body simulation: a set of bodies with edge
// geometry, springs and joints, integrated as one ODE with collision
// detection over all edge pairs. It owns the state vector and the
// vertex id counter.
//
// Single-threaded by design: the state vector is mutated only inside
// the world's own step call.
type World struct {
	vars    *VarsList
	bodies  []*Body
	scrim   *Body
	joints  []*Joint
	springs []*Spring

	gravity Vector
	damping float64
	distTol float64

	nextVertexID int
	impulses     int

	solver  Solver
	advance *CollisionAdvance

	// per-body force/torque scratch, reused across evaluations
	forces  []Vector
	torques []float64
}

func NewWorld() *World {
	vars := NewVarsList("time", "kinetic energy", "potential energy", "total energy")
	vars.MarkComputed(1, 2, 3)
	scrim := newStaticBody()
	scrim.SetName("scrim")
	w := &World{
		vars:    vars,
		scrim:   scrim,
		gravity: Vector{0, -9.8},
		distTol: 0.01,
		solver:  NewRungeKutta(),
	}
	w.advance = NewCollisionAdvance(w, w.solver)
	return w
}

// Scrim returns the shared immovable background body, used as an
// anchor for joints and wall geometry.
func (w *World) Scrim() *Body {
	return w.scrim
}

func (w *World) Gravity() Vector {
	return w.gravity
}

func (w *World) SetGravity(g Vector) {
	assert(finiteVec(g), "gravity must be finite")
	w.gravity = g
}

func (w *World) Damping() float64 {
	return w.damping
}

func (w *World) SetDamping(d float64) {
	assert(d >= 0 && finite(d), "damping must be non-negative and finite")
	w.damping = d
}

func (w *World) DistanceTolerance() float64 {
	return w.distTol
}

func (w *World) SetDistanceTolerance(tol float64) {
	assert(tol > 0 && finite(tol), "distance tolerance must be positive and finite")
	w.distTol = tol
}

func (w *World) SetSolver(s Solver) {
	w.solver = s
	w.advance.Solver = s
}

// NewVertex creates a vertex with a world-unique debug id.
func (w *World) NewVertex(loc Vector) *Vertex {
	w.nextVertexID++
	return &Vertex{loc: loc, id: w.nextVertexID}
}

// AddBody registers a body and appends its six variables to the state
// vector, initialized from the body's current state.
func (w *World) AddBody(body *Body) *Body {
	assert(!body.IsStatic(), "cannot add a static body")
	for _, b := range w.bodies {
		assert(b != body, "body already added")
	}
	if body.name == "" {
		body.name = fmt.Sprintf("body%d", len(w.bodies)+1)
	}
	w.bodies = append(w.bodies, body)
	w.vars.AddVariables(
		body.name+" x", body.name+" y", body.name+" angle",
		body.name+" vx", body.name+" vy", body.name+" angular velocity",
	)
	w.forces = append(w.forces, Vector{})
	w.torques = append(w.torques, 0)
	w.syncBody(len(w.bodies) - 1)
	return body
}

func (w *World) Bodies() []*Body {
	return w.bodies
}

func (w *World) AddJoint(j *Joint) {
	w.joints = append(w.joints, j)
}

func (w *World) Joints() []*Joint {
	return w.joints
}

func (w *World) AddSpring(s *Spring) *Spring {
	w.springs = append(w.springs, s)
	return s
}

func (w *World) Springs() []*Spring {
	return w.springs
}

func (w *World) Vars() *VarsList {
	return w.vars
}

func (w *World) Time() float64 {
	return w.vars.Value(0)
}

// Impulses returns the count of impulses applied so far, for external
// instrumentation.
func (w *World) Impulses() int {
	return w.impulses
}

func (w *World) bodyOffset(i int) int {
	return worldBaseVars + bodyVarCount*i
}

func (w *World) syncBody(i int) {
	b := w.bodies[i]
	off := w.bodyOffset(i)
	w.vars.SetValue(off+offX, b.p.X)
	w.vars.SetValue(off+offY, b.p.Y)
	w.vars.SetValue(off+offAngle, b.a)
	w.vars.SetValue(off+offVX, b.v.X)
	w.vars.SetValue(off+offVY, b.v.Y)
	w.vars.SetValue(off+offW, b.w)
}

// SyncFromBodies writes every body's state into the variables as a
// discontinuous change. Call after moving bodies directly during scene
// setup (joint alignment does this automatically).
func (w *World) SyncFromBodies() {
	for i := range w.bodies {
		w.syncBody(i)
	}
}

// moveBodies sets body state from a variable slice, updating the
// current transforms but not the saved history.
func (w *World) moveBodies(vars []float64) {
	for i, b := range w.bodies {
		off := w.bodyOffset(i)
		b.p = Vector{vars[off+offX], vars[off+offY]}
		b.a = vars[off+offAngle]
		b.v = Vector{vars[off+offVX], vars[off+offVY]}
		b.w = vars[off+offW]
		b.updateTransform()
	}
}

func (w *World) Evaluate(vars, change []float64, timeStep float64) error {
	for i, v := range vars {
		if !w.vars.IsComputed(i) && !finite(v) {
			return fmt.Errorf("variable %q is not finite", w.vars.Name(i))
		}
	}
	change[0] = 1 // time

	w.moveBodies(vars)
	for i, b := range w.bodies {
		w.forces[i] = w.gravity.Mult(b.m).Add(b.v.Mult(-w.damping))
		w.torques[i] = 0
	}
	for _, s := range w.springs {
		f2 := s.Force()
		w.applyForce(s.body2, s.Attach2World(), f2)
		w.applyForce(s.body1, s.Attach1World(), f2.Neg())
	}
	for i, b := range w.bodies {
		off := w.bodyOffset(i)
		change[off+offX] = vars[off+offVX]
		change[off+offY] = vars[off+offVY]
		change[off+offAngle] = vars[off+offW]
		change[off+offVX] = w.forces[i].X * b.mInv
		change[off+offVY] = w.forces[i].Y * b.mInv
		change[off+offW] = w.torques[i] * b.iInv
	}
	return nil
}

// applyForce accumulates a world force applied at a world point into
// the per-body scratch. Forces on the scrim are dropped.
func (w *World) applyForce(body *Body, at, f Vector) {
	for i, b := range w.bodies {
		if b == body {
			w.forces[i] = w.forces[i].Add(f)
			w.torques[i] += at.Sub(b.worldCoG()).Cross(f)
			return
		}
	}
}

func (w *World) ModifyObjects() {
	w.moveBodies(w.vars.values)
	e := w.EnergyInfo()
	w.vars.SetValueContinuous(1, e.Kinetic)
	w.vars.SetValueContinuous(2, e.Potential)
	w.vars.SetValueContinuous(3, e.Total())
}

func (w *World) EnergyInfo() EnergyInfo {
	var e EnergyInfo
	for _, b := range w.bodies {
		e.Kinetic += b.KineticEnergy()
		e.Potential += -b.m * w.gravity.Dot(b.worldCoG())
	}
	for _, s := range w.springs {
		e.Potential += s.PotentialEnergy()
	}
	return e
}

func (w *World) PrepareStep() {
	w.scrim.SaveHistory()
	for _, b := range w.bodies {
		b.SaveHistory()
	}
}

// jointed reports whether two bodies are tied by a joint; jointed
// pairs do not collide with each other.
func (w *World) jointed(a, b *Body) bool {
	for _, j := range w.joints {
		if j.Connects(a, b) {
			return true
		}
	}
	return false
}

// FindCollisions scans every edge pair of every body pair (including
// each body against the scrim) and returns the detected events,
// refined by an ImproveAccuracy pass.
func (w *World) FindCollisions(stepSize float64) []SimCollision {
	var found []*Collision
	now := w.Time()
	for i, a := range w.bodies {
		others := append([]*Body{w.scrim}, w.bodies[i+1:]...)
		for _, b := range others {
			if w.jointed(a, b) || len(b.edges) == 0 {
				continue
			}
			if !a.BoundsWorld().Grow(w.distTol).Intersects(b.BoundsWorld()) {
				continue
			}
			for _, ea := range a.edges {
				for _, eb := range b.edges {
					CollideEdges(ea, eb, now, w.distTol, &found)
				}
			}
		}
	}
	out := make([]SimCollision, 0, len(found))
	for _, c := range found {
		c.ImproveAccuracy()
		out = append(out, c)
	}
	return out
}

// HandleCollisions applies restitution impulses for the collision
// records in the batch (contacts are left to the contact force pass),
// writes the changed velocities back discontinuously, and bumps the
// energy sequence counters.
func (w *World) HandleCollisions(collisions []SimCollision) {
	hit := make(map[*Body]bool)
	for _, sc := range collisions {
		c, ok := sc.(*Collision)
		if !ok || c.Contact {
			continue
		}
		if resolveCollision(c) {
			w.impulses++
			hit[c.EdgeA.Body()] = true
			hit[c.EdgeB.Body()] = true
		}
	}
	if len(hit) == 0 {
		return
	}
	for i, b := range w.bodies {
		if !hit[b] {
			continue
		}
		off := w.bodyOffset(i)
		w.vars.SetValue(off+offVX, b.v.X)
		w.vars.SetValue(off+offVY, b.v.Y)
		w.vars.SetValue(off+offW, b.w)
	}
	w.vars.IncrSequence(1, 2, 3)
}

// Step advances the world by one fixed step: integrate, detect,
// resolve. Returns the propagated error, with state untouched, if the
// integration fails.
func (w *World) Step(stepSize float64) error {
	return w.advance.Advance(stepSize)
}
