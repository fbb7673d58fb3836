package mech2d

// SimCollision is one detected collision or contact event, as produced
// by a CollisionSim's detector.
type SimCollision interface {
	CollisionTime() float64
	IsContact() bool
}

// Simulation is an ODESystem that also maintains derived state.
type Simulation interface {
	ODESystem

	// ModifyObjects recomputes derived state (body objects, energy
	// variables) from the current variable values.
	ModifyObjects()
}

// CollisionSim is a simulation with collision detection and
// resolution, driven by CollisionAdvance.
type CollisionSim interface {
	Simulation

	// PrepareStep records the pre-step transforms needed to tell a
	// fresh crossing from pre-existing penetration.
	PrepareStep()

	// FindCollisions scans the trial end-of-step state for collision
	// and contact events.
	FindCollisions(stepSize float64) []SimCollision

	// HandleCollisions resolves a batch of events, applying impulses
	// for collisions and bumping the energy sequence counters.
	HandleCollisions(collisions []SimCollision)
}

// AdvanceStrategy is the outer per-tick driver. Everything runs
// synchronously: a tick either completes and commits or fails
// atomically.
type AdvanceStrategy interface {
	Advance(stepSize float64) error
}

// SimpleAdvance integrates one step with no collision handling.
type SimpleAdvance struct {
	Sim    Simulation
	Solver Solver
}

func NewSimpleAdvance(sim Simulation, solver Solver) *SimpleAdvance {
	return &SimpleAdvance{Sim: sim, Solver: solver}
}

func (adv *SimpleAdvance) Advance(stepSize float64) error {
	if err := adv.Solver.Step(adv.Sim, stepSize); err != nil {
		return err
	}
	adv.Sim.ModifyObjects()
	return nil
}

// CollisionAdvance integrates one step, then detects and resolves any
// collisions found in the trial end-of-step state.
type CollisionAdvance struct {
	Sim    CollisionSim
	Solver Solver
}

func NewCollisionAdvance(sim CollisionSim, solver Solver) *CollisionAdvance {
	return &CollisionAdvance{Sim: sim, Solver: solver}
}

func (adv *CollisionAdvance) Advance(stepSize float64) error {
	adv.Sim.PrepareStep()
	if err := adv.Solver.Step(adv.Sim, stepSize); err != nil {
		return err
	}
	adv.Sim.ModifyObjects()
	if collisions := adv.Sim.FindCollisions(stepSize); len(collisions) > 0 {
		adv.Sim.HandleCollisions(collisions)
		adv.Sim.ModifyObjects()
	}
	return nil
}
