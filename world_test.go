package mech2d

import (
	"math"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldAddBody(t *testing.T) {
	w := NewWorld()
	tassert.Panics(t, func() { w.AddBody(newStaticBody()) })

	body := NewBody(1, 1)
	body.SetPosition(Vector{1, 2})
	body.SetVelocity(Vector{3, 4})
	w.AddBody(body)
	tassert.Panics(t, func() { w.AddBody(body) })

	require.Equal(t, worldBaseVars+bodyVarCount, w.Vars().NumVars())
	tassert.Equal(t, "body1 x", w.Vars().Name(worldBaseVars+offX))
	tassert.Equal(t, 1.0, w.Vars().Value(worldBaseVars+offX))
	tassert.Equal(t, 2.0, w.Vars().Value(worldBaseVars+offY))
	tassert.Equal(t, 3.0, w.Vars().Value(worldBaseVars+offVX))
	tassert.Equal(t, 4.0, w.Vars().Value(worldBaseVars+offVY))
}

func TestWorldFreeFall(t *testing.T) {
	w := NewWorld()
	body := NewBody(1, 1)
	body.SetPosition(Vector{0, 10})
	w.AddBody(body)

	// y(t) = 10 - 4.9 t^2 is exact for a 4th-order method
	for i := 0; i < 40; i++ {
		require.NoError(t, w.Step(0.025))
	}
	tassert.InDelta(t, 1.0, w.Time(), 1e-12)
	tassert.InDelta(t, 10-4.9, body.Position().Y, 1e-9)
	tassert.InDelta(t, -9.8, body.Velocity().Y, 1e-9)
}

func TestWorldSpringForceAndTorque(t *testing.T) {
	w := NewWorld()
	w.SetGravity(Vector{})
	body := NewBody(1, 1)
	w.AddBody(body)
	// anchor above and to the side so the off-center attachment twists
	w.AddSpring(NewSpring(w.Scrim(), Vector{0, 2}, body, Vector{1, 0}, 0, 1))

	vars := w.Vars().Values()
	change := make([]float64, len(vars))
	require.NoError(t, w.Evaluate(vars, change, 0.025))

	// pull of a zero-rest-length unit spring from (1,0) toward (0,2)
	tassert.InDelta(t, -1.0, change[worldBaseVars+offVX], standardTol)
	tassert.InDelta(t, 2.0, change[worldBaseVars+offVY], standardTol)
	tassert.InDelta(t, 2.0, change[worldBaseVars+offW], standardTol)
}

func TestWorldDamping(t *testing.T) {
	w := NewWorld()
	w.SetGravity(Vector{})
	w.SetDamping(0.5)
	body := NewBody(2, 1)
	body.SetVelocity(Vector{4, 0})
	w.AddBody(body)

	vars := w.Vars().Values()
	change := make([]float64, len(vars))
	require.NoError(t, w.Evaluate(vars, change, 0.025))
	tassert.InDelta(t, -0.5*4/2, change[worldBaseVars+offVX], standardTol)
}

// headOnWorld builds two balls approaching along the x axis, optionally
// tied by a rigid attachment that leaves both in place.
func headOnWorld(t *testing.T, jointed bool) (*World, *Body, *Body) {
	t.Helper()
	w := NewWorld()
	w.SetGravity(Vector{})
	b1 := NewBody(1, 1)
	NewCircularEdge(b1, Vector{}, 0.5, true)
	b1.SetPosition(Vector{-0.65, 0})
	b1.SetVelocity(Vector{1, 0})
	w.AddBody(b1)
	b2 := NewBody(0.5, 1)
	NewCircularEdge(b2, Vector{}, 0.4, true)
	b2.SetPosition(Vector{0.65, 0})
	b2.SetVelocity(Vector{-1, 0})
	w.AddBody(b2)
	if jointed {
		// attach points already coincide, so the snap moves nothing
		AttachRigidBody(w, b1, Vector{1.3, 0}, b2, Vector{0, 0})
		require.Equal(t, Vector{0.65, 0}, b2.Position())
	}
	return w, b1, b2
}

func TestWorldHeadOnCollision(t *testing.T) {
	w, b1, b2 := headOnWorld(t, false)

	for i := 0; i < 20 && w.Impulses() == 0; i++ {
		require.NoError(t, w.Step(0.025))
	}
	require.Equal(t, 1, w.Impulses())

	// elastic two-mass solution for masses 1 and 0.5 closing at 2
	tassert.InDelta(t, -1.0/3.0, b1.Velocity().X, 1e-9)
	tassert.InDelta(t, 5.0/3.0, b2.Velocity().X, 1e-9)
	tassert.InDelta(t, 0.5, 1*b1.Velocity().X+0.5*b2.Velocity().X, 1e-9)

	// the impulse is visible in the state vector too
	tassert.Equal(t, b1.Velocity().X, w.Vars().Value(worldBaseVars+offVX))
}

func TestWorldJointedPairDoesNotCollide(t *testing.T) {
	w, _, _ := headOnWorld(t, true)

	for i := 0; i < 30; i++ {
		require.NoError(t, w.Step(0.025))
	}
	tassert.Equal(t, 0, w.Impulses())
}

func TestWorldCollisionBumpsEnergySequence(t *testing.T) {
	w, _, _ := headOnWorld(t, false)
	seq := w.Vars().Sequence(1)

	for i := 0; i < 20 && w.Impulses() == 0; i++ {
		require.NoError(t, w.Step(0.025))
	}
	require.Equal(t, 1, w.Impulses())
	tassert.Greater(t, w.Vars().Sequence(1), seq)
}

func TestWorldBallFloorBounce(t *testing.T) {
	w := NewWorld()
	NewStraightEdge(w.Scrim(), w.NewVertex(Vector{-5, 0}), w.NewVertex(Vector{5, 0}), true)
	ball := NewBody(1, 1)
	NewCircularEdge(ball, Vector{}, 0.5, true)
	ball.SetPosition(Vector{0, 1})
	w.AddBody(ball)

	for i := 0; i < 40 && w.Impulses() == 0; i++ {
		require.NoError(t, w.Step(0.025))
	}
	require.Equal(t, 1, w.Impulses())
	tassert.Greater(t, ball.Velocity().Y, 0.0)
}

func TestWorldElasticityProduct(t *testing.T) {
	w, b1, b2 := headOnWorld(t, false)
	b1.SetElasticity(0.5)
	b2.SetElasticity(0.5)

	for i := 0; i < 20 && w.Impulses() == 0; i++ {
		require.NoError(t, w.Step(0.025))
	}
	require.Equal(t, 1, w.Impulses())

	// e = 0.25, so the pair separates at a quarter of the closing speed
	separation := b2.Velocity().X - b1.Velocity().X
	tassert.InDelta(t, 0.5, separation, 1e-9)
	// momentum is conserved regardless of restitution
	tassert.InDelta(t, 0.5, 1*b1.Velocity().X+0.5*b2.Velocity().X, 1e-9)
}

func TestWorldStepRejectsNonFinite(t *testing.T) {
	w := NewWorld()
	body := NewBody(1, 1)
	w.AddBody(body)
	w.Vars().SetValue(worldBaseVars+offX, math.NaN())

	err := w.Step(0.025)
	require.Error(t, err)
	tassert.Contains(t, err.Error(), "not finite")
}

func TestWorldEnergyVariables(t *testing.T) {
	w := NewWorld()
	body := NewBody(2, 1)
	body.SetPosition(Vector{0, 3})
	body.SetVelocity(Vector{1, 0})
	w.AddBody(body)
	w.ModifyObjects()

	// KE = 0.5*2*1, PE = -m g . p = 2*9.8*3
	tassert.InDelta(t, 1.0, w.Vars().Value(1), standardTol)
	tassert.InDelta(t, 2*9.8*3, w.Vars().Value(2), 1e-9)
	tassert.InDelta(t, w.Vars().Value(1)+w.Vars().Value(2), w.Vars().Value(3), 1e-9)
}

func TestWorldSetSolver(t *testing.T) {
	w := NewWorld()
	body := NewBody(1, 1)
	body.SetPosition(Vector{0, 10})
	w.AddBody(body)

	w.SetSolver(NewModifiedEuler())
	for i := 0; i < 40; i++ {
		require.NoError(t, w.Step(0.025))
	}
	// the midpoint method is still exact for constant acceleration
	tassert.InDelta(t, 10-4.9, body.Position().Y, 1e-9)
}
