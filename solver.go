package mech2d

// ODESystem is a simulation described by a first-order ODE over the
// variables in its VarsList.
type ODESystem interface {
	Vars() *VarsList

	// Evaluate writes the state derivative for vars into change, which
	// the caller has zeroed. timeStep is the nominal step size, used by
	// contact heuristics; solvers pass the same value at every stage.
	// A non-nil error signals an unrecoverable numerical condition and
	// aborts the whole step.
	Evaluate(vars, change []float64, timeStep float64) error
}

// Solver advances an ODESystem by one fixed step. A step either
// commits completely or, when Evaluate fails at any stage, returns the
// error with the state untouched.
type Solver interface {
	Step(sys ODESystem, stepSize float64) error
}

func zeroSlice(s []float64) {
	for i := range s {
		s[i] = 0
	}
}

// ModifiedEuler is the 2nd-order midpoint method. Cheap, mostly useful
// for comparing against RungeKutta in teaching scenarios.
type ModifiedEuler struct {
	inp, k1, k2 []float64
}

func NewModifiedEuler() *ModifiedEuler {
	return &ModifiedEuler{}
}

func (me *ModifiedEuler) Step(sys ODESystem, stepSize float64) error {
	va := sys.Vars()
	vars := va.Values()
	n := len(vars)
	if len(me.inp) < n {
		me.inp = make([]float64, n)
		me.k1 = make([]float64, n)
		me.k2 = make([]float64, n)
	}
	inp, k1, k2 := me.inp[:n], me.k1[:n], me.k2[:n]

	zeroSlice(k1)
	if err := sys.Evaluate(vars, k1, stepSize); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		inp[i] = vars[i] + k1[i]*stepSize
	}
	zeroSlice(k2)
	if err := sys.Evaluate(inp, k2, stepSize); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		vars[i] += (k1[i] + k2[i]) * stepSize / 2
	}
	va.SetValuesContinuous(vars)
	return nil
}
