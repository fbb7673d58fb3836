package mech2d

// RungeKutta is the classical 4th-order fixed-step integrator.
//
// Scratch arrays are reused across calls and sized lazily so a step is
// allocation-free once warmed up.
type RungeKutta struct {
	inp, k1, k2, k3, k4 []float64
}

func NewRungeKutta() *RungeKutta {
	return &RungeKutta{}
}

func (rk *RungeKutta) resize(n int) {
	if len(rk.inp) >= n {
		return
	}
	rk.inp = make([]float64, n)
	rk.k1 = make([]float64, n)
	rk.k2 = make([]float64, n)
	rk.k3 = make([]float64, n)
	rk.k4 = make([]float64, n)
}

// Step evaluates the derivative four times (at t, twice at t+h/2, and
// at t+h), combines with weights 1,2,2,1 scaled by h/6, and commits
// the result as one continuous update. If Evaluate fails at any stage
// the step aborts and the state vector is left exactly as it was.
func (rk *RungeKutta) Step(sys ODESystem, stepSize float64) error {
	va := sys.Vars()
	vars := va.Values()
	n := len(vars)
	rk.resize(n)
	inp, k1, k2, k3, k4 := rk.inp[:n], rk.k1[:n], rk.k2[:n], rk.k3[:n], rk.k4[:n]

	zeroSlice(k1)
	if err := sys.Evaluate(vars, k1, stepSize); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		inp[i] = vars[i] + k1[i]*stepSize/2
	}
	zeroSlice(k2)
	if err := sys.Evaluate(inp, k2, stepSize); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		inp[i] = vars[i] + k2[i]*stepSize/2
	}
	zeroSlice(k3)
	if err := sys.Evaluate(inp, k3, stepSize); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		inp[i] = vars[i] + k3[i]*stepSize
	}
	zeroSlice(k4)
	if err := sys.Evaluate(inp, k4, stepSize); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		vars[i] += (k1[i] + 2*k2[i] + 2*k3[i] + k4[i]) * stepSize / 6
	}
	va.SetValuesContinuous(vars)
	return nil
}
