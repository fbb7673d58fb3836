package mech2d

// VarsList is an ordered sequence of named doubles holding a
// simulation's state: position/velocity pairs per body plus derived
// quantities like energy and elapsed time.
//
// Computed variables are recomputed every step from the others and are
// never integrated. Every variable carries a sequence counter that is
// bumped on discontinuous writes, so observers (a time graph, say)
// know not to interpolate across the change.
type VarsList struct {
	names    []string
	values   []float64
	computed []bool
	seqs     []uint
}

func NewVarsList(names ...string) *VarsList {
	vl := &VarsList{}
	vl.AddVariables(names...)
	return vl
}

// AddVariables appends variables and returns the index of the first
// one added.
func (vl *VarsList) AddVariables(names ...string) int {
	idx := len(vl.names)
	for _, n := range names {
		vl.names = append(vl.names, n)
		vl.values = append(vl.values, 0)
		vl.computed = append(vl.computed, false)
		vl.seqs = append(vl.seqs, 0)
	}
	return idx
}

func (vl *VarsList) NumVars() int {
	return len(vl.values)
}

func (vl *VarsList) Name(i int) string {
	return vl.names[i]
}

func (vl *VarsList) Value(i int) float64 {
	return vl.values[i]
}

// Values returns a copy of all variable values.
func (vl *VarsList) Values() []float64 {
	out := make([]float64, len(vl.values))
	copy(out, vl.values)
	return out
}

// SetValue writes a variable discontinuously, bumping its sequence
// counter.
func (vl *VarsList) SetValue(i int, v float64) {
	vl.values[i] = v
	vl.seqs[i]++
}

// SetValueContinuous writes a variable as part of a smooth update; the
// sequence counter is untouched.
func (vl *VarsList) SetValueContinuous(i int, v float64) {
	vl.values[i] = v
}

func (vl *VarsList) SetValues(vals []float64) {
	assert(len(vals) == len(vl.values), "wrong number of values")
	for i, v := range vals {
		vl.SetValue(i, v)
	}
}

func (vl *VarsList) SetValuesContinuous(vals []float64) {
	assert(len(vals) == len(vl.values), "wrong number of values")
	copy(vl.values, vals)
}

// MarkComputed tags variables as derived. They must never be treated
// as independent integration variables.
func (vl *VarsList) MarkComputed(indexes ...int) {
	for _, i := range indexes {
		vl.computed[i] = true
	}
}

func (vl *VarsList) IsComputed(i int) bool {
	return vl.computed[i]
}

func (vl *VarsList) Sequence(i int) uint {
	return vl.seqs[i]
}

// IncrSequence marks variables as having changed discontinuously
// without touching their values.
func (vl *VarsList) IncrSequence(indexes ...int) {
	for _, i := range indexes {
		vl.seqs[i]++
	}
}
