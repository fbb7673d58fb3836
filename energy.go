package mech2d

// EnergyInfo reports a simulation's current energy bookkeeping.
type EnergyInfo struct {
	Potential float64
	Kinetic   float64
}

func (e EnergyInfo) Total() float64 {
	return e.Potential + e.Kinetic
}
