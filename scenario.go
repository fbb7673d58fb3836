package mech2d

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a data description of a molecule simulation setup,
// loadable from YAML. Missing fields keep the defaults from
// DefaultScenario.
type Scenario struct {
	Name        string      `yaml:"name"`
	Gravity     float64     `yaml:"gravity"`
	Elasticity  float64     `yaml:"elasticity"`
	Damping     float64     `yaml:"damping"`
	DistanceTol float64     `yaml:"distance_tolerance"`
	TimeStep    float64     `yaml:"time_step"`
	Solver      string      `yaml:"solver"`
	Walls       WallsDef    `yaml:"walls"`
	Balls       []BallDef   `yaml:"balls"`
	Springs     []SpringDef `yaml:"springs"`
}

type WallsDef struct {
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
}

type BallDef struct {
	Mass     float64    `yaml:"mass"`
	Radius   float64    `yaml:"radius"`
	Position [2]float64 `yaml:"position"`
	Velocity [2]float64 `yaml:"velocity"`
}

// SpringDef connects balls A and B by index into the balls list.
type SpringDef struct {
	A          int     `yaml:"a"`
	B          int     `yaml:"b"`
	RestLength float64 `yaml:"rest_length"`
	Stiffness  float64 `yaml:"stiffness"`
	Damping    float64 `yaml:"damping"`
}

func DefaultScenario() Scenario {
	return Scenario{
		Gravity:     9.8,
		Elasticity:  1,
		DistanceTol: 0.01,
		TimeStep:    0.025,
		Solver:      "runge-kutta",
		Walls:       WallsDef{Left: -3, Bottom: -3, Right: 3, Top: 3},
	}
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses a YAML scenario document over the defaults and
// validates it.
func ParseScenario(data []byte) (*Scenario, error) {
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	if sc.Walls.Right <= sc.Walls.Left || sc.Walls.Top <= sc.Walls.Bottom {
		return fmt.Errorf("scenario %q: walls are inside out", sc.Name)
	}
	if sc.Elasticity < 0 || sc.Elasticity > 1 {
		return fmt.Errorf("scenario %q: elasticity %v outside [0,1]", sc.Name, sc.Elasticity)
	}
	if sc.TimeStep <= 0 {
		return fmt.Errorf("scenario %q: time step %v must be positive", sc.Name, sc.TimeStep)
	}
	if sc.DistanceTol <= 0 {
		return fmt.Errorf("scenario %q: distance tolerance %v must be positive", sc.Name, sc.DistanceTol)
	}
	if sc.Damping < 0 {
		return fmt.Errorf("scenario %q: damping %v must be non-negative", sc.Name, sc.Damping)
	}
	switch sc.Solver {
	case "runge-kutta", "modified-euler":
	default:
		return fmt.Errorf("scenario %q: unknown solver %q", sc.Name, sc.Solver)
	}
	for i, b := range sc.Balls {
		if b.Mass <= 0 {
			return fmt.Errorf("scenario %q: ball %d mass %v must be positive", sc.Name, i, b.Mass)
		}
		if b.Radius <= 0 {
			return fmt.Errorf("scenario %q: ball %d radius %v must be positive", sc.Name, i, b.Radius)
		}
	}
	for i, s := range sc.Springs {
		if s.A < 0 || s.A >= len(sc.Balls) || s.B < 0 || s.B >= len(sc.Balls) {
			return fmt.Errorf("scenario %q: spring %d references missing ball", sc.Name, i)
		}
		if s.A == s.B {
			return fmt.Errorf("scenario %q: spring %d connects ball %d to itself", sc.Name, i, s.A)
		}
		if s.Stiffness < 0 || s.RestLength < 0 || s.Damping < 0 {
			return fmt.Errorf("scenario %q: spring %d has negative parameters", sc.Name, i)
		}
	}
	return nil
}

// Build constructs the molecule simulation described by the scenario.
// The scenario must be valid; Build panics on invariant violations the
// way direct setup calls do.
func (sc *Scenario) Build() *MoleculeSim {
	ms := NewMoleculeSim(Walls{
		Left:   sc.Walls.Left,
		Bottom: sc.Walls.Bottom,
		Right:  sc.Walls.Right,
		Top:    sc.Walls.Top,
	})
	ms.SetGravity(sc.Gravity)
	ms.SetElasticity(sc.Elasticity)
	ms.SetDamping(sc.Damping)
	ms.SetDistanceTolerance(sc.DistanceTol)
	for _, b := range sc.Balls {
		ms.AddBall(b.Mass, b.Radius,
			Vector{b.Position[0], b.Position[1]},
			Vector{b.Velocity[0], b.Velocity[1]})
	}
	for _, s := range sc.Springs {
		ms.AddSpring(s.A, s.B, s.RestLength, s.Stiffness, s.Damping)
	}
	return ms
}

// NewSolver constructs the integrator the scenario names.
func (sc *Scenario) NewSolver() Solver {
	if sc.Solver == "modified-euler" {
		return NewModifiedEuler()
	}
	return NewRungeKutta()
}
