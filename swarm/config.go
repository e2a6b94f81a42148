package swarm

import (
	"fmt"
	"math/rand"
	"strings"

	pso "github.com/DirtySandals/PSO-Visualiser"
	topo "github.com/DirtySandals/PSO-Visualiser/topology"
)

// Algorithm selects the velocity/position update rule.
type Algorithm int

const (
	// Standard is the constriction-form update with a fixed inertia.
	Standard Algorithm = iota
	// InertiaWeight recomputes the inertia every iteration via a nonlinear
	// decreasing schedule.
	InertiaWeight
)

func (a Algorithm) String() string {
	switch a {
	case Standard:
		return "standard"
	case InertiaWeight:
		return "inertia"
	}
	return fmt.Sprintf("swarm.Algorithm(%d)", int(a))
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "standard", "constriction":
		return Standard, nil
	case "inertia", "inertiaweight":
		return InertiaWeight, nil
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", pso.ErrInvalidConfig, s)
}

// Config is the flat configuration surface for building an engine without
// assembling movers and topologies by hand.  Zero-valued schedule and
// acceleration fields select documented defaults.
type Config struct {
	// Pop is the particle count; it must be >= 1.
	Pop int
	// Topology selects the informant graph; the zero value is Global.
	Topology topo.Kind
	// Algorithm selects the update rule; the zero value is Standard.
	Algorithm Algorithm

	// Cognition and Social are the acceleration constants c1 and c2.  Zero
	// selects the defaults for the chosen algorithm (the constricted Clerc
	// constants for Standard, 2.05 for InertiaWeight).
	Cognition float64
	Social    float64

	// Inertia is the fixed weight for Standard; zero selects DefaultInertia.
	Inertia float64

	// WMax, WMin, Exponent, and MaxIter parameterize the InertiaWeight
	// schedule.  If WMax and WMin are both zero the 0.9/0.4 defaults are
	// used; a zero Exponent selects DefaultExponent.  MaxIter must be > 0
	// for InertiaWeight.
	WMax     float64
	WMin     float64
	Exponent float64
	MaxIter  int

	// VelScale scales random velocity initialization; zero selects the
	// default 0.5.
	VelScale float64
	// Zero forces zero initial velocities regardless of VelScale.
	Zero bool

	// Seed seeds the engine's random source; runs with equal seeds and
	// otherwise equal configuration produce identical generation sequences.
	Seed int64
}

// New validates cfg and builds an Iterator for obj over b.
func New(obj pso.Objectiver, b *pso.Bounds, cfg Config) (*Iterator, error) {
	if cfg.Pop < 1 {
		return nil, fmt.Errorf("%w: population size %v < 1", pso.ErrInvalidConfig, cfg.Pop)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	top, err := topo.New(cfg.Topology, cfg.Pop, rng)
	if err != nil {
		return nil, err
	}

	var mv Mover
	switch cfg.Algorithm {
	case Standard:
		cmv := NewConstrictionMover()
		if cfg.Inertia != 0 {
			cmv.Inertia = cfg.Inertia
		}
		if cfg.Cognition != 0 {
			cmv.Cognition = cfg.Cognition
		}
		if cfg.Social != 0 {
			cmv.Social = cfg.Social
		}
		mv = cmv
	case InertiaWeight:
		wmax, wmin := cfg.WMax, cfg.WMin
		if wmax == 0 && wmin == 0 {
			wmax, wmin = DefaultWMax, DefaultWMin
		}
		exp := cfg.Exponent
		if exp == 0 {
			exp = DefaultExponent
		}
		imv, err := NewInertiaMover(wmax, wmin, exp, cfg.MaxIter)
		if err != nil {
			return nil, err
		}
		if cfg.Cognition != 0 {
			imv.Cognition = cfg.Cognition
		}
		if cfg.Social != 0 {
			imv.Social = cfg.Social
		}
		mv = imv
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %v", pso.ErrInvalidConfig, cfg.Algorithm)
	}

	velscale := cfg.VelScale
	if velscale == 0 {
		velscale = 0.5
	}
	if cfg.Zero {
		velscale = 0
	}

	return NewIterator(obj, b, cfg.Pop, mv,
		Rng(rng),
		Topology(top),
		VelScale(velscale),
	)
}
