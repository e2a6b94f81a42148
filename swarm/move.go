package swarm

import (
	"fmt"
	"math"
	"math/rand"

	pso "github.com/DirtySandals/PSO-Visualiser"
)

// These params are calculated using a constriction factor originally
// described in:
//
//	Clerc and M.  “The swarm and the queen: towards a deterministic and
//	adaptive particle swarm optimization” Proc. 1999 Congress on
//	Evolutionary Computation, pp. 1951-1957
//
// The cognition and social parameters correspond to c1 and c2 values of 2.05
// that have been multiplied by their constriction coeffient - i.e.
// DefaultSocial = Constriction(2.05, 2.05)*2.05.  DefaultInertia is set equal
// to the constriction coefficient.
const (
	DefaultCognition = 1.496179765663133
	DefaultSocial    = 1.496179765663133
	DefaultInertia   = 0.7298437881283576
)

// Defaults for the nonlinear inertia-weight schedule, following Eberhart and
// Shi's commonly used 0.9 -> 0.4 range.
const (
	DefaultWMax     = 0.9
	DefaultWMin     = 0.4
	DefaultExponent = 0.1
)

// Constriction calculates the constriction coefficient for the given c1 and
// c2 for the particle velocity equation:
//
//	v_next = k(v_curr + c1*rand*(p_personal-x) + c2*rand*(p_local-x))
//
//	or
//
//	v_next = w*v_curr + b1*rand*(p_personal-x) + b2*rand*(p_local-x)
//
//	(with constriction coefficient multiplied through).
//
// c1+c2 should usually be greater than (but close to) 4.  'w = k' is often
// referred to as the inertia in the traditional swarm equation.
func Constriction(c1, c2 float64) float64 {
	phi := c1 + c2
	return 2 / math.Abs(2-phi-math.Sqrt(phi*phi-4*phi))
}

// Mover computes the staged velocity/position update for an entire
// population.  lbest[i] is the best point among particle i's informants.
// Movers never mutate the population - the Iterator confines the staged
// positions to bounds, evaluates them, and commits only if every evaluation
// succeeds.
type Mover interface {
	Move(pop Population, lbest []pso.Point, iter int, rng *rand.Rand) (vel, pos [][]float64)
}

func stage(pop Population, lbest []pso.Point, w, cognition, social float64, rng *rand.Rand) (vel, pos [][]float64) {
	vel = make([][]float64, len(pop))
	pos = make([][]float64, len(pop))
	for i, p := range pop {
		v := make([]float64, len(p.Vel))
		x := make([]float64, len(p.Pos))
		for d := range v {
			// random numbers r1 and r2 MUST go inside this loop and be
			// generated uniquely for each dimension of p's velocity.
			r1 := rng.Float64()
			r2 := rng.Float64()
			v[d] = w*p.Vel[d] +
				cognition*r1*(p.Best.At(d)-p.Pos[d]) +
				social*r2*(lbest[i].At(d)-p.Pos[d])
			x[d] = p.Pos[d] + v[d]
		}
		vel[i] = v
		pos[i] = x
	}
	return vel, pos
}

// ConstrictionMover is the standard PSO update with a fixed inertia
// coefficient.  The zero value is not useful; NewConstrictionMover fills in
// the Clerc constants.
type ConstrictionMover struct {
	Inertia   float64
	Cognition float64
	Social    float64
}

func NewConstrictionMover() *ConstrictionMover {
	return &ConstrictionMover{
		Inertia:   DefaultInertia,
		Cognition: DefaultCognition,
		Social:    DefaultSocial,
	}
}

func (mv *ConstrictionMover) Move(pop Population, lbest []pso.Point, iter int, rng *rand.Rand) (vel, pos [][]float64) {
	return stage(pop, lbest, mv.Inertia, mv.Cognition, mv.Social, rng)
}

// InertiaMover is the inertia-weight PSO update.  The inertia is recomputed
// every iteration via a nonlinear decreasing schedule
//
//	w(t) = WMax - (WMax-WMin) * (t/MaxIter)^Exponent
//
// falling from WMax at t=0 to WMin at t=MaxIter.  Past MaxIter the weight
// stays clamped at WMin rather than extrapolating.
type InertiaMover struct {
	Cognition float64
	Social    float64
	WMax      float64
	WMin      float64
	Exponent  float64
	MaxIter   int
}

// NewInertiaMover validates the schedule parameters and returns a mover with
// c1 = c2 = 2.05 (the raw acceleration constants, no constriction applied).
// It returns ErrInvalidConfig if wmin > wmax, exponent <= 0, or maxiter <= 0.
func NewInertiaMover(wmax, wmin, exponent float64, maxiter int) (*InertiaMover, error) {
	if wmin > wmax {
		return nil, fmt.Errorf("%w: wMin %v > wMax %v", pso.ErrInvalidConfig, wmin, wmax)
	} else if exponent <= 0 {
		return nil, fmt.Errorf("%w: nonlinearity exponent %v <= 0", pso.ErrInvalidConfig, exponent)
	} else if maxiter <= 0 {
		return nil, fmt.Errorf("%w: maxIterations %v <= 0", pso.ErrInvalidConfig, maxiter)
	}
	return &InertiaMover{
		Cognition: 2.05,
		Social:    2.05,
		WMax:      wmax,
		WMin:      wmin,
		Exponent:  exponent,
		MaxIter:   maxiter,
	}, nil
}

// Weight returns the inertia weight for iteration iter.
func (mv *InertiaMover) Weight(iter int) float64 {
	if iter >= mv.MaxIter {
		return mv.WMin
	}
	frac := float64(iter) / float64(mv.MaxIter)
	return mv.WMax - (mv.WMax-mv.WMin)*math.Pow(frac, mv.Exponent)
}

func (mv *InertiaMover) Move(pop Population, lbest []pso.Point, iter int, rng *rand.Rand) (vel, pos [][]float64) {
	return stage(pop, lbest, mv.Weight(iter), mv.Cognition, mv.Social, rng)
}
