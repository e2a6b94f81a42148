// Package swarm implements the particle swarm optimization engine: particle
// and population state, the velocity/position update rules (Movers), and a
// pull-based Iterator that advances the swarm one generation per Next call.
package swarm

import (
	"math"
	"math/rand"

	pso "github.com/DirtySandals/PSO-Visualiser"
)

// Particle is one candidate solution: a current position and velocity plus
// the best position/value the particle has ever observed.  Particles are
// mutated in place by the engine every iteration and are never shared
// between engine instances.
type Particle struct {
	Id  int
	Pos []float64
	Vel []float64
	// Val is the objective value at Pos for the most recent evaluation.
	Val float64
	// Best is the particle's personal best.  Its value starts at +infinity
	// until the first evaluation commits.
	Best pso.Point
}

// Update commits a new objective value for the particle's current position
// and improves the personal best on strict decrease.
func (p *Particle) Update(val float64) {
	p.Val = val
	if val < p.Best.Val {
		p.Best = pso.NewPoint(p.Pos, val)
	}
}

type Population []*Particle

// NewPopulation initializes a population of particles at the given points
// with zero velocities.
func NewPopulation(points []pso.Point) Population {
	pop := make(Population, len(points))
	for i, pt := range points {
		pop[i] = &Particle{
			Id:   i,
			Pos:  pt.Pos(),
			Vel:  make([]float64, pt.Len()),
			Val:  math.Inf(1),
			Best: pso.NewPoint(pt.Pos(), math.Inf(1)),
		}
	}
	return pop
}

// NewPopulationRand creates n randomly positioned particles uniformly
// distributed in init - usually the full search box b, but possibly a
// sub-region of it when a problem calls for off-center starts.  Each
// velocity component is initialized to velscale*(u-x) where u is a uniform
// draw inside b and x is the particle's position; velscale 0 gives
// stationary particles.
func NewPopulationRand(n int, init, b *pso.Bounds, velscale float64, rng *rand.Rand) Population {
	pop := NewPopulation(init.RandPop(n, rng))
	if velscale == 0 {
		return pop
	}
	for _, p := range pop {
		u := b.RandPoint(rng)
		for d := range p.Vel {
			p.Vel[d] = velscale * (u[d] - p.Pos[d])
		}
	}
	return pop
}

// Best returns the best personal-best point across the population.  Because
// personal bests never regress, this is also the swarm's best-to-date.
func (pop Population) Best() pso.Point {
	best := pop[0].Best
	for _, p := range pop[1:] {
		if p.Best.Val < best.Val {
			best = p.Best
		}
	}
	return best
}

// Points returns an independent snapshot of every particle's current
// position and objective value.
func (pop Population) Points() []pso.Point {
	points := make([]pso.Point, len(pop))
	for i, p := range pop {
		points[i] = pso.NewPoint(p.Pos, p.Val)
	}
	return points
}
