package swarm

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Diagnostics over the live population, useful for consumers that want to
// watch a swarm contract (or fail to): where its mass sits, how dispersed it
// is, and how fast it is still moving.

// CenterOfMass returns the mean position of the population.
func (pop Population) CenterOfMass() []float64 {
	com := make([]float64, len(pop[0].Pos))
	for _, p := range pop {
		floats.Add(com, p.Pos)
	}
	floats.Scale(1/float64(len(pop)), com)
	return com
}

// Spread returns the standard deviation of particle distances from the
// population's center of mass.  A single-particle swarm has zero spread.
func (pop Population) Spread() float64 {
	if len(pop) < 2 {
		return 0
	}
	com := pop.CenterOfMass()
	dists := make([]float64, len(pop))
	diff := make([]float64, len(com))
	for i, p := range pop {
		copy(diff, p.Pos)
		floats.Sub(diff, com)
		dists[i] = floats.Norm(diff, 2)
	}
	return stat.StdDev(dists, nil)
}

// MeanSpeed returns the mean euclidean velocity magnitude of the population.
func (pop Population) MeanSpeed() float64 {
	speeds := make([]float64, len(pop))
	for i, p := range pop {
		speeds[i] = floats.Norm(p.Vel, 2)
	}
	return stat.Mean(speeds, nil)
}
