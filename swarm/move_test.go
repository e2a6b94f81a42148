package swarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pso "github.com/DirtySandals/PSO-Visualiser"
)

func TestConstriction(t *testing.T) {
	k := Constriction(2.05, 2.05)
	assert.InDelta(t, DefaultInertia, k, 1e-12)
	assert.InDelta(t, DefaultCognition, k*2.05, 1e-12)
	assert.InDelta(t, DefaultSocial, k*2.05, 1e-12)
}

func TestInertiaMoverValidation(t *testing.T) {
	_, err := NewInertiaMover(0.4, 0.9, 0.1, 100)
	assert.ErrorIs(t, err, pso.ErrInvalidConfig)

	_, err = NewInertiaMover(0.9, 0.4, 0, 100)
	assert.ErrorIs(t, err, pso.ErrInvalidConfig)

	_, err = NewInertiaMover(0.9, 0.4, 0.1, 0)
	assert.ErrorIs(t, err, pso.ErrInvalidConfig)

	_, err = NewInertiaMover(0.9, 0.4, 0.1, -3)
	assert.ErrorIs(t, err, pso.ErrInvalidConfig)
}

func TestInertiaSchedule(t *testing.T) {
	const maxiter = 250
	mv, err := NewInertiaMover(0.9, 0.4, 0.1, maxiter)
	require.NoError(t, err)

	assert.InDelta(t, 0.9, mv.Weight(0), 1e-12)
	assert.InDelta(t, 0.4, mv.Weight(maxiter), 1e-12)

	prev := mv.Weight(0)
	for iter := 1; iter <= maxiter; iter++ {
		w := mv.Weight(iter)
		assert.LessOrEqual(t, w, prev+1e-12, "weight increased at iter %v", iter)
		assert.GreaterOrEqual(t, w, 0.4-1e-12)
		prev = w
	}

	// past the horizon the weight stays clamped at wMin, never extrapolated
	assert.Equal(t, 0.4, mv.Weight(maxiter+1))
	assert.Equal(t, 0.4, mv.Weight(10*maxiter))
}

// A zero-velocity particle sitting on both its personal and local best must
// not move under either update rule.
func TestMoversFixedPoint(t *testing.T) {
	pop := NewPopulation([]pso.Point{pso.NewPoint([]float64{1, -1}, 0)})
	pop[0].Update(0)
	lbest := []pso.Point{pop[0].Best}

	imv, err := NewInertiaMover(0.9, 0.4, 0.1, 10)
	require.NoError(t, err)

	for _, mv := range []Mover{NewConstrictionMover(), imv} {
		vel, pos := mv.Move(pop, lbest, 0, newTestRng())
		assert.Equal(t, []float64{0, 0}, vel[0])
		assert.Equal(t, []float64{1, -1}, pos[0])
		// staged updates never touch the particle itself
		assert.Equal(t, []float64{1, -1}, pop[0].Pos)
	}
}
