package swarm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pso "github.com/DirtySandals/PSO-Visualiser"
	topo "github.com/DirtySandals/PSO-Visualiser/topology"
)

func TestConfigValidation(t *testing.T) {
	b := testBounds(t)
	obj := pso.Func(sphere)

	_, err := New(obj, b, Config{Pop: 0})
	assert.ErrorIs(t, err, pso.ErrInvalidConfig)

	_, err = New(obj, b, Config{Pop: 10, Algorithm: Algorithm(99), MaxIter: 100})
	assert.ErrorIs(t, err, pso.ErrInvalidConfig)

	_, err = New(obj, b, Config{Pop: 10, Algorithm: InertiaWeight, MaxIter: 0})
	assert.ErrorIs(t, err, pso.ErrInvalidConfig)

	_, err = New(obj, b, Config{
		Pop: 10, Algorithm: InertiaWeight, MaxIter: 100,
		WMax: 0.3, WMin: 0.5,
	})
	assert.ErrorIs(t, err, pso.ErrInvalidConfig)

	_, err = New(obj, b, Config{Pop: 10, Topology: topo.Kind(99)})
	assert.ErrorIs(t, err, pso.ErrInvalidTopology)
}

func TestConfigDefaults(t *testing.T) {
	it, err := New(pso.Func(sphere), testBounds(t), Config{Pop: 5})
	require.NoError(t, err)

	mv, ok := it.Mover.(*ConstrictionMover)
	require.True(t, ok, "zero-value algorithm should select the standard update")
	assert.Equal(t, DefaultInertia, mv.Inertia)
	assert.Equal(t, DefaultCognition, mv.Cognition)
	assert.Equal(t, DefaultSocial, mv.Social)

	it, err = New(pso.Func(sphere), testBounds(t), Config{
		Pop: 5, Algorithm: InertiaWeight, MaxIter: 50,
	})
	require.NoError(t, err)

	imv, ok := it.Mover.(*InertiaMover)
	require.True(t, ok)
	assert.Equal(t, DefaultWMax, imv.WMax)
	assert.Equal(t, DefaultWMin, imv.WMin)
	assert.Equal(t, DefaultExponent, imv.Exponent)
	assert.Equal(t, 50, imv.MaxIter)
	assert.Equal(t, 2.05, imv.Cognition)
	assert.Equal(t, 2.05, imv.Social)
}

func TestConfigOverrides(t *testing.T) {
	it, err := New(pso.Func(sphere), testBounds(t), Config{
		Pop:       5,
		Cognition: 1.2,
		Social:    1.8,
		Inertia:   0.5,
	})
	require.NoError(t, err)

	mv := it.Mover.(*ConstrictionMover)
	assert.Equal(t, 1.2, mv.Cognition)
	assert.Equal(t, 1.8, mv.Social)
	assert.Equal(t, 0.5, mv.Inertia)
}

// Two engines built from identical configurations must produce bit-identical
// generation sequences, including for the randomly wired topologies.
func TestConfigDeterminism(t *testing.T) {
	cfg := Config{
		Pop:       16,
		Topology:  topo.Random,
		Algorithm: InertiaWeight,
		MaxIter:   100,
		Seed:      99,
	}

	a, err := New(pso.Func(sphere), testBounds(t), cfg)
	require.NoError(t, err)
	b, err := New(pso.Func(sphere), testBounds(t), cfg)
	require.NoError(t, err)

	for n := 0; n < 30; n++ {
		ga, err := a.Next()
		require.NoError(t, err)
		gb, err := b.Next()
		require.NoError(t, err)

		require.Equal(t, ga.Best.Pos(), gb.Best.Pos())
		for i := range ga.Particles {
			require.Equal(t, ga.Particles[i].Pos(), gb.Particles[i].Pos())
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	got, err := ParseAlgorithm("standard")
	require.NoError(t, err)
	assert.Equal(t, Standard, got)

	got, err = ParseAlgorithm("InertiaWeight")
	require.NoError(t, err)
	assert.Equal(t, InertiaWeight, got)

	_, err = ParseAlgorithm("annealing")
	assert.ErrorIs(t, err, pso.ErrInvalidConfig)
}
