package bench_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pso "github.com/DirtySandals/PSO-Visualiser"
	"github.com/DirtySandals/PSO-Visualiser/bench"
	"github.com/DirtySandals/PSO-Visualiser/swarm"
	"github.com/DirtySandals/PSO-Visualiser/topology"
)

const seed = 7

// Spec'd end-to-end scenario: 20 particles on the 2-D sphere function over
// [-5,5]x[-5,5], standard algorithm, 200 generations, fixed seed.
func TestSphereConverges(t *testing.T) {
	fn := bench.Sphere{NDim: 2}
	obj := pso.NewEvalCounter(pso.Func(fn.Eval))

	it, err := swarm.New(obj, fn.Bounds(), swarm.Config{
		Pop:  20,
		Seed: seed,
	})
	require.NoError(t, err)

	var gen swarm.Generation
	for n := 0; n < 200; n++ {
		gen, err = it.Next()
		require.NoError(t, err)
	}

	t.Logf("[%v] %v evals: best %v at %v", fn.Name(), obj.N, gen.Best.Val, gen.Best.Pos())
	assert.Less(t, gen.Best.Val, 1e-3)
	for d := 0; d < 2; d++ {
		assert.Less(t, math.Abs(gen.Best.At(d)), 0.1, "dimension %v too far from origin", d)
	}
}

func TestInertiaWeightConverges(t *testing.T) {
	fn := bench.Sphere{NDim: 2}

	it, err := swarm.New(pso.Func(fn.Eval), fn.Bounds(), swarm.Config{
		Pop:       30,
		Algorithm: swarm.InertiaWeight,
		Topology:  topology.Ring,
		MaxIter:   500,
		Seed:      seed,
	})
	require.NoError(t, err)

	best, niter, err := bench.Run(it, fn, .01, 500)
	require.NoError(t, err)

	t.Logf("[%v] best %v after %v iter", fn.Name(), best.Val, niter)
	assert.Less(t, best.Val, 1e-2)
}

func TestRunStopsEarly(t *testing.T) {
	fn := bench.Sphere{NDim: 2}

	it, err := swarm.New(pso.Func(fn.Eval), fn.Bounds(), swarm.Config{Pop: 30, Seed: seed})
	require.NoError(t, err)

	_, niter, err := bench.Run(it, fn, .01, 10000)
	require.NoError(t, err)
	assert.Less(t, niter, 10000, "sphere should converge well before the cap")
}

func TestByName(t *testing.T) {
	fn, err := bench.ByName("Eggholder")
	require.NoError(t, err)
	assert.Equal(t, "Eggholder", fn.Name())

	_, err = bench.ByName("nope")
	assert.Error(t, err)
}

func TestOptimaInsideBounds(t *testing.T) {
	for _, fn := range bench.AllFuncs {
		b := fn.Bounds()
		for _, opt := range fn.Optima() {
			assert.True(t, b.Contains(opt.Pos()), "[%v] optimum %v outside bounds", fn.Name(), opt.Pos())
		}
	}
}

// Not a pass/fail gate for the hard multimodal functions - logs how far each
// benchmark gets with a fixed budget, in case a change quietly wrecks
// convergence behavior.
func TestSwarmAllFuncs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping benchmark sweep in short mode")
	}

	const maxiter = 1000
	for _, fn := range bench.AllFuncs {
		it, err := swarm.New(pso.Func(fn.Eval), fn.Bounds(), swarm.Config{Pop: 30, Seed: seed})
		require.NoError(t, err)

		best, niter, err := bench.Run(it, fn, .01, maxiter)
		require.NoError(t, err)

		optimum := fn.Optima()[0].Val
		if niter < maxiter {
			t.Logf("[pass:%v] %v iter: optimum is %v, got %v", fn.Name(), niter, optimum, best.Val)
		} else {
			t.Logf("[slow:%v] %v iter: optimum is %v, got %v", fn.Name(), niter, optimum, best.Val)
		}
	}
}
