package swarm

import (
	"fmt"
	"math"
	"math/rand"

	pso "github.com/DirtySandals/PSO-Visualiser"
	topo "github.com/DirtySandals/PSO-Visualiser/topology"
)

// Generation is an immutable snapshot of the swarm at one iteration: the
// iteration index, every particle's (position, value) pair, and the best
// point seen swarm-wide so far.  A Generation is an independent copy - later
// swarm mutation never changes an already-produced Generation.
type Generation struct {
	Iter      int
	Particles []pso.Point
	Best      pso.Point
}

type Option func(*Iterator)

// Topology sets the informant graph.  The default is the global (all-to-all)
// topology.
func Topology(t topo.Topology) Option {
	return func(it *Iterator) { it.Top = t }
}

// Vmax sets per-dimension speed limits for particles.  If unset, infinity is
// used.
func Vmax(vmaxes []float64) Option {
	return func(it *Iterator) { it.Vmax = vmaxes }
}

func VmaxAll(vmax float64) Option {
	return func(it *Iterator) {
		it.Vmax = make([]float64, it.Bounds.Dims())
		for i := range it.Vmax {
			it.Vmax[i] = vmax
		}
	}
}

// VmaxBounds sets the maximum particle speed for each dimension equal to the
// bounded range for the problem.
func VmaxBounds() Option {
	return func(it *Iterator) { it.Vmax = it.Bounds.Vmax() }
}

// Rng sets the random source used for initialization and for the per-update
// r1/r2 draws.  Injecting the source (rather than reading global rand state)
// is what makes two identically configured engines bit-identical.
func Rng(rng *rand.Rand) Option {
	return func(it *Iterator) { it.rng = rng }
}

// Seed is shorthand for Rng(rand.New(rand.NewSource(seed))).
func Seed(seed int64) Option {
	return func(it *Iterator) { it.rng = rand.New(rand.NewSource(seed)) }
}

// VelScale sets the scale factor for random velocity initialization; 0 gives
// stationary particles.  The default is 0.5.
func VelScale(scale float64) Option {
	return func(it *Iterator) { it.velscale = scale }
}

// InitBounds sets a separate box for drawing initial particle positions,
// typically a sub-region of the search bounds so the swarm must travel to
// the optimum rather than being seeded on top of it.  It must have the same
// dimension count as the search bounds.  The default is the search bounds
// themselves.
func InitBounds(init *pso.Bounds) Option {
	return func(it *Iterator) { it.init = init }
}

// Iterator drives a swarm across iterations, producing one Generation per
// Next call.  It performs no background work, holds no external resources,
// and is fully deterministic given a fixed random source; run independent
// Iterators for concurrent swarms.
type Iterator struct {
	Obj    pso.Objectiver
	Bounds *pso.Bounds
	Top    topo.Topology
	Mover  Mover
	// Vmax is the speed limit per dimension for particles.  If nil, infinity
	// is used.
	Vmax []float64
	Pop  Population

	rng      *rand.Rand
	velscale float64
	init     *pso.Bounds
	count    int
	best     pso.Point
}

// NewIterator builds an engine for obj over bounds b with n particles moved
// by mv.  A nil mv selects the standard constriction update.  The initial
// positions are evaluated once here so the first Next call has personal
// bests to read; an objective error during that sweep is returned unchanged.
func NewIterator(obj pso.Objectiver, b *pso.Bounds, n int, mv Mover, opts ...Option) (*Iterator, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil objective", pso.ErrInvalidConfig)
	} else if b == nil {
		return nil, fmt.Errorf("%w: nil bounds", pso.ErrInvalidBounds)
	} else if n < 1 {
		return nil, fmt.Errorf("%w: population size %v < 1", pso.ErrInvalidConfig, n)
	}
	if mv == nil {
		mv = NewConstrictionMover()
	}

	it := &Iterator{
		Obj:      obj,
		Bounds:   b,
		Mover:    mv,
		rng:      rand.New(rand.NewSource(0)),
		velscale: 0.5,
		best:     pso.NewPoint(make([]float64, b.Dims()), math.Inf(1)),
	}
	for _, opt := range opts {
		opt(it)
	}

	if it.Top == nil {
		top, err := topo.NewGlobal(n)
		if err != nil {
			return nil, err
		}
		it.Top = top
	}
	if it.Top.Size() != n {
		return nil, fmt.Errorf("%w: topology size %v != population size %v", pso.ErrInvalidTopology, it.Top.Size(), n)
	}
	if it.init == nil {
		it.init = b
	} else if it.init.Dims() != b.Dims() {
		return nil, fmt.Errorf("%w: init box has %v dimensions, search box has %v", pso.ErrInvalidBounds, it.init.Dims(), b.Dims())
	}

	it.Pop = NewPopulationRand(n, it.init, b, it.velscale, it.rng)
	for _, p := range it.Pop {
		val, err := it.Obj.Objective(p.Pos)
		if err != nil {
			return nil, err
		}
		p.Update(val)
	}
	it.best = it.Pop.Best()
	return it, nil
}

// Next advances the swarm by exactly one iteration and returns its snapshot:
// stage every particle's velocity/position update (reading informant bests
// from the topology), confine staged positions to bounds, evaluate them all,
// then commit.  If the objective returns an error it surfaces unchanged and
// nothing is committed - the engine still reflects the prior iteration.
// Next never terminates on its own; callers stop requesting generations.
func (it *Iterator) Next() (Generation, error) {
	lbest := make([]pso.Point, len(it.Pop))
	for i := range it.Pop {
		lbest[i] = it.informantBest(i)
	}

	vel, pos := it.Mover.Move(it.Pop, lbest, it.count, it.rng)
	for i := range it.Pop {
		if it.Vmax != nil {
			for d, v := range vel[i] {
				if math.Abs(v) > it.Vmax[d] {
					vel[i][d] = math.Copysign(it.Vmax[d], v)
					pos[i][d] = it.Pop[i].Pos[d] + vel[i][d]
				}
			}
		}
		it.Bounds.Confine(pos[i], vel[i])
	}

	vals := make([]float64, len(it.Pop))
	for i := range it.Pop {
		val, err := it.Obj.Objective(pos[i])
		if err != nil {
			return Generation{}, err
		}
		vals[i] = val
	}

	for i, p := range it.Pop {
		p.Vel = vel[i]
		p.Pos = pos[i]
		p.Update(vals[i])
	}
	if best := it.Pop.Best(); best.Val < it.best.Val {
		it.best = best
	}
	it.count++

	return Generation{
		Iter:      it.count,
		Particles: it.Pop.Points(),
		Best:      it.best,
	}, nil
}

// informantBest returns the best personal-best point among particle i's
// informants (always including i itself).
func (it *Iterator) informantBest(i int) pso.Point {
	best := it.Pop[i].Best
	for _, j := range it.Top.Informants(i) {
		if it.Pop[j].Best.Val < best.Val {
			best = it.Pop[j].Best
		}
	}
	return best
}

// Best returns the best point seen swarm-wide so far.
func (it *Iterator) Best() pso.Point { return it.best }

// Niter returns the number of committed iterations.
func (it *Iterator) Niter() int { return it.count }
