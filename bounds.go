package pso

import (
	"fmt"
	"math"
	"math/rand"
)

// Bounds is an immutable per-dimension [min,max] box describing the search
// space.  The min/max vectors are copied at construction and on every
// accessor, so a Bounds can be shared freely between engine instances.
type Bounds struct {
	low []float64
	up  []float64
}

// NewBounds builds a box from per-dimension lower and upper limits.  It
// returns ErrInvalidBounds if the vectors differ in length, are empty, or
// low[i] >= up[i] for some dimension.
func NewBounds(low, up []float64) (*Bounds, error) {
	if len(low) != len(up) {
		return nil, fmt.Errorf("%w: low and up vectors are not same length (%v != %v)", ErrInvalidBounds, len(low), len(up))
	} else if len(low) == 0 {
		return nil, fmt.Errorf("%w: zero dimensions", ErrInvalidBounds)
	}
	for i := range low {
		if low[i] >= up[i] {
			return nil, fmt.Errorf("%w: dimension %v has min %v >= max %v", ErrInvalidBounds, i, low[i], up[i])
		}
	}
	b := &Bounds{low: make([]float64, len(low)), up: make([]float64, len(up))}
	copy(b.low, low)
	copy(b.up, up)
	return b, nil
}

// NewBoundsAll builds an ndim-dimensional box with the same [low,up] range
// in every dimension.
func NewBoundsAll(low, up float64, ndim int) (*Bounds, error) {
	lows := make([]float64, ndim)
	ups := make([]float64, ndim)
	for i := range lows {
		lows[i] = low
		ups[i] = up
	}
	return NewBounds(lows, ups)
}

func (b *Bounds) Dims() int { return len(b.low) }

// At returns the lower and upper limit for dimension i.
func (b *Bounds) At(i int) (low, up float64) { return b.low[i], b.up[i] }

func (b *Bounds) Low() []float64 { return append([]float64{}, b.low...) }

func (b *Bounds) Up() []float64 { return append([]float64{}, b.up...) }

// Contains reports whether p lies inside the box (edges included).
func (b *Bounds) Contains(p []float64) bool {
	for i := range p {
		if p[i] < b.low[i] || p[i] > b.up[i] {
			return false
		}
	}
	return true
}

// Clamp returns a copy of p with each out-of-range coordinate slid to the
// nearest bound edge.  Points already inside the box come back unchanged.
func (b *Bounds) Clamp(p []float64) []float64 {
	pdup := make([]float64, len(p))
	copy(pdup, p)
	for i := range pdup {
		pdup[i] = math.Max(b.low[i], pdup[i])
		pdup[i] = math.Min(b.up[i], pdup[i])
	}
	return pdup
}

// Confine clamps pos to the box in place and zeroes the component of vel
// along every dimension that was clamped.  Zeroing (rather than reflecting)
// the velocity keeps particles from repeatedly slamming into the same edge
// on consecutive iterations; this is the engine's boundary policy.
func (b *Bounds) Confine(pos, vel []float64) {
	for i := range pos {
		if pos[i] < b.low[i] {
			pos[i] = b.low[i]
			vel[i] = 0
		} else if pos[i] > b.up[i] {
			pos[i] = b.up[i]
			vel[i] = 0
		}
	}
}

// RandPoint draws a uniformly distributed point inside the box using rng.
func (b *Bounds) RandPoint(rng *rand.Rand) []float64 {
	pos := make([]float64, len(b.low))
	for i := range pos {
		pos[i] = b.low[i] + rng.Float64()*(b.up[i]-b.low[i])
	}
	return pos
}

// RandPop generates n randomly positioned points uniformly distributed in
// the box.  Returned points have their values initialized to +infinity.
func (b *Bounds) RandPop(n int, rng *rand.Rand) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{pos: b.RandPoint(rng), Val: math.Inf(1)}
	}
	return points
}

// Vmax returns a per-dimension particle speed limit equal to the full
// bounded range up-low of the problem.  This is the rule of thumb from
//
//	Eberhart, R.C.; Yuhui Shi, "Particle swarm optimization: developments,
//	applications and resources," Evolutionary Computation, 2001. Proceedings of
//	the 2001 Congress on , vol.1, no., pp.81,86 vol. 1, 2001 doi:
//	10.1109/CEC.2001.934374
//
// without their suggested divide by two, which seems to help swarms avoid
// premature convergence in difficult problems.
func (b *Bounds) Vmax() []float64 {
	vmax := make([]float64, len(b.low))
	for i := range vmax {
		vmax[i] = b.up[i] - b.low[i]
	}
	return vmax
}
