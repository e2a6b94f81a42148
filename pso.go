// Package pso provides the core types for a pull-based particle swarm
// optimization engine: immutable evaluated points, objective function
// interfaces, and box bounds describing the search space.  The engine
// itself lives in the swarm subpackage; informant graphs live in the
// topology subpackage.
package pso

// Point represents a position in the search space along with an objective
// value Val for that position.  Points are immutable - the position passed
// to NewPoint is copied in, and Pos returns a fresh copy on every call.
type Point struct {
	pos []float64
	Val float64
}

func NewPoint(pos []float64, val float64) Point {
	cpos := make([]float64, len(pos))
	copy(cpos, pos)
	return Point{pos: cpos, Val: val}
}

func (p Point) At(i int) float64 { return p.pos[i] }

func (p Point) Len() int { return len(p.pos) }

func (p Point) Pos() []float64 {
	pos := make([]float64, len(p.pos))
	copy(pos, p.pos)
	return pos
}

type Objectiver interface {
	// Objective evaluates the variables in v and returns the objective
	// function value.  The objective function must be framed so that lower
	// values are better.  If the evaluation fails, the error is propagated
	// unchanged to the caller driving the swarm - the engine never masks it.
	Objective(v []float64) (float64, error)
}

// Func adapts a plain function to the Objectiver interface for objectives
// that cannot fail.
type Func func([]float64) float64

func (f Func) Objective(v []float64) (float64, error) { return f(v), nil }

// EvalCounter wraps an Objectiver and counts evaluations.
type EvalCounter struct {
	Objectiver
	N int
}

func NewEvalCounter(obj Objectiver) *EvalCounter {
	return &EvalCounter{Objectiver: obj}
}

func (ec *EvalCounter) Objective(v []float64) (float64, error) {
	ec.N++
	return ec.Objectiver.Objective(v)
}
