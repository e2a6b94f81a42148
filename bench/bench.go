// Package bench provides benchmark objective functions from
// http://en.wikipedia.org/wiki/Test_functions_for_optimization for exercising
// the swarm engine, plus a small convergence harness.
package bench

import (
	"fmt"
	"math"

	pso "github.com/DirtySandals/PSO-Visualiser"
	"github.com/DirtySandals/PSO-Visualiser/swarm"
)

var (
	sin  = math.Sin
	cos  = math.Cos
	abs  = math.Abs
	exp  = math.Exp
	sqrt = math.Sqrt
)

var AllFuncs = []Func{
	Sphere{NDim: 2},
	Sphere{NDim: 10},
	Ackley{NDim: 2},
	Ackley{NDim: 10},
	Eggholder{},
	Schaffer2{},
	Styblinski{NDim: 2},
	Styblinski{NDim: 10},
	Rosenbrock{NDim: 2},
	Rosenbrock{NDim: 10},
}

type Func interface {
	Eval(v []float64) float64
	Bounds() *pso.Bounds
	Optima() []pso.Point
	Name() string
}

// ByName returns the benchmark function with the given name.
func ByName(name string) (Func, error) {
	for _, fn := range AllFuncs {
		if fn.Name() == name {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("bench: unknown function %q", name)
}

func boundsAll(low, up float64, ndim int) *pso.Bounds {
	b, err := pso.NewBoundsAll(low, up, ndim)
	if err != nil {
		panic(err.Error())
	}
	return b
}

func InsideBounds(p []float64, fn Func) bool {
	return fn.Bounds().Contains(p)
}

// Sphere is the sum-of-squares function with its global minimum of zero at
// the origin.
type Sphere struct {
	NDim int
}

func (fn Sphere) Name() string { return fmt.Sprintf("Sphere_%vD", fn.NDim) }

func (fn Sphere) Eval(v []float64) float64 {
	tot := 0.0
	for _, x := range v {
		tot += x * x
	}
	return tot
}

func (fn Sphere) Bounds() *pso.Bounds { return boundsAll(-5, 5, fn.NDim) }

func (fn Sphere) Optima() []pso.Point {
	return []pso.Point{
		pso.NewPoint(make([]float64, fn.NDim), 0),
	}
}

// Ackley has many local optima surrounding a single global minimum of zero
// at the origin.
type Ackley struct {
	NDim int
}

func (fn Ackley) Name() string { return fmt.Sprintf("Ackley_%vD", fn.NDim) }

func (fn Ackley) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	invdim := 1 / float64(fn.NDim)
	sqsum := 0.0
	cossum := 0.0
	for _, x := range v {
		sqsum += x * x
		cossum += cos(2 * math.Pi * x)
	}
	return -20*exp(-0.2*sqrt(invdim*sqsum)) - exp(invdim*cossum) + 20 + math.E
}

func (fn Ackley) Bounds() *pso.Bounds { return boundsAll(-30, 30, fn.NDim) }

func (fn Ackley) Optima() []pso.Point {
	return []pso.Point{
		pso.NewPoint(make([]float64, fn.NDim), 0),
	}
}

type Eggholder struct{}

func (fn Eggholder) Name() string { return "Eggholder" }

func (fn Eggholder) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return -(y+47)*sin(sqrt(abs(y+x/2+47))) - x*sin(sqrt(abs(x-(y+47))))
}

func (fn Eggholder) Bounds() *pso.Bounds { return boundsAll(-512, 512, 2) }

func (fn Eggholder) Optima() []pso.Point {
	return []pso.Point{
		pso.NewPoint([]float64{512, 404.2319}, -959.6407),
	}
}

type Schaffer2 struct{}

func (fn Schaffer2) Name() string { return "Schaffer2" }

func (fn Schaffer2) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return 0.5 + (math.Pow(sin(x*x-y*y), 2)-0.5)/math.Pow(1+.0001*(x*x+y*y), 2)
}

func (fn Schaffer2) Bounds() *pso.Bounds { return boundsAll(-100, 100, 2) }

func (fn Schaffer2) Optima() []pso.Point {
	return []pso.Point{
		pso.NewPoint([]float64{0, 0}, 0),
	}
}

type Styblinski struct {
	NDim int
}

func (fn Styblinski) Name() string { return fmt.Sprintf("Styblinski_%vD", fn.NDim) }

func (fn Styblinski) Eval(x []float64) float64 {
	if !InsideBounds(x, fn) {
		return math.Inf(1)
	}

	tot := 0.0
	for _, v := range x {
		tot += math.Pow(v, 4) - 16*math.Pow(v, 2) + 5*v
	}
	return tot / 2
}

func (fn Styblinski) Bounds() *pso.Bounds { return boundsAll(-5, 5, fn.NDim) }

func (fn Styblinski) Optima() []pso.Point {
	pos := make([]float64, fn.NDim)
	for i := range pos {
		pos[i] = -2.903534
	}
	return []pso.Point{
		pso.NewPoint(pos, -39.16599*float64(fn.NDim)),
	}
}

type Rosenbrock struct {
	NDim int
}

func (fn Rosenbrock) Name() string { return fmt.Sprintf("Rosenbrock_%vD", fn.NDim) }

func (fn Rosenbrock) Eval(x []float64) float64 {
	if !InsideBounds(x, fn) {
		return math.Inf(1)
	}

	tot := 0.0
	for i := 0; i < fn.NDim-1; i++ {
		tot += 100*math.Pow(x[i+1]-x[i]*x[i], 2) + math.Pow(x[i]-1, 2)
	}
	return tot
}

func (fn Rosenbrock) Bounds() *pso.Bounds { return boundsAll(-30, 30, fn.NDim) }

func (fn Rosenbrock) Optima() []pso.Point {
	pos := make([]float64, fn.NDim)
	for i := range pos {
		pos[i] = 1
	}
	return []pso.Point{
		pso.NewPoint(pos, 0),
	}
}

// Run pulls generations from it until the swarm best comes within tol
// (relative to fn's known optimum, floored at 0.001 absolute) or maxiter
// generations elapse.  It returns the best point so far, the number of
// generations consumed, and the first objective error encountered, if any.
func Run(it *swarm.Iterator, fn Func, tol float64, maxiter int) (best pso.Point, niter int, err error) {
	optimum := fn.Optima()[0].Val
	thresh := tol * abs(optimum)
	if 0.001 > thresh {
		thresh = 0.001
	}

	for niter < maxiter {
		gen, err := it.Next()
		if err != nil {
			return it.Best(), niter, err
		}
		niter++
		if abs(optimum-gen.Best.Val) < thresh {
			return gen.Best, niter, nil
		}
	}
	return it.Best(), niter, nil
}
