// Command psorun streams swarm generations for a benchmark function to
// stdout - one line per generation with the swarm best, spread, and mean
// speed.  It stands in for a renderer consuming generations frame by frame.
package main

import (
	"flag"
	"fmt"
	"log"

	pso "github.com/DirtySandals/PSO-Visualiser"
	"github.com/DirtySandals/PSO-Visualiser/bench"
	"github.com/DirtySandals/PSO-Visualiser/swarm"
	"github.com/DirtySandals/PSO-Visualiser/topology"
)

var (
	fnname  = flag.String("fn", "Sphere_2D", "benchmark function to minimize")
	npar    = flag.Int("pop", 30, "population size")
	niter   = flag.Int("iter", 200, "number of generations to run")
	topkind = flag.String("topo", "global", "topology kind (global|ring|star|random)")
	alg     = flag.String("alg", "standard", "algorithm kind (standard|inertia)")
	seed    = flag.Int64("seed", 1, "random seed")
	every   = flag.Int("every", 10, "print every nth generation")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	fn, err := bench.ByName(*fnname)
	if err != nil {
		log.Fatal(err)
	}
	kind, err := topology.ParseKind(*topkind)
	if err != nil {
		log.Fatal(err)
	}
	algkind, err := swarm.ParseAlgorithm(*alg)
	if err != nil {
		log.Fatal(err)
	}

	obj := pso.NewEvalCounter(pso.Func(fn.Eval))
	it, err := swarm.New(obj, fn.Bounds(), swarm.Config{
		Pop:       *npar,
		Topology:  kind,
		Algorithm: algkind,
		MaxIter:   *niter,
		Seed:      *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	var last swarm.Generation
	for n := 0; n < *niter; n++ {
		gen, err := it.Next()
		if err != nil {
			log.Fatal(err)
		}
		last = gen
		if gen.Iter%*every == 0 {
			fmt.Printf("iter %v: best %v, spread %v, mean speed %v\n",
				gen.Iter, gen.Best.Val, it.Pop.Spread(), it.Pop.MeanSpeed())
		}
	}

	fmt.Printf("%v evals\n", obj.N)
	fmt.Printf("    optimum: %+v\n", fn.Optima()[0].Val)
	fmt.Printf("    best: %v at %v\n", last.Best.Val, last.Best.Pos())
}
