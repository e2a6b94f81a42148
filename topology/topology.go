// Package topology defines the informant graphs that govern how particles in
// a swarm share information.  A Topology is constructed once per run from the
// population size and is fixed thereafter - there is no dynamic rewiring.
// Every particle is always an informant of itself, so even degenerate graphs
// leave no particle without a local best to read.
package topology

import (
	"fmt"
	"math/rand"
	"strings"

	pso "github.com/DirtySandals/PSO-Visualiser"
)

// Topology maps each particle index to the set of indices whose personal
// bests that particle reads when computing its local best.
type Topology interface {
	// Informants returns the informant indices for particle i, always
	// including i itself.  The returned slice is freshly allocated.
	Informants(i int) []int

	// Size returns the population size the topology was built for.
	Size() int
}

type Kind int

const (
	// Global connects every particle to the whole population, collapsing the
	// local best to a single swarm-wide leader.
	Global Kind = iota
	// Ring connects each particle to itself and its two immediate neighbors
	// in a fixed circular ordering.
	Ring
	// Star picks one random particle as the hub.  The hub is informed by the
	// whole population; every other particle reads only itself and the hub.
	Star
	// Random wires each particle to itself plus a random half of the swarm.
	Random
)

func (k Kind) String() string {
	switch k {
	case Global:
		return "global"
	case Ring:
		return "ring"
	case Star:
		return "star"
	case Random:
		return "random"
	}
	return fmt.Sprintf("topology.Kind(%d)", int(k))
}

// ParseKind converts a kind name (as printed by Kind.String) back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "global", "gbest":
		return Global, nil
	case "ring", "lbest":
		return Ring, nil
	case "star":
		return Star, nil
	case "random":
		return Random, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", pso.ErrInvalidTopology, s)
}

// New builds a topology of the given kind for a population of n particles.
// rng is only consulted by the kinds that wire randomly (Star, Random); it
// may be nil for Global and Ring.
func New(kind Kind, n int, rng *rand.Rand) (Topology, error) {
	switch kind {
	case Global:
		return NewGlobal(n)
	case Ring:
		return NewRing(n)
	case Star:
		return NewStar(n, rng)
	case Random:
		return NewRandom(n, rng)
	}
	return nil, fmt.Errorf("%w: unknown kind %v", pso.ErrInvalidTopology, kind)
}

func checksize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: population size %v < 1", pso.ErrInvalidTopology, n)
	}
	return nil
}

type global struct{ n int }

func NewGlobal(n int) (Topology, error) {
	if err := checksize(n); err != nil {
		return nil, err
	}
	return global{n: n}, nil
}

func (t global) Size() int { return t.n }

func (t global) Informants(i int) []int {
	set := make([]int, t.n)
	for j := range set {
		set[j] = j
	}
	return set
}

type ring struct{ n int }

// NewRing builds the circular neighbor topology.  For n < 3 the neighbor
// indices collapse onto the particle itself, so the topology degrades to
// Global-equivalent behavior rather than failing.
func NewRing(n int) (Topology, error) {
	if err := checksize(n); err != nil {
		return nil, err
	}
	return ring{n: n}, nil
}

func (t ring) Size() int { return t.n }

func (t ring) Informants(i int) []int {
	prev := ((i-1)%t.n + t.n) % t.n
	next := (i + 1) % t.n
	set := []int{i}
	if prev != i {
		set = append(set, prev)
	}
	if next != i && next != prev {
		set = append(set, next)
	}
	return set
}

type star struct {
	n   int
	hub int
}

func NewStar(n int, rng *rand.Rand) (Topology, error) {
	if err := checksize(n); err != nil {
		return nil, err
	}
	return star{n: n, hub: rng.Intn(n)}, nil
}

func (t star) Size() int { return t.n }

func (t star) Informants(i int) []int {
	if i == t.hub {
		set := make([]int, t.n)
		for j := range set {
			set[j] = j
		}
		return set
	}
	return []int{i, t.hub}
}

type random struct {
	sets [][]int
}

// NewRandom wires each particle to itself plus a uniform random sample of
// half the remaining swarm.  The wiring is drawn once at construction and
// fixed for the run.
func NewRandom(n int, rng *rand.Rand) (Topology, error) {
	if err := checksize(n); err != nil {
		return nil, err
	}

	sets := make([][]int, n)
	nsample := n/2 - 1
	if nsample < 0 {
		nsample = 0
	}
	for i := range sets {
		others := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				others = append(others, j)
			}
		}
		rng.Shuffle(len(others), func(a, b int) {
			others[a], others[b] = others[b], others[a]
		})
		set := append([]int{i}, others[:nsample]...)
		sets[i] = set
	}
	return random{sets: sets}, nil
}

func (t random) Size() int { return len(t.sets) }

func (t random) Informants(i int) []int {
	return append([]int{}, t.sets[i]...)
}
