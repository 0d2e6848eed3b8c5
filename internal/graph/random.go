package graph

import (
	"math/rand/v2"
	"slices"
)

// RandomOptions configures a random layered graph.
type RandomOptions struct {
	// NoDeps is the number of leading components without dependencies.
	NoDeps int
	// WithDeps is the number of components following them that have dependencies.
	WithDeps int
	// FanOut is the number of dependencies of each component with dependencies.
	FanOut int
	Seed   uint64
}

// Random builds a graph where every component only depends on components with a
// lower index, so the result is acyclic. The toplevel component is appended last
// and depends on every component nothing else depends on. The same options always
// produce the same graph.
func Random(opts RandomOptions) *Graph {
	noDeps := max(opts.NoDeps, 0)
	total := noDeps + max(opts.WithDeps, 0)
	fanOut := max(opts.FanOut, 0)

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))

	components := make([]Component, 0, total+1)
	used := make([]bool, total)
	for i := range total {
		c := Component{Index: i}
		if i >= noDeps {
			if k := min(fanOut, i); k > 0 {
				c.Deps = rng.Perm(i)[:k]
				slices.Sort(c.Deps)
				for _, dep := range c.Deps {
					used[dep] = true
				}
			}
		}
		components = append(components, c)
	}

	toplevel := Component{Index: total}
	for i, isUsed := range used {
		if !isUsed {
			toplevel.Deps = append(toplevel.Deps, i)
		}
	}
	components = append(components, toplevel)

	return &Graph{
		Toplevel:   total,
		Components: components,
	}
}
