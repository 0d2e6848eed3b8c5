// Package graph models the component graph of a generated benchmark.
package graph

import (
	"slices"

	"github.com/mazrean/fruitbench/internal/pkg/collection"
)

// Component is one generated component and the components it installs, in order.
type Component struct {
	Index int   `json:"index"`
	Deps  []int `json:"deps,omitempty"`
}

// Graph is a set of components and the toplevel component timed by main.
// Components are identified by Index; dependency lists are taken as given.
type Graph struct {
	Toplevel   int         `json:"toplevel"`
	Components []Component `json:"components"`
}

// Component returns the component with the given index.
func (g *Graph) Component(index int) (Component, bool) {
	for _, c := range g.Components {
		if c.Index == index {
			return c, true
		}
	}
	return Component{}, false
}

// Edges returns the total number of dependency entries.
func (g *Graph) Edges() int {
	edges := 0
	for _, c := range g.Components {
		edges += len(c.Deps)
	}
	return edges
}

// Layers groups component indices by depth: layer 0 holds components without
// known dependencies and every other component sits one layer above its deepest
// dependency. Dependencies on unknown indices are ignored. Components that never
// become ready, because of a cycle or a self dependency, form a trailing layer.
func (g *Graph) Layers() [][]int {
	known := make(map[int]struct{}, len(g.Components))
	for _, c := range g.Components {
		known[c.Index] = struct{}{}
	}

	pending := make(map[int]int, len(g.Components))
	dependents := make(map[int][]int, len(g.Components))
	for _, c := range g.Components {
		if _, ok := pending[c.Index]; ok {
			continue
		}
		pending[c.Index] = 0
		for _, dep := range c.Deps {
			if _, ok := known[dep]; !ok {
				continue
			}
			pending[c.Index]++
			dependents[dep] = append(dependents[dep], c.Index)
		}
	}

	type entry struct {
		index int
		depth int
	}

	queue := collection.NewQueue[entry]()
	for _, c := range g.Components {
		if n, ok := pending[c.Index]; ok && n == 0 {
			queue.Push(entry{index: c.Index})
			delete(pending, c.Index)
		}
	}

	var layers [][]int
	depth := make(map[int]int, len(g.Components))
	queue.Drain(func(e entry) bool {
		for len(layers) <= e.depth {
			layers = append(layers, nil)
		}
		layers[e.depth] = append(layers[e.depth], e.index)

		for _, dependent := range dependents[e.index] {
			if _, ok := pending[dependent]; !ok {
				continue
			}
			depth[dependent] = max(depth[dependent], e.depth+1)
			pending[dependent]--
			if pending[dependent] == 0 {
				delete(pending, dependent)
				queue.Push(entry{index: dependent, depth: depth[dependent]})
			}
		}
		return true
	})

	if len(pending) > 0 {
		rest := make([]int, 0, len(pending))
		for index := range pending {
			rest = append(rest, index)
		}
		slices.Sort(rest)
		layers = append(layers, rest)
	}

	return layers
}
