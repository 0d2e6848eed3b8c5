package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRandom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts RandomOptions
	}{
		{
			name: "default sized graph",
			opts: RandomOptions{NoDeps: 10, WithDeps: 90, FanOut: 10, Seed: 1},
		},
		{
			name: "fan out larger than available components",
			opts: RandomOptions{NoDeps: 1, WithDeps: 5, FanOut: 10, Seed: 7},
		},
		{
			name: "no components with deps",
			opts: RandomOptions{NoDeps: 3, Seed: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := Random(tt.opts)
			total := tt.opts.NoDeps + tt.opts.WithDeps

			if len(g.Components) != total+1 {
				t.Fatalf("Expected %d components, got %d", total+1, len(g.Components))
			}
			if g.Toplevel != total {
				t.Errorf("Expected toplevel %d, got %d", total, g.Toplevel)
			}

			dependedOn := make(map[int]bool)
			for i, c := range g.Components[:total] {
				if c.Index != i {
					t.Fatalf("Expected component %d at position %d, got %d", i, i, c.Index)
				}

				expectedDeps := 0
				if i >= tt.opts.NoDeps {
					expectedDeps = min(tt.opts.FanOut, i)
				}
				if len(c.Deps) != expectedDeps {
					t.Errorf("component %d: expected %d deps, got %d", i, expectedDeps, len(c.Deps))
				}

				for j, dep := range c.Deps {
					if dep < 0 || dep >= i {
						t.Errorf("component %d: dependency %d is not a lower index", i, dep)
					}
					if j > 0 && c.Deps[j-1] >= dep {
						t.Errorf("component %d: deps not strictly ascending: %v", i, c.Deps)
					}
					dependedOn[dep] = true
				}
			}

			top, ok := g.Component(g.Toplevel)
			if !ok {
				t.Fatal("Expected toplevel component to be present")
			}
			for i := range total {
				if contains(top.Deps, i) == dependedOn[i] {
					t.Errorf("component %d: depended on elsewhere=%v, toplevel dep=%v", i, dependedOn[i], contains(top.Deps, i))
				}
			}

			layers := g.Layers()
			last := layers[len(layers)-1]
			if diff := cmp.Diff([]int{g.Toplevel}, last); diff != "" {
				t.Errorf("Expected toplevel alone in the last layer (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestRandomDeterministic(t *testing.T) {
	t.Parallel()

	opts := RandomOptions{NoDeps: 5, WithDeps: 20, FanOut: 3, Seed: 42}
	if diff := cmp.Diff(Random(opts), Random(opts)); diff != "" {
		t.Errorf("Expected identical graphs (-first +second):\n%s", diff)
	}

	opts.Seed = 43
	other := Random(opts)
	opts.Seed = 42
	if cmp.Equal(Random(opts), other) {
		t.Error("Expected different seeds to produce different graphs")
	}
}

func TestRandomEmpty(t *testing.T) {
	t.Parallel()

	g := Random(RandomOptions{NoDeps: -1, WithDeps: 0, FanOut: -3})
	expected := &Graph{Toplevel: 0, Components: []Component{{Index: 0}}}
	if diff := cmp.Diff(expected, g); diff != "" {
		t.Errorf("graph mismatch (-expected +got):\n%s", diff)
	}
}

func contains(s []int, v int) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
