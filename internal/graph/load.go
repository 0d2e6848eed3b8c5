package graph

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

var (
	ErrNoComponents       = errors.New("graph has no components")
	ErrUnknownToplevel    = errors.New("toplevel component is not defined")
	ErrDuplicateComponent = errors.New("duplicate component index")
)

// Load reads a graph file.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}

	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}

	return g, nil
}

// Parse decodes a YAML (or JSON) graph. Unknown fields are rejected. Dependency
// lists are not checked, but component indices must be unique and the toplevel
// must be one of the components since the benchmark main is generated for it.
func Parse(data []byte) (*Graph, error) {
	var g Graph
	if err := yaml.UnmarshalStrict(data, &g); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}

	if len(g.Components) == 0 {
		return nil, ErrNoComponents
	}

	seen := make(map[int]struct{}, len(g.Components))
	for _, c := range g.Components {
		if _, ok := seen[c.Index]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateComponent, c.Index)
		}
		seen[c.Index] = struct{}{}
	}

	if _, ok := g.Component(g.Toplevel); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownToplevel, g.Toplevel)
	}

	return &g, nil
}

// Encode returns the YAML form of the graph, readable by Parse.
func Encode(g *Graph) ([]byte, error) {
	data, err := yaml.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encode graph: %w", err)
	}

	return data, nil
}
