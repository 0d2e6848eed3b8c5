// Package benchmark assembles and writes the files of a generated benchmark.
package benchmark

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mazrean/fruitbench/internal/fruitgen"
	"github.com/mazrean/fruitbench/internal/graph"
)

const (
	MainFileName  = "main.cpp"
	BuildFileName = "CMakeLists.txt"
	GraphFileName = "graph.yaml"
)

// File is one generated file.
type File struct {
	Name    string
	Content []byte
}

// Bundle holds the files of a benchmark in emission order.
type Bundle struct {
	Toplevel int
	Files    []File
}

func (b *Bundle) add(name string, content string) {
	b.Files = append(b.Files, File{Name: name, Content: []byte(content)})
}

// Plan renders a header and a source for every component, the main program for
// the toplevel component, the build file and the graph itself.
func Plan(ctx context.Context, gen *fruitgen.Generator, g *graph.Graph) (*Bundle, error) {
	bundle := &Bundle{
		Toplevel: g.Toplevel,
		Files:    make([]File, 0, 2*len(g.Components)+3),
	}

	sources := make([]string, 0, len(g.Components)+1)
	for _, c := range g.Components {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		header, err := gen.ComponentHeader(c.Index)
		if err != nil {
			return nil, fmt.Errorf("component %d header: %w", c.Index, err)
		}
		bundle.add(fruitgen.HeaderName(c.Index), header)

		source, err := gen.ComponentSource(c.Index, c.Deps)
		if err != nil {
			return nil, fmt.Errorf("component %d source: %w", c.Index, err)
		}
		bundle.add(fruitgen.SourceName(c.Index), source)
		sources = append(sources, fruitgen.SourceName(c.Index))
	}

	mainSource, err := gen.Main(g.Toplevel)
	if err != nil {
		return nil, fmt.Errorf("main: %w", err)
	}
	bundle.add(MainFileName, mainSource)
	sources = append(sources, MainFileName)

	buildFile, err := gen.BuildFile(sources)
	if err != nil {
		return nil, fmt.Errorf("build file: %w", err)
	}
	bundle.add(BuildFileName, buildFile)

	graphFile, err := graph.Encode(g)
	if err != nil {
		return nil, err
	}
	bundle.Files = append(bundle.Files, File{Name: GraphFileName, Content: graphFile})

	slog.Debug("Planned benchmark", "toplevel", g.Toplevel, "files", len(bundle.Files))

	return bundle, nil
}
