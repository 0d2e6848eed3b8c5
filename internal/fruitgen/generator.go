// Package fruitgen renders the C++ sources of a Fruit dependency injection benchmark.
package fruitgen

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	headerTemplate    = "component.h.tmpl"
	sourceTemplate    = "component.cpp.tmpl"
	mainTemplate      = "main.cpp.tmpl"
	buildFileTemplate = "CMakeLists.txt.tmpl"
)

var funcMap = template.FuncMap{
	"interfacePtrs": interfacePtrs,
}

// Generator renders component headers, component sources and the benchmark main.
// It holds no state besides the parsed templates and is safe for concurrent use.
type Generator struct {
	tmpl *template.Template
}

// NewGenerator creates a new generator with the embedded templates.
func NewGenerator() *Generator {
	return &Generator{
		tmpl: template.Must(template.New("fruitgen").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl")),
	}
}

type componentData struct {
	Index int
	Deps  []int
}

// ComponentHeader returns the header declaring Interface<index> and getComponent<index>.
func (g *Generator) ComponentHeader(index int) (string, error) {
	return g.execute(headerTemplate, componentData{Index: index})
}

// ComponentSource returns the source defining X<index> and getComponent<index>.
// Includes, constructor parameters and installs follow the order of deps exactly.
// deps is not validated: a self reference or a cycle is emitted as given.
func (g *Generator) ComponentSource(index int, deps []int) (string, error) {
	return g.execute(sourceTemplate, componentData{Index: index, Deps: deps})
}

// Main returns the benchmark entry point timing the toplevel component.
func (g *Generator) Main(toplevel int) (string, error) {
	return g.execute(mainTemplate, struct{ Toplevel int }{Toplevel: toplevel})
}

// BuildFile returns a CMakeLists.txt building the executable "main" from sources.
func (g *Generator) BuildFile(sources []string) (string, error) {
	return g.execute(buildFileTemplate, struct{ Sources []string }{Sources: sources})
}

func (g *Generator) execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := g.tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}

	return sb.String(), nil
}

func interfacePtrs(deps []int) string {
	params := make([]string, 0, len(deps))
	for _, dep := range deps {
		params = append(params, fmt.Sprintf("std::shared_ptr<Interface%d>", dep))
	}

	return strings.Join(params, ", ")
}

// HeaderName returns the file name of the header for the component.
func HeaderName(index int) string {
	return fmt.Sprintf("component%d.h", index)
}

// SourceName returns the file name of the source for the component.
func SourceName(index int) string {
	return fmt.Sprintf("component%d.cpp", index)
}
