// Package config provides CLI configuration and application logic for fruitbench.
package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mazrean/fruitbench/internal/benchmark"
	"github.com/mazrean/fruitbench/internal/fruitgen"
	"github.com/mazrean/fruitbench/internal/graph"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI is the root command configuration with subcommands.
type CLI struct {
	// Stdout receives generated text (defaults to os.Stdout)
	Stdout io.Writer `kong:"-"`

	LogLevel string           `kong:"short='l',help='Log level',enum='debug,info,warn,error',default='info'"`
	Generate GenerateCmd      `kong:"cmd,default='withargs',help='Generate a complete benchmark (default)'"`
	Header   HeaderCmd        `kong:"cmd,help='Print the header of one component'"`
	Source   SourceCmd        `kong:"cmd,help='Print the source of one component'"`
	Main     MainCmd          `kong:"cmd,help='Print the benchmark main for a toplevel component'"`
	Version  kong.VersionFlag `kong:"short='v',help='Show version and exit.'"`
}

func (cli *CLI) stdout() io.Writer {
	if cli.Stdout != nil {
		return cli.Stdout
	}
	return os.Stdout
}

// GenerateCmd is the default command for generating a benchmark.
type GenerateCmd struct {
	Output   string `kong:"short='o',default='fruit_benchmark',help='Output directory'"`
	Format   string `kong:"enum='dir,txtar',default='dir',help='Output format (txtar is written to stdout)'"`
	Jobs     int    `kong:"short='j',default='4',help='Number of files written concurrently'"`
	Graph    string `kong:"type='existingfile',help='YAML graph file; random graph flags are ignored when set'"`
	NoDeps   int    `kong:"name='no-deps',default='10',help='Number of components without dependencies'"`
	WithDeps int    `kong:"name='with-deps',default='90',help='Number of components with dependencies'"`
	FanOut   int    `kong:"name='fan-out',default='10',help='Dependencies per component'"`
	Seed     uint64 `kong:"default='1',help='Random graph seed'"`
}

// Run executes the generate command.
func (c *GenerateCmd) Run(cli *CLI) error {
	setupLogger(cli.LogLevel)

	g, err := c.loadGraph()
	if err != nil {
		return err
	}

	slog.Info("Generating benchmark",
		"components", len(g.Components),
		"edges", g.Edges(),
		"depth", len(g.Layers()),
		"toplevel", g.Toplevel,
	)

	ctx := context.Background()
	bundle, err := benchmark.Plan(ctx, fruitgen.NewGenerator(), g)
	if err != nil {
		return fmt.Errorf("plan benchmark: %w", err)
	}

	if c.Format == "txtar" {
		return benchmark.WriteArchive(cli.stdout(), bundle)
	}

	if err := benchmark.WriteDir(ctx, bundle, c.Output, c.Jobs); err != nil {
		return fmt.Errorf("write benchmark: %w", err)
	}

	slog.Info("Benchmark written", "dir", c.Output, "files", len(bundle.Files))
	return nil
}

func (c *GenerateCmd) loadGraph() (*graph.Graph, error) {
	if c.Graph != "" {
		return graph.Load(c.Graph)
	}

	return graph.Random(graph.RandomOptions{
		NoDeps:   c.NoDeps,
		WithDeps: c.WithDeps,
		FanOut:   c.FanOut,
		Seed:     c.Seed,
	}), nil
}

// HeaderCmd prints a component header.
type HeaderCmd struct {
	Index int `kong:"arg,help='Component index'"`
}

// Run executes the header command.
func (c *HeaderCmd) Run(cli *CLI) error {
	setupLogger(cli.LogLevel)

	header, err := fruitgen.NewGenerator().ComponentHeader(c.Index)
	if err != nil {
		return err
	}

	_, err = io.WriteString(cli.stdout(), header)
	return err
}

// SourceCmd prints a component source.
type SourceCmd struct {
	Index int   `kong:"arg,help='Component index'"`
	Deps  []int `kong:"arg,optional,help='Dependency indices, in install order'"`
}

// Run executes the source command.
func (c *SourceCmd) Run(cli *CLI) error {
	setupLogger(cli.LogLevel)

	source, err := fruitgen.NewGenerator().ComponentSource(c.Index, c.Deps)
	if err != nil {
		return err
	}

	_, err = io.WriteString(cli.stdout(), source)
	return err
}

// MainCmd prints the benchmark main.
type MainCmd struct {
	Toplevel int `kong:"arg,help='Toplevel component index'"`
}

// Run executes the main command.
func (c *MainCmd) Run(cli *CLI) error {
	setupLogger(cli.LogLevel)

	program, err := fruitgen.NewGenerator().Main(c.Toplevel)
	if err != nil {
		return err
	}

	_, err = io.WriteString(cli.stdout(), program)
	return err
}

func Run() error {
	var cli CLI
	kongCtx := kong.Parse(&cli, options()...)

	return kongCtx.Run(&cli)
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("fruitbench"),
		kong.Description("A source generator for Fruit dependency injection benchmarks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s) released on %s", version, commit, date),
		},
	}
}

func setupLogger(level string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
