// Package graph generates DOT and Mermaid format dependency graphs from an
// assembled topology plan.
package graph

import (
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"

	"github.com/stackplan/stackplan-go/topology"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Control-plane resource kinds used as node labels.
var nodeKinds = map[string]string{
	topology.ResourceNetwork:    "Network Placement",
	topology.ResourceBoundary:   "Security Boundary",
	topology.ResourceCredential: "Generated Credential",
	topology.ResourceCompute:    "Compute Group",
	topology.ResourceEdge:       "Edge Entry Point",
	topology.ResourceData:       "Managed Database",
}

// Generator creates dependency graphs from an assembled plan.
type Generator struct {
	// IncludeOutputs adds the plan's deferred outputs as dashed nodes.
	IncludeOutputs bool

	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format
}

// Generate creates the plan's dependency graph and writes it to w.
func (g *Generator) Generate(p *topology.Plan, w io.Writer) error {
	graph := g.buildGraph(p)

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(p *topology.Plan) (string, error) {
	var sb strings.Builder
	if err := g.Generate(p, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// buildGraph creates the dot.Graph structure from the plan's dependencies.
func (g *Generator) buildGraph(p *topology.Plan) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})
	graph.EdgeInitializer(func(e dot.Edge) {
		e.Attr("fontname", "Arial")
		e.Attr("fontsize", "10")
	})

	for _, name := range p.Order {
		n := graph.Node(name)
		if kind, ok := nodeKinds[name]; ok {
			n.Label(name + "\\n[" + kind + "]")
		}
	}

	deps := p.Dependencies()
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, dep := range deps[name] {
			from := graph.Node(name)
			to := graph.Node(dep)
			e := graph.Edge(from, to)

			// The edge-to-compute relation is advisory, not ownership.
			if name == topology.ResourceEdge && dep == topology.ResourceCompute {
				e.Attr("style", "dashed")
			}
		}
	}

	if g.IncludeOutputs {
		for _, out := range p.Outputs {
			n := graph.Node(out.Name)
			n.Attr("shape", "ellipse")
			n.Attr("style", "dashed")
			n.Label(out.Name)

			e := graph.Edge(n, graph.Node(out.Resource))
			e.Attr("color", "blue")
		}
	}

	return graph
}
