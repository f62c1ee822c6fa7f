package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackplan/stackplan-go/internal/config"
	"github.com/stackplan/stackplan-go/internal/graph"
	"github.com/stackplan/stackplan-go/topology"
)

func newGraphCmd() *cobra.Command {
	var (
		configFile     string
		outputFormat   string
		includeOutputs bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate DOT graph of plan dependencies",
		Long: `Generate a DOT or Mermaid format graph showing the plan's resource
dependencies.

The output can be rendered with Graphviz:
    stackplan graph | dot -Tpng -o deps.png

Or used in GitHub markdown (Mermaid format):
    stackplan graph -f mermaid

Examples:
    stackplan graph
    stackplan graph -O              # include deferred outputs
    stackplan graph -f mermaid`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(configFile, outputFormat, includeOutputs)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Overrides file (default: ./stackplan.yaml if present)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")
	cmd.Flags().BoolVarP(&includeOutputs, "include-outputs", "O", false, "Include deferred output nodes in the graph")

	return cmd
}

func runGraph(configFile, format string, includeOutputs bool) error {
	overrides, err := config.LoadOverrides(configFile)
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}

	plan, err := topology.Compose(overrides)
	if err != nil {
		return fmt.Errorf("composition failed: %w", err)
	}

	var graphFormat graph.Format
	switch format {
	case "dot":
		graphFormat = graph.FormatDOT
	case "mermaid":
		graphFormat = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s (use 'dot' or 'mermaid')", format)
	}

	gen := &graph.Generator{
		Format:         graphFormat,
		IncludeOutputs: includeOutputs,
	}

	return gen.Generate(plan, os.Stdout)
}
