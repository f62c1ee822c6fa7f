package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	stackplan "github.com/stackplan/stackplan-go"
	"github.com/stackplan/stackplan-go/internal/config"
	"github.com/stackplan/stackplan-go/internal/logging"
	"github.com/stackplan/stackplan-go/internal/render"
	"github.com/stackplan/stackplan-go/topology"
)

func newComposeCmd() *cobra.Command {
	var (
		configFile   string
		outputFormat string
		outputFile   string
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose the topology and render the provisioning plan",
		Long: `Compose resolves topology parameters, composes the resource specs in
dependency order, and renders the provisioning plan document.

Examples:
    stackplan compose
    stackplan compose -c overrides.yaml
    stackplan compose -f yaml -o plan.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(configFile, outputFormat, outputFile, logLevel)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Overrides file (default: ./stackplan.yaml if present)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")

	return cmd
}

func runCompose(configFile, format, outputFile, logLevel string) error {
	logger := logging.NewLogger(logLevel)

	overrides, err := config.LoadOverrides(configFile)
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}

	plan, err := topology.Compose(overrides)
	if err != nil {
		result := stackplan.ComposeResult{
			Success: false,
			Errors:  []string{err.Error()},
		}
		return outputComposeResult(result, format, outputFile)
	}

	logger.Debug().
		Strs("order", plan.Order).
		Int("outputs", len(plan.Outputs)).
		Msg("plan assembled")

	doc, err := render.Document(plan)
	if err != nil {
		result := stackplan.ComposeResult{
			Success: false,
			Errors:  []string{fmt.Sprintf("rendering plan: %v", err)},
		}
		return outputComposeResult(result, format, outputFile)
	}

	logger.Info().
		Int("resources", len(doc.Resources)).
		Str("format", format).
		Msg("plan rendered")

	return outputComposeResult(stackplan.ComposeResult{
		Success:   true,
		Document:  *doc,
		Resources: doc.Order,
	}, format, outputFile)
}

func outputComposeResult(result stackplan.ComposeResult, format, outputFile string) error {
	if !result.Success {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("compose failed")
	}

	var data []byte
	var err error

	switch format {
	case "json":
		data, err = render.ToJSON(&result.Document)
	case "yaml":
		data, err = render.ToYAML(&result.Document)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	return os.WriteFile(outputFile, data, 0644)
}
