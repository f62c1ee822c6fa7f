package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	stackplan "github.com/stackplan/stackplan-go"
	"github.com/stackplan/stackplan-go/internal/config"
	"github.com/stackplan/stackplan-go/topology"
)

// newValidateCmd creates the "validate" subcommand for checking parameters.
func newValidateCmd() *cobra.Command {
	var (
		configFile   string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate topology parameters",
		Long: `Validate resolves the topology parameters and reports problems without
composing a plan.

Checks performed:
  - Capacity bounds: min ≤ desired ≤ max
  - Network CIDR syntax
  - Data engine membership (postgres or mysql, case-insensitive)

Examples:
    stackplan validate
    stackplan validate -c overrides.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(configFile, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Overrides file (default: ./stackplan.yaml if present)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runValidate(configFile, format string) error {
	overrides, err := config.LoadOverrides(configFile)
	if err != nil {
		return fmt.Errorf("loading overrides: %w", err)
	}

	result := stackplan.ValidateResult{Success: true}
	if _, err := topology.Resolve(overrides); err != nil {
		result.Success = false
		result.Errors = append(result.Errors, err.Error())
	}

	return outputValidateResult(result, format)
}

func outputValidateResult(result stackplan.ValidateResult, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

	case "text":
		if result.Success {
			fmt.Println("Validation passed: parameters OK")
			return nil
		}

		fmt.Println("Validation FAILED:")
		for _, errMsg := range result.Errors {
			fmt.Printf("  ERROR: %s\n", errMsg)
		}
		for _, warnMsg := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", warnMsg)
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if !result.Success {
		os.Exit(1)
	}

	return nil
}
