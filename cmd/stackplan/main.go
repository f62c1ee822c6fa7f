// Command stackplan renders a web-service deployment topology into a
// provisioning plan for an external cloud control plane.
//
// Usage:
//
//	stackplan compose                 Compose and render the plan
//	stackplan validate                Check topology parameters
//	stackplan graph                   Emit the plan dependency graph
//	stackplan watch                   Recompose on overrides changes
//	stackplan version                 Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stackplan",
		Short: "Compose web-service topology provisioning plans",
		Long: `stackplan composes a small web-service deployment topology — network,
auto-scaled compute, public entry point, and a managed database with a
generated credential — into a provisioning plan.

Overrides come from a YAML file and STACKPLAN_* environment variables;
any absent option takes its documented default:

    stackplan compose -c overrides.yaml -f yaml`,
	}

	rootCmd.AddCommand(
		newComposeCmd(),
		newValidateCmd(),
		newGraphCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stackplan %s\n", getVersion())
		},
	}
}
