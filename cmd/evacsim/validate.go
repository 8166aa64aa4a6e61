package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/floorfield/evacsim/internal/diagnostics"
	"github.com/floorfield/evacsim/internal/ioformat"
)

var validateEnvPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Lint an environment file",
	Long: `validate parses an environment file and reports any passable cell
that cannot reach an exit — a layout defect that would leave a pedestrian
placed there with no possible route out. Parsing failures are
configuration errors (exit code 2); a clean parse with isolated cells
still exits 0, since this is advisory linting, not a hard validation
gate.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateEnvPath, "env", "", "environment file path (required)")
	validateCmd.MarkFlagRequired("env")
}

func runValidate(cmd *cobra.Command, args []string) error {
	envFile, err := os.Open(validateEnvPath)
	if err != nil {
		return configErr(err)
	}
	defer envFile.Close()

	env, doors, _, err := ioformat.ParseEnvironment(envFile)
	if err != nil {
		return configErr(err)
	}
	if len(doors) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no exit cells found")
		return nil
	}

	components := diagnostics.IsolatedComponents(env)
	if len(components) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "every passable cell can reach an exit")
		return nil
	}

	total := 0
	for _, comp := range components {
		total += len(comp.Cells)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d passable cell(s) in %d sealed pocket(s) cannot reach any exit:\n", total, len(components))
	for i, comp := range components {
		fmt.Fprintf(cmd.OutOrStdout(), "pocket %d:\n", i)
		for _, c := range comp.Cells {
			fmt.Fprintf(cmd.OutOrStdout(), "  (%d,%d)\n", c.Lin, c.Col)
		}
		if len(comp.BreachPath) == 0 {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  suggested breach (cost %d):", comp.BreachCost)
		for _, c := range comp.BreachPath {
			fmt.Fprintf(cmd.OutOrStdout(), " (%d,%d)", c.Lin, c.Col)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
