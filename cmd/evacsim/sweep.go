package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/floorfield/evacsim/internal/config"
	"github.com/floorfield/evacsim/internal/fire"
	"github.com/floorfield/evacsim/internal/ioformat"
	"github.com/floorfield/evacsim/internal/report"
	"github.com/floorfield/evacsim/internal/xlog"
)

var (
	sweepEnvPath string
	sweepAuxPath string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run every simulation set in an auxiliary file",
	Long: `sweep reads an environment file and an auxiliary exit-sweep file and
runs cfg.NumSimulations stochastic evacuations over every simulation set
the auxiliary file names, in file order, sequentially — never in
parallel, per the single-PRNG-stream determinism contract.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepEnvPath, "env", "", "environment file path (required)")
	sweepCmd.Flags().StringVar(&sweepAuxPath, "auxiliary", "", "auxiliary simulation-set file path (required)")
	sweepCmd.MarkFlagRequired("env")
	sweepCmd.MarkFlagRequired("auxiliary")
}

func runSweep(cmd *cobra.Command, args []string) error {
	envFile, err := os.Open(sweepEnvPath)
	if err != nil {
		return configErr(err)
	}
	defer envFile.Close()

	env, _, staticPeds, err := ioformat.ParseEnvironment(envFile)
	if err != nil {
		return configErr(err)
	}

	cfgViper.Set("lines", env.Lines)
	cfgViper.Set("columns", env.Columns)
	cfg, err := config.FromViper(cfgViper)
	if err != nil {
		return configErr(err)
	}
	logger, err := xlog.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return configErr(err)
	}
	entry := xlog.ForRun(logger, uuid.NewString())

	auxFile, err := os.Open(sweepAuxPath)
	if err != nil {
		return configErr(err)
	}
	defer auxFile.Close()

	sets, err := ioformat.ParseSimulationSets(auxFile)
	if err != nil {
		return configErr(err)
	}

	var fireSub *fire.Fire
	if cfg.FireIsPresent {
		fireSub, err = fire.New(env.Lines, env.Columns)
		if err != nil {
			return resourceErr(err)
		}
	}

	for idx, set := range sets {
		exits, err := exitsFromSet(set, env.Lines, env.Columns)
		if err != nil {
			return configErr(err)
		}

		summaries, totalHeatmap, err := runSimulationSet(cfg, env, fireSub, staticPeds, exits, idx, entry, nil)
		if err != nil {
			return err
		}
		for _, s := range summaries {
			fmt.Fprint(cmd.OutOrStdout(), s.String())
		}
		heatmap, err := report.NewHeatmap(totalHeatmap, cfg.NumSimulations)
		if err != nil {
			return resourceErr(err)
		}
		fmt.Fprint(cmd.OutOrStdout(), heatmap.String())
	}
	return nil
}
