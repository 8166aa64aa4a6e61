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
	runEnvPath string
	runAuxPath string
	runSetIdx  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation set",
	Long: `run reads an environment file and runs cfg.NumSimulations stochastic
evacuations over it. With --auxiliary, the exit grouping for --set (default
0) is taken from the named simulation set instead of one exit per door
cell.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runEnvPath, "env", "", "environment file path (required)")
	runCmd.Flags().StringVar(&runAuxPath, "auxiliary", "", "auxiliary simulation-set file path (optional)")
	runCmd.Flags().IntVar(&runSetIdx, "set", 0, "0-based simulation set index within --auxiliary")
	runCmd.MarkFlagRequired("env")
}

func runRun(cmd *cobra.Command, args []string) error {
	envFile, err := os.Open(runEnvPath)
	if err != nil {
		return configErr(err)
	}
	defer envFile.Close()

	env, doors, staticPeds, err := ioformat.ParseEnvironment(envFile)
	if err != nil {
		return configErr(err)
	}

	// lines/columns come from the environment file, not a flag; config.FromViper
	// still reads them through viper, so the parsed dimensions are pushed in
	// before construction.
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

	var fireSub *fire.Fire
	if cfg.FireIsPresent {
		fireSub, err = fire.New(env.Lines, env.Columns)
		if err != nil {
			return resourceErr(err)
		}
	}

	exits, err := resolveExits(runAuxPath, runSetIdx, doors, env.Lines, env.Columns)
	if err != nil {
		return configErr(err)
	}

	summaries, totalHeatmap, err := runSimulationSet(cfg, env, fireSub, staticPeds, exits, 0, entry, cmd.OutOrStdout())
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
	return nil
}
