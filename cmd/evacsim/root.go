package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Exit codes: 0 success, 2 configuration error, 3 resource/runtime error.
const (
	exitOK       = 0
	exitConfig   = 2
	exitResource = 3
)

// cfgViper is bound once in init and read by every subcommand's RunE via
// config.FromViper, the way inmaputil's Cfg package variable is shared
// across its run/grid/sr subcommands.
var cfgViper = viper.New()

var rootCmd = &cobra.Command{
	Use:   "evacsim",
	Short: "Floor-field pedestrian evacuation simulator",
	Long: `evacsim runs a discrete, grid-based floor-field cellular automaton
simulating pedestrian evacuation under a static attraction field, a
dynamic trail field, and an optional fire-avoidance field.

Use "run" for a single simulation set, "sweep" to drive an
auxiliary-file exit sweep across many simulation sets, or "validate" to
lint an environment file for sealed-off passable cells before running it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	bindConfigFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(validateCmd)
}

// bindConfigFlags declares every flag internal/config.FromViper reads and
// binds it into cfgViper, with defaults mirroring config.defaults()
// exactly (see config.FromViper's doc comment for why this must hold).
func bindConfigFlags(fs *pflag.FlagSet) {
	fs.Float64("ks", 0, "static field sensitivity")
	fs.Float64("kd", 0, "dynamic field sensitivity")
	fs.Float64("kf", 0, "fire field sensitivity")
	fs.Float64("alpha", 0, "dynamic field diffusion coefficient")
	fs.Float64("delta", 0, "dynamic field decay coefficient")
	fs.Float64("omega", 1, "inertia multiplier")
	fs.Float64("mu", 0, "collective same-target conflict denial probability")
	fs.String("static-field", "zheng", `static field variant: "zheng" or "varas"`)
	fs.Float64("diagonal-cost", 0, "Varas relaxation diagonal-move cost")
	fs.Bool("prevent-corner-crossing", false, "disallow cutting across a blocked corner on a diagonal move")
	fs.Bool("immediate-exit", false, "skip the LEAVING dwell and go straight to GOT_OUT")
	fs.Bool("allow-x-movement", true, "allow two adjacent pedestrians to swap/cross cells")
	fs.Bool("ignore-latest-self-trace", false, "exclude a pedestrian's own last-step trail from its dynamic field read")
	fs.Bool("velocity-density-field", false, "deposit the dynamic field at commit time at each moving pedestrian's vacated cell, instead of at every live pedestrian's cell at the start of each timestep")
	fs.Bool("fire", false, "enable the fire subsystem")
	fs.Float64("risk-distance", 0, "distance to an exit within which a Non-Risky cell's fire penalty is scaled by fire-alpha")
	fs.Float64("fire-alpha", 0, "multiplier on kf in the fire penalty of Non-Risky cells within risk-distance of an exit")
	fs.Float64("fire-gamma", 0, "maximum fire distance covered by the fire floor field")
	fs.Float64("spread-rate", 0, "fire spread rate, cells per second")
	fs.Int64("seed", 0, "PRNG seed (0 maps to a fixed default seed)")
	fs.Int("num-simulations", 1, "number of stochastic runs per simulation set")
	fs.Int("pedestrian-count", 0, "fixed pedestrian count (mutually exclusive with pedestrian-density)")
	fs.Float64("pedestrian-density", 0, "pedestrian density over the full grid area, lines×columns (mutually exclusive with pedestrian-count)")
	fs.Float64("tolerance", 1e-9, "floating-point comparison tolerance")
	fs.Int("max-timesteps", 0, "timestep ceiling per run; 0 means unbounded")
	fs.String("log-level", "info", "logrus level: debug, info, warn, error")
	fs.String("log-format", "text", `log formatter: "text" or "json"`)
	fs.String("output-dir", "", "stored in the config; no subcommand reads it (all output goes to stdout)")
	fs.String("heatmap-path", "", "stored in the config; no subcommand reads it (the heatmap goes to stdout)")
	fs.String("animation-dir", "", "stored in the config; no subcommand reads it (no animation files are written)")

	if err := cfgViper.BindPFlags(fs); err != nil {
		panic(fmt.Sprintf("evacsim: binding flags into viper: %v", err))
	}
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "evacsim:", err)
		if code, ok := err.(exitCoder); ok {
			return code.ExitCode()
		}
		return exitConfig
	}
	return exitOK
}

// exitCoder lets a subcommand's returned error carry a specific exit
// code through cobra's generic error path.
type exitCoder interface {
	error
	ExitCode() int
}

// cliError pairs an error with the exit code cmd/evacsim should return
// for it, following the configuration/resource/semantic exit-code split.
type cliError struct {
	err  error
	code int
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }
func (e *cliError) ExitCode() int { return e.code }

func configErr(err error) error   { return &cliError{err: err, code: exitConfig} }
func resourceErr(err error) error { return &cliError{err: err, code: exitResource} }
