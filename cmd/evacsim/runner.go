package main

import (
	"errors"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/floorfield/evacsim/internal/config"
	"github.com/floorfield/evacsim/internal/environment"
	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/fire"
	"github.com/floorfield/evacsim/internal/geom"
	"github.com/floorfield/evacsim/internal/gridkit"
	"github.com/floorfield/evacsim/internal/pedestrian"
	"github.com/floorfield/evacsim/internal/report"
	"github.com/floorfield/evacsim/internal/simulation"
	"github.com/floorfield/evacsim/internal/xlog"
)

// runSimulationSet runs cfg.NumSimulations stochastic runs over one exit
// configuration (a "simulation set"). staticPeds holds the pedestrians
// read literally from the environment file ('p'/'P' cells); when empty,
// each run places cfg.PedestrianCount (or density×area) pedestrians at
// freshly drawn random passable cells, one PRNG draw per run so the
// ensemble is genuinely stochastic, not a single fixed layout replayed
// cfg.NumSimulations times.
//
// A simulation set with no accessible exit emits cfg.NumSimulations
// placeholder summaries instead of returning an error; the caller's
// sweep loop advances to the next set regardless.
// Complexity: O(NumSimulations × per-run Step cost).
func runSimulationSet(cfg *config.Config, env *environment.Environment, fireSub *fire.Fire, staticPeds []*pedestrian.Pedestrian, exits []*exitmodel.Exit, setIndex int, entry *logrus.Entry, frames io.Writer) ([]report.RunSummary, *gridkit.IntGrid, error) {
	placementRNG := geom.NewRNG(cfg.Seed)

	totalHeatmap, err := gridkit.NewIntGrid(env.Lines, env.Columns)
	if err != nil {
		return nil, nil, resourceErr(err)
	}

	var summaries []report.RunSummary
	for run := 0; run < cfg.NumSimulations; run++ {
		runEntry := xlog.WithTimestep(xlog.WithSimulationSet(entry, setIndex), 0)

		env.Pedestrians.Fill(0)
		env.Heatmap.Fill(0)
		if fireSub != nil {
			fireSub.Reset()
		}

		peds := resetOrPlacePedestrians(env, staticPeds, cfg, placementRNG)

		// Each run needs its own PRNG stream; drawing the seed from
		// placementRNG (itself seeded once per set from cfg.Seed) keeps the
		// whole set reproducible from cfg.Seed while decorrelating runs.
		runSeed := placementRNG.Int63()

		sim, err := simulation.NewSimulation(cfg, env, fireSub, exits, peds, runSeed)
		if err != nil {
			if !errors.Is(err, simulation.ErrNoAccessibleExit) {
				return nil, nil, resourceErr(err)
			}
			runEntry.WithError(err).Warn("simulation set has no accessible exit; emitting placeholder")
			for ; run < cfg.NumSimulations; run++ {
				summaries = append(summaries, report.NewPlaceholderSummary(setIndex, run, 0))
			}
			return summaries, totalHeatmap, nil
		}

		for !sim.Done() {
			if cfg.MaxTimesteps > 0 && sim.Timestep() >= cfg.MaxTimesteps {
				break
			}
			if err := sim.Step(); err != nil {
				return nil, nil, resourceErr(err)
			}
			if frames != nil {
				report.NewTimestepFrame(sim.Timestep(), env).WriteTo(frames)
			}
		}

		for lin := 0; lin < env.Lines; lin++ {
			for col := 0; col < env.Columns; col++ {
				c := gridkit.Coordinate{Lin: lin, Col: col}
				totalHeatmap.Add(c, env.Heatmap.At(c))
			}
		}

		summaries = append(summaries, report.RunSummary{
			SimulationSet: setIndex,
			Run:           run,
			Timesteps:     sim.Timestep(),
			Accessible:    true,
		})
		xlog.WithTimestep(runEntry, sim.Timestep()).Info("run complete")
	}
	return summaries, totalHeatmap, nil
}

// resetOrPlacePedestrians returns staticPeds reset to their origins when
// the environment file declared any, or a freshly drawn random placement
// otherwise — the two pedestrian-source modes are mutually exclusive
// per run.
func resetOrPlacePedestrians(env *environment.Environment, staticPeds []*pedestrian.Pedestrian, cfg *config.Config, rng *rand.Rand) []*pedestrian.Pedestrian {
	if len(staticPeds) > 0 {
		for _, p := range staticPeds {
			p.ResetToOrigin()
		}
		return staticPeds
	}
	target := pedestrianTarget(env, cfg.PedestrianCount, cfg.PedestrianDensity)
	return placeRandomPedestrians(env, rng, target, 1)
}
