package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/floorfield/evacsim/internal/environment"
	"github.com/floorfield/evacsim/internal/exitmodel"
	"github.com/floorfield/evacsim/internal/gridkit"
	"github.com/floorfield/evacsim/internal/ioformat"
	"github.com/floorfield/evacsim/internal/pedestrian"
)

// exitsFromDoors turns the environment file's flat door-cell list into one
// single-cell Exit per door, per ParseEnvironment's doc comment ("callers
// combine adjacent door cells into multi-cell exits if their layout
// requires it") — a plain `run` with no auxiliary file has no grouping
// information, so every door cell stands alone.
func exitsFromDoors(doors []gridkit.Coordinate, lines, columns int) ([]*exitmodel.Exit, error) {
	exits := make([]*exitmodel.Exit, 0, len(doors))
	for i, c := range doors {
		e, err := exitmodel.New(i, 1, []gridkit.Coordinate{c}, lines, columns)
		if err != nil {
			return nil, err
		}
		exits = append(exits, e)
	}
	return exits, nil
}

// exitsFromSet turns one auxiliary-file simulation set's exit groupings
// into Exits, one per ExitSpec, width equal to its coordinate count.
func exitsFromSet(set ioformat.SimulationSet, lines, columns int) ([]*exitmodel.Exit, error) {
	exits := make([]*exitmodel.Exit, 0, len(set))
	for i, spec := range set {
		e, err := exitmodel.New(i, len(spec), spec, lines, columns)
		if err != nil {
			return nil, err
		}
		exits = append(exits, e)
	}
	return exits, nil
}

// placeRandomPedestrians draws count distinct passable, non-exit cells
// (Fisher-Yates over every candidate cell, truncated to count) and
// returns one fresh Pedestrian per cell, ids continuing from startID.
// Used when the config supplies a density or count instead of literal
// 'p'/'P' cells in the environment file.
func placeRandomPedestrians(env *environment.Environment, rng *rand.Rand, count, startID int) []*pedestrian.Pedestrian {
	var candidates []gridkit.Coordinate
	for lin := 0; lin < env.Lines; lin++ {
		for col := 0; col < env.Columns; col++ {
			c := gridkit.Coordinate{Lin: lin, Col: col}
			if env.Passable(c) && env.ExitsOnly.At(c) == gridkit.Empty {
				candidates = append(candidates, c)
			}
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if count > len(candidates) {
		count = len(candidates)
	}

	pedestrians := make([]*pedestrian.Pedestrian, 0, count)
	for i := 0; i < count; i++ {
		pedestrians = append(pedestrians, pedestrian.New(startID+i, candidates[i]))
	}
	return pedestrians
}

// pedestrianTarget resolves the config's count-or-density choice into a
// concrete cell count over env's full grid area (Lines×Columns).
func pedestrianTarget(env *environment.Environment, count int, density float64) int {
	if count > 0 {
		return count
	}
	total := env.Lines * env.Columns
	return int(density * float64(total))
}

// resolveExits builds run's exit set: from auxPath's chosen simulation
// set when given, or one single-cell exit per environment-file door cell
// otherwise.
func resolveExits(auxPath string, setIdx int, doors []gridkit.Coordinate, lines, columns int) ([]*exitmodel.Exit, error) {
	if auxPath == "" {
		return exitsFromDoors(doors, lines, columns)
	}

	auxFile, err := os.Open(auxPath)
	if err != nil {
		return nil, err
	}
	defer auxFile.Close()

	sets, err := ioformat.ParseSimulationSets(auxFile)
	if err != nil {
		return nil, err
	}
	if setIdx < 0 || setIdx >= len(sets) {
		return nil, fmt.Errorf("evacsim: simulation set index %d out of range (file has %d sets)", setIdx, len(sets))
	}
	return exitsFromSet(sets[setIdx], lines, columns)
}
